package mock

import (
	"context"
	"sync"
)

type TranscriptFetcher struct {
	mu        sync.Mutex
	Doc       []byte
	Err       error
	Requested []string
}

func (m *TranscriptFetcher) Fetch(_ context.Context, locator string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Requested = append(m.Requested, locator)
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Doc, nil
}
