package mock

import (
	"fmt"
	"sync"
)

// SequenceTokenProvider hands out deterministic, strictly increasing tokens.
type SequenceTokenProvider struct {
	mu sync.Mutex
	n  int
}

func (m *SequenceTokenProvider) NewToken() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.n++
	return fmt.Sprintf("token-%04d", m.n)
}
