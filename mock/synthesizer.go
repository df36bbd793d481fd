package mock

import (
	"context"
	"sync"

	"github.com/KMCooper357/multilingual-pipeline/application/ports/outbound"
)

type Synthesizer struct {
	mu    sync.Mutex
	Audio []byte
	Err   error
	Calls []outbound.SynthesizeParams
}

func (m *Synthesizer) Synthesize(_ context.Context, params outbound.SynthesizeParams) ([]byte, error) {
	m.mu.Lock()
	m.Calls = append(m.Calls, params)
	m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Audio != nil {
		return m.Audio, nil
	}
	return []byte("audio:" + params.Text), nil
}

func (m *Synthesizer) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
