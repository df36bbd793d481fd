package mock

import (
	"context"
	"sync"

	"github.com/KMCooper357/multilingual-pipeline/application/ports/outbound"
)

// Translator translates via Fn, or echoes the input when Fn is nil.
type Translator struct {
	mu    sync.Mutex
	Fn    func(params outbound.TranslateParams) (string, error)
	Calls []outbound.TranslateParams
}

func (m *Translator) Translate(_ context.Context, params outbound.TranslateParams) (string, error) {
	m.mu.Lock()
	m.Calls = append(m.Calls, params)
	m.mu.Unlock()
	if m.Fn != nil {
		return m.Fn(params)
	}
	return params.Text, nil
}

func (m *Translator) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
