package mock

import (
	"context"
	"sync"

	"github.com/KMCooper357/multilingual-pipeline/domain"
)

type RunReporter struct {
	mu    sync.Mutex
	Err   error
	Saved []domain.PipelineRun
}

func (m *RunReporter) Save(_ context.Context, run domain.PipelineRun) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.Saved = append(m.Saved, run)
	return nil
}

func (m *RunReporter) SavedRuns() []domain.PipelineRun {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.PipelineRun(nil), m.Saved...)
}
