package mock

import (
	"context"
	"sync"

	"github.com/KMCooper357/multilingual-pipeline/application/ports/outbound"
	"github.com/KMCooper357/multilingual-pipeline/domain"
)

// RecognitionService is a scripted recognition control plane. Each GetStatus
// call consumes the next entry of Statuses; the last entry repeats once the
// script is exhausted.
type RecognitionService struct {
	mu        sync.Mutex
	SubmitErr error
	StatusErr error
	Statuses  []outbound.JobStatusResult
	Submitted []outbound.SubmitJobParams
	Polls     int
}

func (m *RecognitionService) Submit(_ context.Context, params outbound.SubmitJobParams) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SubmitErr != nil {
		return m.SubmitErr
	}
	m.Submitted = append(m.Submitted, params)
	return nil
}

func (m *RecognitionService) GetStatus(_ context.Context, _ string) (outbound.JobStatusResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.StatusErr != nil {
		return outbound.JobStatusResult{}, m.StatusErr
	}
	if len(m.Statuses) == 0 {
		return outbound.JobStatusResult{Status: domain.JobCompleted}, nil
	}
	idx := m.Polls
	if idx >= len(m.Statuses) {
		idx = len(m.Statuses) - 1
	}
	m.Polls++
	return m.Statuses[idx], nil
}

func (m *RecognitionService) SubmittedJobNames() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	names := make([]string, 0, len(m.Submitted))
	for _, params := range m.Submitted {
		names = append(names, params.JobName)
	}
	return names
}
