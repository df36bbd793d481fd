package inbound

import (
	"context"

	"github.com/KMCooper357/multilingual-pipeline/domain"
)

// PipelineOrchestratorPort drives every asset through upload, transcription,
// translation, and synthesis. Per-asset failures are recorded in the returned
// runs and never propagate as errors.
type PipelineOrchestratorPort interface {
	RunAll(ctx context.Context, assets []domain.Asset) []domain.PipelineRun
}
