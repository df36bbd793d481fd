package outbound

import (
	"context"

	"github.com/KMCooper357/multilingual-pipeline/domain"
)

// RunReportSaverPort persists one record per terminal pipeline run so that
// operators can re-run only the failed assets.
type RunReportSaverPort interface {
	Save(ctx context.Context, run domain.PipelineRun) error
}
