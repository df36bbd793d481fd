package adapters

import (
	"context"

	"github.com/KMCooper357/multilingual-pipeline/application/ports/outbound"
	"github.com/KMCooper357/multilingual-pipeline/domain"
)

type noopRunReporter struct{}

// NewNoopRunReporter is wired when no report table is configured.
func NewNoopRunReporter() outbound.RunReportSaverPort {
	return noopRunReporter{}
}

func (noopRunReporter) Save(_ context.Context, _ domain.PipelineRun) error {
	return nil
}
