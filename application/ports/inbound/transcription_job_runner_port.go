package inbound

import (
	"context"

	"github.com/KMCooper357/multilingual-pipeline/domain"
)

// TranscriptionJobRunnerPort submits one recognition job for an uploaded
// asset, polls it to a terminal state, and resolves the transcript text.
type TranscriptionJobRunnerPort interface {
	Run(ctx context.Context, asset domain.Asset) (domain.TextArtifact, error)
}
