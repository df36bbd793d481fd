package inbound

import (
	"context"

	"github.com/KMCooper357/multilingual-pipeline/domain"
)

type SynthesisStagePort interface {
	Synthesize(ctx context.Context, text, targetLanguage string) (domain.AudioArtifact, error)
}
