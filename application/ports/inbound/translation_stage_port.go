package inbound

import (
	"context"

	"github.com/KMCooper357/multilingual-pipeline/domain"
)

type TranslationStagePort interface {
	Translate(ctx context.Context, text, sourceLanguage, targetLanguage string) (domain.TextArtifact, error)
}
