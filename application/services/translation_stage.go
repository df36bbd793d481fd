package services

import (
	"context"

	"github.com/KMCooper357/multilingual-pipeline/application/ports/inbound"
	"github.com/KMCooper357/multilingual-pipeline/application/ports/outbound"
	"github.com/KMCooper357/multilingual-pipeline/domain"
)

type translationStage struct {
	translator outbound.TranslatorPort
	logger     outbound.LoggerPort
}

func NewTranslationStage(translator outbound.TranslatorPort, logger outbound.LoggerPort) inbound.TranslationStagePort {
	return &translationStage{
		translator: translator,
		logger:     logger,
	}
}

func (s *translationStage) Translate(ctx context.Context, text, sourceLanguage, targetLanguage string) (domain.TextArtifact, error) {
	artifact := domain.TextArtifact{
		Stage:        domain.TextTranslation,
		LanguageCode: targetLanguage,
	}

	// Empty input passes through as an empty translation.
	if text == "" {
		return artifact, nil
	}

	translated, err := s.translator.Translate(ctx, outbound.TranslateParams{
		Text:           text,
		SourceLanguage: sourceLanguage,
		TargetLanguage: targetLanguage,
	})
	if err != nil {
		return domain.TextArtifact{}, &domain.TranslationServiceError{Err: err}
	}

	artifact.Content = translated
	return artifact, nil
}
