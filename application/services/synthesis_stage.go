package services

import (
	"context"

	"github.com/KMCooper357/multilingual-pipeline/application/ports/inbound"
	"github.com/KMCooper357/multilingual-pipeline/application/ports/outbound"
	"github.com/KMCooper357/multilingual-pipeline/domain"
)

// voiceTable maps target languages to synthesis voices. Languages without a
// dedicated entry fall back to defaultVoice, so voice resolution is total.
var voiceTable = map[string]string{
	"es": "Lucia",
}

const defaultVoice = "Joanna"

func voiceForLanguage(languageCode string) string {
	if voice, ok := voiceTable[languageCode]; ok {
		return voice
	}
	return defaultVoice
}

type synthesisStage struct {
	synthesizer  outbound.SpeechSynthesizerPort
	logger       outbound.LoggerPort
	outputFormat string
}

func NewSynthesisStage(synthesizer outbound.SpeechSynthesizerPort, logger outbound.LoggerPort, outputFormat string) inbound.SynthesisStagePort {
	return &synthesisStage{
		synthesizer:  synthesizer,
		logger:       logger,
		outputFormat: outputFormat,
	}
}

func (s *synthesisStage) Synthesize(ctx context.Context, text, targetLanguage string) (domain.AudioArtifact, error) {
	if text == "" {
		return domain.AudioArtifact{}, &domain.EmptyInputError{Stage: domain.StageSynthesize}
	}

	voice := voiceForLanguage(targetLanguage)

	payload, err := s.synthesizer.Synthesize(ctx, outbound.SynthesizeParams{
		Text:         text,
		VoiceID:      voice,
		OutputFormat: s.outputFormat,
	})
	if err != nil {
		return domain.AudioArtifact{}, &domain.SynthesisServiceError{Err: err}
	}

	s.logger.DebugWithFields("Synthesized speech", map[string]interface{}{
		"voice":    voice,
		"language": targetLanguage,
		"bytes":    len(payload),
	})

	return domain.AudioArtifact{
		Bytes:        payload,
		Format:       s.outputFormat,
		LanguageCode: targetLanguage,
		VoiceID:      voice,
	}, nil
}
