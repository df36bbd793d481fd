package adapters

import (
	"context"
	"io"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/polly"

	"github.com/KMCooper357/multilingual-pipeline/application/ports/outbound"
)

type pollySynthesizer struct {
	pollySvc *polly.Polly
	logger   outbound.LoggerPort
}

func NewPollySynthesizer(pollySvc *polly.Polly, logger outbound.LoggerPort) outbound.SpeechSynthesizerPort {
	return &pollySynthesizer{
		pollySvc: pollySvc,
		logger:   logger,
	}
}

func (p *pollySynthesizer) Synthesize(ctx context.Context, params outbound.SynthesizeParams) ([]byte, error) {
	out, err := p.pollySvc.SynthesizeSpeechWithContext(ctx, &polly.SynthesizeSpeechInput{
		Text:         aws.String(params.Text),
		VoiceId:      aws.String(params.VoiceID),
		OutputFormat: aws.String(params.OutputFormat),
	})
	if err != nil {
		p.logger.ErrorWithFields(err, "Failed to synthesize speech", map[string]interface{}{
			"voice":  params.VoiceID,
			"format": params.OutputFormat,
		})
		return nil, err
	}

	defer func(stream io.ReadCloser) {
		if err := stream.Close(); err != nil {
			p.logger.Error(err, "Failed to close the audio stream")
		}
	}(out.AudioStream)

	payload, err := io.ReadAll(out.AudioStream)
	if err != nil {
		p.logger.Error(err, "Failed to read the audio stream")
		return nil, err
	}

	return payload, nil
}
