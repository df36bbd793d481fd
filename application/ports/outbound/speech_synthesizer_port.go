package outbound

import "context"

type SynthesizeParams struct {
	Text         string
	VoiceID      string
	OutputFormat string
}

type SpeechSynthesizerPort interface {
	Synthesize(ctx context.Context, params SynthesizeParams) ([]byte, error)
}
