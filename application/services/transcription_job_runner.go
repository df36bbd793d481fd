package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/KMCooper357/multilingual-pipeline/application/ports/inbound"
	"github.com/KMCooper357/multilingual-pipeline/application/ports/outbound"
	"github.com/KMCooper357/multilingual-pipeline/domain"
)

type transcriptionJobRunner struct {
	recognizer   outbound.RecognitionServicePort
	fetcher      outbound.TranscriptFetcherPort
	tokens       outbound.TokenProvider
	logger       outbound.LoggerPort
	environment  domain.Environment
	languageCode string
	pollInterval time.Duration
	pollTimeout  time.Duration
}

func NewTranscriptionJobRunner(recognizer outbound.RecognitionServicePort, fetcher outbound.TranscriptFetcherPort,
	tokens outbound.TokenProvider, logger outbound.LoggerPort, environment domain.Environment,
	languageCode string, pollInterval, pollTimeout time.Duration) inbound.TranscriptionJobRunnerPort {
	return &transcriptionJobRunner{
		recognizer:   recognizer,
		fetcher:      fetcher,
		tokens:       tokens,
		logger:       logger,
		environment:  environment,
		languageCode: languageCode,
		pollInterval: pollInterval,
		pollTimeout:  pollTimeout,
	}
}

func (r *transcriptionJobRunner) Run(ctx context.Context, asset domain.Asset) (domain.TextArtifact, error) {
	jobName := domain.JobName(r.environment, asset.BaseName, r.tokens.NewToken())

	if r.pollTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.pollTimeout)
		defer cancel()
	}

	err := r.recognizer.Submit(ctx, outbound.SubmitJobParams{
		JobName:      jobName,
		MediaURI:     asset.SourceURI,
		MediaFormat:  asset.Format,
		LanguageCode: r.languageCode,
	})
	if err != nil {
		return domain.TextArtifact{}, &domain.TranscriptionJobError{JobName: jobName, Err: err}
	}

	r.logger.InfoWithFields("Submitted transcription job", map[string]interface{}{
		"jobName":  jobName,
		"mediaUri": asset.SourceURI,
	})

	result, err := r.awaitTerminal(ctx, jobName)
	if err != nil {
		return domain.TextArtifact{}, err
	}

	if result.Status == domain.JobFailed {
		return domain.TextArtifact{}, &domain.TranscriptionJobError{JobName: jobName, Reason: result.FailureReason}
	}

	doc, err := r.fetcher.Fetch(ctx, result.ResultLocator)
	if err != nil {
		return domain.TextArtifact{}, &domain.TranscriptionJobError{JobName: jobName, Err: err}
	}

	text, err := extractTranscript(doc, result.ResultLocator)
	if err != nil {
		return domain.TextArtifact{}, err
	}

	r.logger.DebugWithFields("Resolved transcript", map[string]interface{}{
		"jobName": jobName,
		"length":  len(text),
	})

	return domain.TextArtifact{
		Content:      text,
		Stage:        domain.TextTranscript,
		LanguageCode: r.languageCode,
	}, nil
}

// awaitTerminal polls the recognition control plane until the job reaches a
// terminal state. The inter-poll wait is interruptible: cancellation and the
// overall deadline are honored mid-wait, not only at loop entry.
func (r *transcriptionJobRunner) awaitTerminal(ctx context.Context, jobName string) (outbound.JobStatusResult, error) {
	ticker := time.NewTicker(r.pollInterval)
	defer ticker.Stop()

	for {
		result, err := r.recognizer.GetStatus(ctx, jobName)
		if err != nil {
			return outbound.JobStatusResult{}, &domain.TranscriptionJobError{JobName: jobName, Err: err}
		}
		if result.Status.Terminal() {
			return result, nil
		}

		select {
		case <-ctx.Done():
			return outbound.JobStatusResult{}, &domain.TranscriptionJobError{JobName: jobName, Err: ctx.Err()}
		case <-ticker.C:
		}
	}
}

type transcriptDocument struct {
	Results struct {
		Transcripts []struct {
			Transcript *string `json:"transcript"`
		} `json:"transcripts"`
	} `json:"results"`
}

func extractTranscript(doc []byte, locator string) (string, error) {
	var parsed transcriptDocument
	if err := json.Unmarshal(doc, &parsed); err != nil {
		return "", &domain.TranscriptResultParseError{Locator: locator, Err: err}
	}
	if len(parsed.Results.Transcripts) == 0 || parsed.Results.Transcripts[0].Transcript == nil {
		return "", &domain.TranscriptResultParseError{Locator: locator, Err: errors.New("transcript field missing")}
	}
	return *parsed.Results.Transcripts[0].Transcript, nil
}
