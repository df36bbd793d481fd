package domain

import (
	"errors"
	"fmt"
)

// StorageWriteError reports a failed durable write to the artifact store.
type StorageWriteError struct {
	Key string
	Err error
}

func (e *StorageWriteError) Error() string {
	return fmt.Sprintf("storage write for key %q failed: %v", e.Key, e.Err)
}

func (e *StorageWriteError) Unwrap() error { return e.Err }

// TranscriptionJobError reports a recognition job that failed, could not be
// submitted, or could not be polled to completion.
type TranscriptionJobError struct {
	JobName string
	Reason  string
	Err     error
}

func (e *TranscriptionJobError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("transcription job %q failed: %s", e.JobName, e.Reason)
	}
	return fmt.Sprintf("transcription job %q failed: %v", e.JobName, e.Err)
}

func (e *TranscriptionJobError) Unwrap() error { return e.Err }

// TranscriptResultParseError reports a completed job whose result document
// did not contain the expected transcript field.
type TranscriptResultParseError struct {
	Locator string
	Err     error
}

func (e *TranscriptResultParseError) Error() string {
	return fmt.Sprintf("transcript document at %q is malformed: %v", e.Locator, e.Err)
}

func (e *TranscriptResultParseError) Unwrap() error { return e.Err }

type TranslationServiceError struct {
	Err error
}

func (e *TranslationServiceError) Error() string {
	return fmt.Sprintf("translation service call failed: %v", e.Err)
}

func (e *TranslationServiceError) Unwrap() error { return e.Err }

type SynthesisServiceError struct {
	Err error
}

func (e *SynthesisServiceError) Error() string {
	return fmt.Sprintf("synthesis service call failed: %v", e.Err)
}

func (e *SynthesisServiceError) Unwrap() error { return e.Err }

// EmptyInputError marks a stage that cannot operate on empty text.
type EmptyInputError struct {
	Stage PipelineStage
}

func (e *EmptyInputError) Error() string {
	return fmt.Sprintf("stage %s received empty input text", e.Stage)
}

// ErrorKind names the failure category of a pipeline error for operator
// reports.
func ErrorKind(err error) string {
	var (
		storageErr     *StorageWriteError
		jobErr         *TranscriptionJobError
		parseErr       *TranscriptResultParseError
		translationErr *TranslationServiceError
		synthesisErr   *SynthesisServiceError
		emptyErr       *EmptyInputError
	)
	switch {
	case errors.As(err, &storageErr):
		return "storage_write"
	case errors.As(err, &jobErr):
		return "transcription_job"
	case errors.As(err, &parseErr):
		return "transcript_parse"
	case errors.As(err, &translationErr):
		return "translation_service"
	case errors.As(err, &synthesisErr):
		return "synthesis_service"
	case errors.As(err, &emptyErr):
		return "empty_input"
	default:
		return "unknown"
	}
}
