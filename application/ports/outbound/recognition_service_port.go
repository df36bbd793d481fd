package outbound

import (
	"context"

	"github.com/KMCooper357/multilingual-pipeline/domain"
)

type SubmitJobParams struct {
	JobName      string
	MediaURI     string
	MediaFormat  string
	LanguageCode string
}

type JobStatusResult struct {
	Status domain.JobStatus
	// ResultLocator is populated only when Status is COMPLETED.
	ResultLocator string
	FailureReason string
}

// RecognitionServicePort is the asynchronous speech-recognition control
// plane. Submit registers a job; completion is observed by polling GetStatus.
type RecognitionServicePort interface {
	Submit(ctx context.Context, params SubmitJobParams) error
	GetStatus(ctx context.Context, jobName string) (JobStatusResult, error)
}
