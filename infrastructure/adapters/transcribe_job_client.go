package adapters

import (
	"context"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/transcribeservice"

	"github.com/KMCooper357/multilingual-pipeline/application/ports/outbound"
	"github.com/KMCooper357/multilingual-pipeline/domain"
)

type transcribeJobClient struct {
	transcribeSvc *transcribeservice.TranscribeService
	logger        outbound.LoggerPort
}

func NewTranscribeJobClient(transcribeSvc *transcribeservice.TranscribeService, logger outbound.LoggerPort) outbound.RecognitionServicePort {
	return &transcribeJobClient{
		transcribeSvc: transcribeSvc,
		logger:        logger,
	}
}

func (c *transcribeJobClient) Submit(ctx context.Context, params outbound.SubmitJobParams) error {
	input := &transcribeservice.StartTranscriptionJobInput{
		TranscriptionJobName: aws.String(params.JobName),
		Media: &transcribeservice.Media{
			MediaFileUri: aws.String(params.MediaURI),
		},
		MediaFormat:  aws.String(params.MediaFormat),
		LanguageCode: aws.String(params.LanguageCode),
	}

	_, err := c.transcribeSvc.StartTranscriptionJobWithContext(ctx, input)
	if err != nil {
		c.logger.ErrorWithFields(err, "Failed to start transcription job", map[string]interface{}{
			"jobName":  params.JobName,
			"mediaUri": params.MediaURI,
		})
		return err
	}

	return nil
}

func (c *transcribeJobClient) GetStatus(ctx context.Context, jobName string) (outbound.JobStatusResult, error) {
	out, err := c.transcribeSvc.GetTranscriptionJobWithContext(ctx, &transcribeservice.GetTranscriptionJobInput{
		TranscriptionJobName: aws.String(jobName),
	})
	if err != nil {
		c.logger.ErrorWithFields(err, "Failed to get transcription job status", map[string]interface{}{
			"jobName": jobName,
		})
		return outbound.JobStatusResult{}, err
	}

	job := out.TranscriptionJob
	result := outbound.JobStatusResult{
		Status:        mapJobStatus(aws.StringValue(job.TranscriptionJobStatus)),
		FailureReason: aws.StringValue(job.FailureReason),
	}
	if result.Status == domain.JobCompleted && job.Transcript != nil {
		result.ResultLocator = aws.StringValue(job.Transcript.TranscriptFileUri)
	}

	return result, nil
}

func mapJobStatus(status string) domain.JobStatus {
	switch status {
	case transcribeservice.TranscriptionJobStatusCompleted:
		return domain.JobCompleted
	case transcribeservice.TranscriptionJobStatusFailed:
		return domain.JobFailed
	case transcribeservice.TranscriptionJobStatusQueued:
		return domain.JobPending
	default:
		return domain.JobRunning
	}
}
