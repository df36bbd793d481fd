package adapters

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbattribute"

	"github.com/KMCooper357/multilingual-pipeline/application/ports/outbound"
	"github.com/KMCooper357/multilingual-pipeline/config"
	"github.com/KMCooper357/multilingual-pipeline/domain"
)

type dynamoRunItem struct {
	BaseName       string `dynamodbav:"base_name"`
	Environment    string `dynamodbav:"environment"`
	State          string `dynamodbav:"state"`
	FailedStage    string `dynamodbav:"failed_stage,omitempty"`
	ErrorKind      string `dynamodbav:"error_kind,omitempty"`
	ErrorMessage   string `dynamodbav:"error_message,omitempty"`
	InputKey       string `dynamodbav:"input_key,omitempty"`
	TranscriptKey  string `dynamodbav:"transcript_key,omitempty"`
	TranslationKey string `dynamodbav:"translation_key,omitempty"`
	OutputKey      string `dynamodbav:"output_key,omitempty"`
	StartedAt      int64  `dynamodbav:"started_at"`
	FinishedAt     int64  `dynamodbav:"finished_at"`
	TTL            int64  `dynamodbav:"ttl"`
}

type dynamoRunReporter struct {
	dynamoSvc    *dynamodb.DynamoDB
	reportConfig *config.ReportConfig
	logger       outbound.LoggerPort
}

func NewDynamoRunReporter(dynamoSvc *dynamodb.DynamoDB, reportConfig *config.ReportConfig, logger outbound.LoggerPort) outbound.RunReportSaverPort {
	return &dynamoRunReporter{
		dynamoSvc:    dynamoSvc,
		reportConfig: reportConfig,
		logger:       logger,
	}
}

func (r *dynamoRunReporter) Save(ctx context.Context, run domain.PipelineRun) error {
	item := dynamoRunItem{
		BaseName:       run.Asset.BaseName,
		Environment:    string(run.Environment),
		State:          string(run.State),
		FailedStage:    string(run.FailedStage),
		InputKey:       run.InputKey,
		TranscriptKey:  run.TranscriptKey,
		TranslationKey: run.TranslationKey,
		OutputKey:      run.OutputKey,
		StartedAt:      run.StartedAt.Unix(),
		FinishedAt:     run.FinishedAt.Unix(),
		TTL:            time.Now().Add(time.Duration(r.reportConfig.TtlMinutes) * time.Minute).Unix(),
	}
	if run.Err != nil {
		item.ErrorKind = domain.ErrorKind(run.Err)
		item.ErrorMessage = run.Err.Error()
	}

	av, err := dynamodbattribute.MarshalMap(item)
	if err != nil {
		r.logger.ErrorWithFields(err, "Failed to marshal run report item", map[string]interface{}{
			"asset": run.Asset.BaseName,
		})
		return err
	}

	input := &dynamodb.PutItemInput{
		Item:      av,
		TableName: aws.String(r.reportConfig.TableName),
	}

	_, err = r.dynamoSvc.PutItemWithContext(ctx, input)
	if err != nil {
		r.logger.ErrorWithFields(err, "Failed to save run report item", map[string]interface{}{
			"asset": run.Asset.BaseName,
			"table": r.reportConfig.TableName,
		})
		return err
	}

	return nil
}
