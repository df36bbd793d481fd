package adapters

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/s3"

	"github.com/KMCooper357/multilingual-pipeline/application/ports/outbound"
	"github.com/KMCooper357/multilingual-pipeline/config"
	"github.com/KMCooper357/multilingual-pipeline/domain"
)

type s3ArtifactStore struct {
	s3Svc    *s3.S3
	s3Config *config.S3Config
	logger   outbound.LoggerPort
}

func NewS3ArtifactStore(s3Svc *s3.S3, s3Config *config.S3Config, logger outbound.LoggerPort) outbound.ArtifactStorePort {
	return &s3ArtifactStore{
		s3Svc:    s3Svc,
		s3Config: s3Config,
		logger:   logger,
	}
}

func (s *s3ArtifactStore) Put(ctx context.Context, key string, payload []byte) error {
	putInput := &s3.PutObjectInput{
		Bucket:        aws.String(s.s3Config.BucketName),
		Key:           aws.String(key),
		Body:          bytes.NewReader(payload),
		ContentLength: aws.Int64(int64(len(payload))),
	}

	_, err := s.s3Svc.PutObjectWithContext(ctx, putInput)
	if err != nil {
		s.logger.ErrorWithFields(err, "Failed to upload object to S3", map[string]interface{}{
			"bucket": s.s3Config.BucketName,
			"key":    key,
		})
		return &domain.StorageWriteError{Key: key, Err: err}
	}

	s.logger.DebugWithFields("Uploaded object to S3", map[string]interface{}{
		"bucket": s.s3Config.BucketName,
		"key":    key,
	})

	return nil
}

func (s *s3ArtifactStore) URI(key string) string {
	return fmt.Sprintf("s3://%s/%s", s.s3Config.BucketName, key)
}
