package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KMCooper357/multilingual-pipeline/domain"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("S3_BUCKET", "pixellearning-beta")
	t.Setenv("AWS_REGION", "")
	t.Setenv("GITHUB_REF", "")
	t.Setenv("TARGET_LANGUAGE", "")
	t.Setenv("SOURCE_LANGUAGE", "")
	t.Setenv("INPUT_DIR", "")
	t.Setenv("POLL_INTERVAL_SECONDS", "")
	t.Setenv("POLL_TIMEOUT_SECONDS", "")
	t.Setenv("WORKER_COUNT", "")
	t.Setenv("RUN_REPORT_TABLE", "")
	t.Setenv("RUN_REPORT_TTL_MINUTES", "")
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "us-east-1", cfg.AWS.Region)
	assert.Equal(t, "pixellearning-beta", cfg.S3.BucketName)
	assert.Equal(t, domain.EnvBeta, cfg.Pipeline.Environment)
	assert.Equal(t, "es", cfg.Pipeline.TargetLanguage)
	assert.Equal(t, "en-US", cfg.Pipeline.SourceLanguage)
	assert.Equal(t, "audio_inputs", cfg.Pipeline.InputDir)
	assert.Equal(t, 5*time.Second, cfg.Pipeline.PollInterval)
	assert.Equal(t, time.Duration(0), cfg.Pipeline.PollTimeout)
	assert.Equal(t, 1, cfg.Pipeline.WorkerCount)
	assert.Empty(t, cfg.Report.TableName)
}

func TestLoadRequiresBucket(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("S3_BUCKET", "")

	_, err := Load()
	require.Error(t, err)
}

func TestLoadMainRefSelectsProd(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("GITHUB_REF", "refs/heads/main")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, domain.EnvProd, cfg.Pipeline.Environment)
}

func TestLoadRejectsInvalidNumbers(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("POLL_INTERVAL_SECONDS", "often")

	_, err := Load()
	require.Error(t, err)

	setRequiredEnv(t)
	t.Setenv("WORKER_COUNT", "0")

	_, err = Load()
	require.Error(t, err)
}

func TestLoadOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("TARGET_LANGUAGE", "de")
	t.Setenv("POLL_INTERVAL_SECONDS", "2")
	t.Setenv("POLL_TIMEOUT_SECONDS", "600")
	t.Setenv("WORKER_COUNT", "8")
	t.Setenv("RUN_REPORT_TABLE", "localization-runs")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "de", cfg.Pipeline.TargetLanguage)
	assert.Equal(t, 2*time.Second, cfg.Pipeline.PollInterval)
	assert.Equal(t, 10*time.Minute, cfg.Pipeline.PollTimeout)
	assert.Equal(t, 8, cfg.Pipeline.WorkerCount)
	assert.Equal(t, "localization-runs", cfg.Report.TableName)
}
