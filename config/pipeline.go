package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/KMCooper357/multilingual-pipeline/domain"
)

type PipelineConfig struct {
	Environment    domain.Environment
	TargetLanguage string
	SourceLanguage string
	InputDir       string
	PollInterval   time.Duration
	// PollTimeout bounds one transcription job's polling loop. Zero means
	// unbounded; production runs should set a bound.
	PollTimeout time.Duration
	WorkerCount int
}

func GetPipelineConfig() (*PipelineConfig, error) {
	targetLanguage := os.Getenv("TARGET_LANGUAGE")
	if targetLanguage == "" {
		targetLanguage = "es"
	}

	sourceLanguage := os.Getenv("SOURCE_LANGUAGE")
	if sourceLanguage == "" {
		sourceLanguage = "en-US"
	}

	inputDir := os.Getenv("INPUT_DIR")
	if inputDir == "" {
		inputDir = "audio_inputs"
	}

	pollInterval, err := secondsEnv("POLL_INTERVAL_SECONDS", 5)
	if err != nil {
		return nil, err
	}
	if pollInterval <= 0 {
		return nil, fmt.Errorf("POLL_INTERVAL_SECONDS must be positive")
	}

	pollTimeout, err := secondsEnv("POLL_TIMEOUT_SECONDS", 0)
	if err != nil {
		return nil, err
	}

	workerCount := 1
	if raw := os.Getenv("WORKER_COUNT"); raw != "" {
		workerCount, err = strconv.Atoi(raw)
		if err != nil || workerCount < 1 {
			return nil, fmt.Errorf("WORKER_COUNT must be a positive integer")
		}
	}

	return &PipelineConfig{
		Environment:    domain.EnvironmentFromRef(os.Getenv("GITHUB_REF")),
		TargetLanguage: targetLanguage,
		SourceLanguage: sourceLanguage,
		InputDir:       inputDir,
		PollInterval:   pollInterval,
		PollTimeout:    pollTimeout,
		WorkerCount:    workerCount,
	}, nil
}

func secondsEnv(name string, fallback int) (time.Duration, error) {
	raw := os.Getenv(name)
	if raw == "" {
		return time.Duration(fallback) * time.Second, nil
	}
	seconds, err := strconv.Atoi(raw)
	if err != nil || seconds < 0 {
		return 0, fmt.Errorf("%s must be a non-negative integer", name)
	}
	return time.Duration(seconds) * time.Second, nil
}
