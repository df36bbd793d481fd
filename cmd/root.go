package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/polly"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/transcribeservice"
	"github.com/aws/aws-sdk-go/service/translate"
	"github.com/panjf2000/ants/v2"
	"github.com/spf13/cobra"

	"github.com/KMCooper357/multilingual-pipeline/application/ports/outbound"
	"github.com/KMCooper357/multilingual-pipeline/application/services"
	"github.com/KMCooper357/multilingual-pipeline/config"
	"github.com/KMCooper357/multilingual-pipeline/infrastructure/adapters"
)

func newRootCommand() *cobra.Command {
	var (
		inputDirFlag       string
		targetLanguageFlag string
		workersFlag        int
		pollIntervalFlag   int
		pollTimeoutFlag    int
	)

	cmd := &cobra.Command{
		Use:           "localize-audio",
		Short:         "Transcribe, translate, and re-voice audio recordings",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("input-dir") {
				cfg.Pipeline.InputDir = inputDirFlag
			}
			if cmd.Flags().Changed("target-language") {
				cfg.Pipeline.TargetLanguage = targetLanguageFlag
			}
			if cmd.Flags().Changed("workers") {
				if workersFlag < 1 {
					return fmt.Errorf("--workers must be positive")
				}
				cfg.Pipeline.WorkerCount = workersFlag
			}
			if cmd.Flags().Changed("poll-interval") {
				if pollIntervalFlag < 1 {
					return fmt.Errorf("--poll-interval must be positive")
				}
				cfg.Pipeline.PollInterval = time.Duration(pollIntervalFlag) * time.Second
			}
			if cmd.Flags().Changed("poll-timeout") {
				if pollTimeoutFlag < 0 {
					return fmt.Errorf("--poll-timeout must be non-negative")
				}
				cfg.Pipeline.PollTimeout = time.Duration(pollTimeoutFlag) * time.Second
			}

			return runPipeline(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringVar(&inputDirFlag, "input-dir", "", "Directory containing source mp3 recordings")
	cmd.Flags().StringVar(&targetLanguageFlag, "target-language", "", "Target language code (default es)")
	cmd.Flags().IntVar(&workersFlag, "workers", 0, "Number of assets processed concurrently")
	cmd.Flags().IntVar(&pollIntervalFlag, "poll-interval", 0, "Transcription poll interval in seconds")
	cmd.Flags().IntVar(&pollTimeoutFlag, "poll-timeout", 0, "Per-job poll timeout in seconds, 0 for unbounded")

	return cmd
}

func runPipeline(ctx context.Context, cfg *config.Config) error {
	logger := adapters.NewZerologWrapper()

	sess := session.Must(session.NewSessionWithOptions(session.Options{
		Config:            aws.Config{Region: aws.String(cfg.AWS.Region)},
		SharedConfigState: session.SharedConfigEnable,
	}))

	panicHandler := func(p interface{}) {
		logger.Error(fmt.Errorf("%v", p), "Panic in worker pool")
	}

	workerPool, err := ants.NewPool(cfg.Pipeline.WorkerCount, ants.WithPanicHandler(panicHandler))
	if err != nil {
		return fmt.Errorf("failed to create worker pool: %w", err)
	}
	defer workerPool.Release()

	store := adapters.NewS3ArtifactStore(s3.New(sess), cfg.S3, logger)
	recognizer := adapters.NewTranscribeJobClient(transcribeservice.New(sess), logger)
	fetcher := adapters.NewTranscriptFetcher(logger)
	translator := adapters.NewTranslateClient(translate.New(sess), logger)
	synthesizer := adapters.NewPollySynthesizer(polly.New(sess), logger)
	catalog := adapters.NewLocalAssetCatalog(cfg.Pipeline.InputDir, logger)
	tokens := adapters.NewUUIDTokenProvider()

	var reporter outbound.RunReportSaverPort = adapters.NewNoopRunReporter()
	if cfg.Report.TableName != "" {
		reporter = adapters.NewDynamoRunReporter(dynamodb.New(sess), cfg.Report, logger)
	}

	jobRunner := services.NewTranscriptionJobRunner(recognizer, fetcher, tokens, logger,
		cfg.Pipeline.Environment, cfg.Pipeline.SourceLanguage, cfg.Pipeline.PollInterval, cfg.Pipeline.PollTimeout)
	translationStage := services.NewTranslationStage(translator, logger)
	synthesisStage := services.NewSynthesisStage(synthesizer, logger, "mp3")

	orchestrator := services.NewPipelineOrchestrator(store, catalog, jobRunner, translationStage,
		synthesisStage, reporter, workerPool, logger, cfg.Pipeline.Environment,
		cfg.Pipeline.SourceLanguage, cfg.Pipeline.TargetLanguage, cfg.Pipeline.WorkerCount)

	assets, err := catalog.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to discover assets in %s: %w", cfg.Pipeline.InputDir, err)
	}
	if len(assets) == 0 {
		logger.WarnWithFields("No audio assets found", map[string]interface{}{
			"inputDir": cfg.Pipeline.InputDir,
		})
		return nil
	}

	logger.InfoWithFields("Starting localization run", map[string]interface{}{
		"environment":    string(cfg.Pipeline.Environment),
		"assets":         len(assets),
		"targetLanguage": cfg.Pipeline.TargetLanguage,
		"workers":        cfg.Pipeline.WorkerCount,
	})

	runs := orchestrator.RunAll(ctx, assets)
	renderRunReport(os.Stdout, runs)

	return nil
}
