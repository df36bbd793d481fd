package services

import (
	"context"
	"strings"
	"sync"

	"github.com/KMCooper357/multilingual-pipeline/application/ports/inbound"
	"github.com/KMCooper357/multilingual-pipeline/application/ports/outbound"
	"github.com/KMCooper357/multilingual-pipeline/domain"
)

type pipelineOrchestrator struct {
	store          outbound.ArtifactStorePort
	catalog        outbound.AssetCatalogPort
	transcriber    inbound.TranscriptionJobRunnerPort
	translator     inbound.TranslationStagePort
	synthesizer    inbound.SynthesisStagePort
	reporter       outbound.RunReportSaverPort
	workerPool     outbound.TaskDispatcher
	logger         outbound.LoggerPort
	environment    domain.Environment
	sourceLanguage string
	targetLanguage string
	workerCount    int
}

func NewPipelineOrchestrator(store outbound.ArtifactStorePort, catalog outbound.AssetCatalogPort,
	transcriber inbound.TranscriptionJobRunnerPort, translator inbound.TranslationStagePort,
	synthesizer inbound.SynthesisStagePort, reporter outbound.RunReportSaverPort,
	workerPool outbound.TaskDispatcher, logger outbound.LoggerPort, environment domain.Environment,
	sourceLanguage, targetLanguage string, workerCount int) inbound.PipelineOrchestratorPort {
	return &pipelineOrchestrator{
		store:          store,
		catalog:        catalog,
		transcriber:    transcriber,
		translator:     translator,
		synthesizer:    synthesizer,
		reporter:       reporter,
		workerPool:     workerPool,
		logger:         logger,
		environment:    environment,
		sourceLanguage: sourceLanguage,
		targetLanguage: targetLanguage,
		workerCount:    workerCount,
	}
}

// RunAll processes every asset through the four stages. Assets have no data
// dependency on each other, so with workerCount > 1 they are fanned out to
// the worker pool; each run writes only its own slot, so no locking is
// needed. Results come back in input order either way.
func (o *pipelineOrchestrator) RunAll(ctx context.Context, assets []domain.Asset) []domain.PipelineRun {
	runs := make([]domain.PipelineRun, len(assets))

	if o.workerCount <= 1 {
		for i, asset := range assets {
			runs[i] = o.processAsset(ctx, asset)
		}
		return runs
	}

	var wg sync.WaitGroup
	for i := range assets {
		i := i
		asset := assets[i]
		wg.Add(1)
		task := func() {
			defer wg.Done()
			runs[i] = o.processAsset(ctx, asset)
		}
		if err := o.workerPool.Submit(task); err != nil {
			o.logger.Warn("Worker pool rejected task, processing asset inline")
			task()
		}
	}
	wg.Wait()

	return runs
}

func (o *pipelineOrchestrator) processAsset(ctx context.Context, asset domain.Asset) domain.PipelineRun {
	run := domain.NewPipelineRun(asset, o.environment)

	payload, err := o.catalog.Fetch(ctx, asset)
	if err != nil {
		o.fail(ctx, &run, domain.StageUpload, err)
		return run
	}

	inputKey := domain.BuildKey(o.environment, domain.FolderAudioInputs, asset.BaseName, "", asset.Format)
	if err := o.store.Put(ctx, inputKey, payload); err != nil {
		o.fail(ctx, &run, domain.StageUpload, err)
		return run
	}
	run.InputKey = inputKey
	run.Asset.SourceURI = o.store.URI(inputKey)
	run.Advance(domain.RunUploaded)
	o.logger.InfoWithFields("Uploaded source audio", map[string]interface{}{
		"asset": asset.BaseName,
		"key":   inputKey,
	})

	transcript, err := o.transcriber.Run(ctx, run.Asset)
	if err != nil {
		o.fail(ctx, &run, domain.StageTranscribe, err)
		return run
	}

	transcriptKey := domain.BuildKey(o.environment, domain.FolderTranscripts, asset.BaseName, "", "txt")
	if err := o.store.Put(ctx, transcriptKey, []byte(transcript.Content)); err != nil {
		o.fail(ctx, &run, domain.StageTranscribe, err)
		return run
	}
	run.TranscriptKey = transcriptKey
	run.Advance(domain.RunTranscribed)

	translation, err := o.translator.Translate(ctx, transcript.Content, baseLanguage(o.sourceLanguage), o.targetLanguage)
	if err != nil {
		o.fail(ctx, &run, domain.StageTranslate, err)
		return run
	}

	translationKey := domain.BuildKey(o.environment, domain.FolderTranslations, asset.BaseName, o.targetLanguage, "txt")
	if err := o.store.Put(ctx, translationKey, []byte(translation.Content)); err != nil {
		o.fail(ctx, &run, domain.StageTranslate, err)
		return run
	}
	run.TranslationKey = translationKey
	run.Advance(domain.RunTranslated)

	audio, err := o.synthesizer.Synthesize(ctx, translation.Content, o.targetLanguage)
	if err != nil {
		o.fail(ctx, &run, domain.StageSynthesize, err)
		return run
	}
	run.Advance(domain.RunSynthesized)

	outputKey := domain.BuildKey(o.environment, domain.FolderAudioOutputs, asset.BaseName, o.targetLanguage, audio.Format)
	if err := o.store.Put(ctx, outputKey, audio.Bytes); err != nil {
		o.fail(ctx, &run, domain.StageSynthesize, err)
		return run
	}
	run.OutputKey = outputKey
	run.Advance(domain.RunDone)
	o.logger.InfoWithFields("Asset localized", map[string]interface{}{
		"asset":     asset.BaseName,
		"outputKey": outputKey,
	})

	o.report(ctx, run)
	return run
}

// fail records a terminal failure for this asset and moves on. One asset's
// failure never aborts the run.
func (o *pipelineOrchestrator) fail(ctx context.Context, run *domain.PipelineRun, stage domain.PipelineStage, err error) {
	run.Fail(stage, err)
	o.logger.ErrorWithFields(err, "Pipeline stage failed", map[string]interface{}{
		"asset": run.Asset.BaseName,
		"stage": string(stage),
		"kind":  domain.ErrorKind(err),
	})
	o.report(ctx, *run)
}

// report persistence is best-effort; a reporting failure never alters the
// run's outcome.
func (o *pipelineOrchestrator) report(ctx context.Context, run domain.PipelineRun) {
	if err := o.reporter.Save(ctx, run); err != nil {
		o.logger.ErrorWithFields(err, "Failed to save run report", map[string]interface{}{
			"asset": run.Asset.BaseName,
		})
	}
}

// baseLanguage truncates a regionalized code for the translation service:
// recognition speaks "en-US", translation speaks "en".
func baseLanguage(code string) string {
	if idx := strings.IndexByte(code, '-'); idx > 0 {
		return code[:idx]
	}
	return code
}
