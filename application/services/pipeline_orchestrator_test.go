package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KMCooper357/multilingual-pipeline/application/ports/inbound"
	"github.com/KMCooper357/multilingual-pipeline/application/ports/outbound"
	"github.com/KMCooper357/multilingual-pipeline/domain"
	"github.com/KMCooper357/multilingual-pipeline/infrastructure/adapters"
	"github.com/KMCooper357/multilingual-pipeline/mock"
)

type orchestratorFixture struct {
	store       *mock.ArtifactStore
	catalog     *mock.AssetCatalog
	recognition *mock.RecognitionService
	fetcher     *mock.TranscriptFetcher
	translator  *mock.Translator
	synthesizer *mock.Synthesizer
	reporter    *mock.RunReporter
}

func (f *orchestratorFixture) orchestrator(workerPool outbound.TaskDispatcher, workerCount int) inbound.PipelineOrchestratorPort {
	logger := adapters.NewZerologWrapper()
	runner := NewTranscriptionJobRunner(f.recognition, f.fetcher, &mock.SequenceTokenProvider{},
		logger, domain.EnvBeta, "en-US", time.Millisecond, 0)
	return NewPipelineOrchestrator(f.store, f.catalog, runner,
		NewTranslationStage(f.translator, logger),
		NewSynthesisStage(f.synthesizer, logger, "mp3"),
		f.reporter, workerPool, logger, domain.EnvBeta, "en-US", "es", workerCount)
}

func newFixture(baseNames ...string) *orchestratorFixture {
	catalog := &mock.AssetCatalog{Payloads: make(map[string][]byte)}
	for _, baseName := range baseNames {
		catalog.Assets = append(catalog.Assets, domain.Asset{
			BaseName: baseName,
			FileName: baseName + ".mp3",
			Format:   "mp3",
		})
		catalog.Payloads[baseName] = []byte("raw audio of " + baseName)
	}
	return &orchestratorFixture{
		store:   mock.NewArtifactStore(),
		catalog: catalog,
		recognition: &mock.RecognitionService{
			Statuses: []outbound.JobStatusResult{
				{Status: domain.JobCompleted, ResultLocator: "https://results.example/doc.json"},
			},
		},
		fetcher:     &mock.TranscriptFetcher{Doc: []byte(transcriptDoc)},
		translator:  &mock.Translator{},
		synthesizer: &mock.Synthesizer{},
		reporter:    &mock.RunReporter{},
	}
}

func TestRunAllHappyPathPersistsEveryArtifact(t *testing.T) {
	fixture := newFixture("sample")
	orchestrator := fixture.orchestrator(mock.SyncDispatcher{}, 1)

	runs := orchestrator.RunAll(context.Background(), fixture.catalog.Assets)
	require.Len(t, runs, 1)

	run := runs[0]
	assert.Equal(t, domain.RunDone, run.State)
	assert.True(t, run.Succeeded())
	assert.Equal(t, "beta/audio_inputs/sample.mp3", run.InputKey)
	assert.Equal(t, "beta/transcripts/sample.txt", run.TranscriptKey)
	assert.Equal(t, "beta/translations/sample_es.txt", run.TranslationKey)
	assert.Equal(t, "beta/audio_outputs/sample_es.mp3", run.OutputKey)

	raw, ok := fixture.store.Get("beta/audio_inputs/sample.mp3")
	require.True(t, ok)
	assert.Equal(t, []byte("raw audio of sample"), raw)

	transcript, ok := fixture.store.Get("beta/transcripts/sample.txt")
	require.True(t, ok)
	assert.Equal(t, "hello world", string(transcript))

	audio, ok := fixture.store.Get("beta/audio_outputs/sample_es.mp3")
	require.True(t, ok)
	assert.NotEmpty(t, audio)

	saved := fixture.reporter.SavedRuns()
	require.Len(t, saved, 1)
	assert.Equal(t, domain.RunDone, saved[0].State)
}

// With an identity translator the persisted translation must equal the
// transcript byte for byte.
func TestRunAllIdentityTranslationRoundTrip(t *testing.T) {
	fixture := newFixture("sample")
	orchestrator := fixture.orchestrator(mock.SyncDispatcher{}, 1)

	runs := orchestrator.RunAll(context.Background(), fixture.catalog.Assets)
	require.Len(t, runs, 1)
	require.Equal(t, domain.RunDone, runs[0].State)

	transcript, ok := fixture.store.Get("beta/transcripts/sample.txt")
	require.True(t, ok)
	translation, ok := fixture.store.Get("beta/translations/sample_es.txt")
	require.True(t, ok)
	assert.Equal(t, transcript, translation)
}

func TestRunAllRecognitionFailureSkipsLaterStages(t *testing.T) {
	fixture := newFixture("sample")
	fixture.recognition.Statuses = []outbound.JobStatusResult{
		{Status: domain.JobFailed, FailureReason: "bad audio"},
	}
	orchestrator := fixture.orchestrator(mock.SyncDispatcher{}, 1)

	runs := orchestrator.RunAll(context.Background(), fixture.catalog.Assets)
	require.Len(t, runs, 1)

	run := runs[0]
	assert.Equal(t, domain.RunFailed, run.State)
	assert.Equal(t, domain.StageTranscribe, run.FailedStage)
	assert.Equal(t, "transcription_job", domain.ErrorKind(run.Err))
	assert.Equal(t, 0, fixture.translator.CallCount())
	assert.Equal(t, 0, fixture.synthesizer.CallCount())

	saved := fixture.reporter.SavedRuns()
	require.Len(t, saved, 1)
	assert.Equal(t, domain.StageTranscribe, saved[0].FailedStage)
}

func TestRunAllIsolatesPerAssetFailures(t *testing.T) {
	fixture := newFixture("alpha", "bravo")
	var calls int
	var mu sync.Mutex
	fixture.translator.Fn = func(params outbound.TranslateParams) (string, error) {
		mu.Lock()
		defer mu.Unlock()
		calls++
		if calls == 1 {
			return "", errors.New("quota exceeded")
		}
		return params.Text, nil
	}
	orchestrator := fixture.orchestrator(mock.SyncDispatcher{}, 1)

	runs := orchestrator.RunAll(context.Background(), fixture.catalog.Assets)
	require.Len(t, runs, 2)

	assert.Equal(t, domain.RunFailed, runs[0].State)
	assert.Equal(t, domain.StageTranslate, runs[0].FailedStage)
	assert.Equal(t, "translation_service", domain.ErrorKind(runs[0].Err))

	assert.Equal(t, domain.RunDone, runs[1].State)
	_, ok := fixture.store.Get("beta/audio_outputs/bravo_es.mp3")
	assert.True(t, ok)
}

func TestRunAllUploadFailure(t *testing.T) {
	fixture := newFixture("sample")
	fixture.store.FailPrefix = "beta/audio_inputs"
	orchestrator := fixture.orchestrator(mock.SyncDispatcher{}, 1)

	runs := orchestrator.RunAll(context.Background(), fixture.catalog.Assets)
	require.Len(t, runs, 1)

	assert.Equal(t, domain.RunFailed, runs[0].State)
	assert.Equal(t, domain.StageUpload, runs[0].FailedStage)
	assert.Equal(t, "storage_write", domain.ErrorKind(runs[0].Err))
	assert.Empty(t, fixture.recognition.SubmittedJobNames())
}

// An empty transcript translates to an empty translation (persisted), then
// synthesis rejects the empty input. The partial run is a valid terminal
// record, not rolled back.
func TestRunAllEmptyTranscriptEndsAtSynthesis(t *testing.T) {
	fixture := newFixture("sample")
	fixture.fetcher.Doc = []byte(`{"results":{"transcripts":[{"transcript":""}]}}`)
	orchestrator := fixture.orchestrator(mock.SyncDispatcher{}, 1)

	runs := orchestrator.RunAll(context.Background(), fixture.catalog.Assets)
	require.Len(t, runs, 1)

	run := runs[0]
	assert.Equal(t, domain.RunFailed, run.State)
	assert.Equal(t, domain.StageSynthesize, run.FailedStage)
	assert.Equal(t, "empty_input", domain.ErrorKind(run.Err))

	translation, ok := fixture.store.Get("beta/translations/sample_es.txt")
	require.True(t, ok)
	assert.Empty(t, translation)
}

func TestRunAllConcurrentKeepsOrderAndUniqueJobNames(t *testing.T) {
	baseNames := []string{"alpha", "bravo", "charlie", "delta"}
	fixture := newFixture(baseNames...)

	workerPool, err := ants.NewPool(3)
	require.NoError(t, err)
	defer workerPool.Release()

	orchestrator := fixture.orchestrator(workerPool, 3)

	runs := orchestrator.RunAll(context.Background(), fixture.catalog.Assets)
	require.Len(t, runs, len(baseNames))

	for i, run := range runs {
		assert.Equal(t, baseNames[i], run.Asset.BaseName, "results must come back in input order")
		assert.Equal(t, domain.RunDone, run.State)
	}

	names := fixture.recognition.SubmittedJobNames()
	require.Len(t, names, len(baseNames))
	unique := make(map[string]struct{}, len(names))
	for _, name := range names {
		unique[name] = struct{}{}
	}
	assert.Len(t, unique, len(baseNames))
}

func TestRunAllReporterFailureDoesNotChangeOutcome(t *testing.T) {
	fixture := newFixture("sample")
	fixture.reporter.Err = fmt.Errorf("table missing")
	orchestrator := fixture.orchestrator(mock.SyncDispatcher{}, 1)

	runs := orchestrator.RunAll(context.Background(), fixture.catalog.Assets)
	require.Len(t, runs, 1)
	assert.Equal(t, domain.RunDone, runs[0].State)
}
