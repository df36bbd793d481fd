package domain

import "time"

type Environment string

const (
	EnvBeta Environment = "beta"
	EnvProd Environment = "prod"
)

// EnvironmentFromRef maps the deploy ref signal to a key prefix. Only the
// main branch ref selects prod; everything else lands in beta.
func EnvironmentFromRef(ref string) Environment {
	if ref == "refs/heads/main" {
		return EnvProd
	}
	return EnvBeta
}

// Asset identifies one source audio recording. SourceURI is empty until the
// raw bytes have been uploaded to the artifact store.
type Asset struct {
	BaseName  string
	FileName  string
	Format    string
	SourceURI string
}

type TextStage string

const (
	TextTranscript  TextStage = "transcript"
	TextTranslation TextStage = "translation"
)

type TextArtifact struct {
	Content      string
	Stage        TextStage
	LanguageCode string
}

type AudioArtifact struct {
	Bytes        []byte
	Format       string
	LanguageCode string
	VoiceID      string
}

type JobStatus string

const (
	JobPending   JobStatus = "PENDING"
	JobRunning   JobStatus = "RUNNING"
	JobCompleted JobStatus = "COMPLETED"
	JobFailed    JobStatus = "FAILED"
)

func (s JobStatus) Terminal() bool {
	return s == JobCompleted || s == JobFailed
}

type PipelineStage string

const (
	StageUpload     PipelineStage = "upload"
	StageTranscribe PipelineStage = "transcribe"
	StageTranslate  PipelineStage = "translate"
	StageSynthesize PipelineStage = "synthesize"
)

type RunState string

const (
	RunDiscovered  RunState = "DISCOVERED"
	RunUploaded    RunState = "UPLOADED"
	RunTranscribed RunState = "TRANSCRIBED"
	RunTranslated  RunState = "TRANSLATED"
	RunSynthesized RunState = "SYNTHESIZED"
	RunDone        RunState = "DONE"
	RunFailed      RunState = "FAILED"
)

// PipelineRun is the per-asset execution record. A partially completed run
// (transcript persisted, translation failed) is a valid terminal record and
// is never rolled back.
type PipelineRun struct {
	Asset          Asset
	Environment    Environment
	State          RunState
	FailedStage    PipelineStage
	Err            error
	InputKey       string
	TranscriptKey  string
	TranslationKey string
	OutputKey      string
	StartedAt      time.Time
	FinishedAt     time.Time
}

func NewPipelineRun(asset Asset, env Environment) PipelineRun {
	return PipelineRun{
		Asset:       asset,
		Environment: env,
		State:       RunDiscovered,
		StartedAt:   time.Now(),
	}
}

func (r *PipelineRun) Advance(state RunState) {
	r.State = state
	if state == RunDone {
		r.FinishedAt = time.Now()
	}
}

func (r *PipelineRun) Fail(stage PipelineStage, err error) {
	r.State = RunFailed
	r.FailedStage = stage
	r.Err = err
	r.FinishedAt = time.Now()
}

func (r PipelineRun) Succeeded() bool {
	return r.State == RunDone
}
