package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildKey(t *testing.T) {
	assert.Equal(t, "beta/transcripts/sample.txt", BuildKey(EnvBeta, FolderTranscripts, "sample", "", "txt"))
	assert.Equal(t, "prod/translations/sample_es.txt", BuildKey(EnvProd, FolderTranslations, "sample", "es", "txt"))
	assert.Equal(t, "beta/audio_inputs/sample.mp3", BuildKey(EnvBeta, FolderAudioInputs, "sample", "", "mp3"))
	assert.Equal(t, "beta/audio_outputs/sample_es.mp3", BuildKey(EnvBeta, FolderAudioOutputs, "sample", "es", "mp3"))
}

func TestSanitizeBaseName(t *testing.T) {
	cases := map[string]string{
		"Hello_World":   "Hello-World",
		"a  b!!c":       "a-b-c",
		"ok-name.v2":    "ok-name.v2",
		"___":           "",
		"-leading-":     "leading",
		"über recording": "ber-recording",
	}
	for input, want := range cases {
		assert.Equal(t, want, SanitizeBaseName(input), "input %q", input)
	}
}

func TestJobNameHasNoUnderscores(t *testing.T) {
	name := JobName(EnvBeta, "my-file", "tok_1")
	assert.Equal(t, "beta-my-file-tok-1", name)
	assert.False(t, strings.Contains(name, "_"))
}

func TestEnvironmentFromRef(t *testing.T) {
	assert.Equal(t, EnvProd, EnvironmentFromRef("refs/heads/main"))
	assert.Equal(t, EnvBeta, EnvironmentFromRef("refs/heads/feature"))
	assert.Equal(t, EnvBeta, EnvironmentFromRef(""))
}
