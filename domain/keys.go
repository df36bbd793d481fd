package domain

import (
	"fmt"
	"strings"
)

// Storage folders, one per pipeline stage output.
const (
	FolderAudioInputs  = "audio_inputs"
	FolderTranscripts  = "transcripts"
	FolderTranslations = "translations"
	FolderAudioOutputs = "audio_outputs"
)

// BuildKey produces a hierarchical storage key of the form
// {env}/{folder}/{baseName}[_{suffix}].{ext}. Keys for distinct base names
// never collide.
func BuildKey(env Environment, folder, baseName, suffix, ext string) string {
	name := baseName
	if suffix != "" {
		name = baseName + "_" + suffix
	}
	return fmt.Sprintf("%s/%s/%s.%s", env, folder, name, ext)
}

// JobName derives a recognition job name from the run environment, the asset
// base name, and a process-unique token. The recognition service rejects
// underscores in job names, so any that survive sanitization are replaced.
func JobName(env Environment, baseName, token string) string {
	name := fmt.Sprintf("%s-%s-%s", env, baseName, token)
	return strings.ReplaceAll(name, "_", "-")
}

// SanitizeBaseName canonicalizes a filename stem for use in storage keys and
// job names. Runes outside [A-Za-z0-9.-] become hyphens, consecutive hyphens
// collapse, and leading/trailing hyphens are trimmed. Returns "" when nothing
// usable remains.
func SanitizeBaseName(stem string) string {
	var b strings.Builder
	b.Grow(len(stem))
	lastHyphen := false
	for _, r := range stem {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.Trim(b.String(), "-")
}
