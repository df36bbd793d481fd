package main

import (
	"os"

	"github.com/rs/zerolog/log"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		// Only configuration and setup failures land here; per-asset
		// failures are reported in the run summary with exit code 0.
		log.Error().Err(err).Msg("Pipeline setup failed")
		os.Exit(1)
	}
}
