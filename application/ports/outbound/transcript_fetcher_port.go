package outbound

import "context"

// TranscriptFetcherPort retrieves the raw result document of a completed
// recognition job from its result locator.
type TranscriptFetcherPort interface {
	Fetch(ctx context.Context, locator string) ([]byte, error)
}
