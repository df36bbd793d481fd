package adapters

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/KMCooper357/multilingual-pipeline/application/ports/outbound"
)

type transcriptFetcher struct {
	client *http.Client
	logger outbound.LoggerPort
}

func NewTranscriptFetcher(logger outbound.LoggerPort) outbound.TranscriptFetcherPort {
	return &transcriptFetcher{
		client: &http.Client{},
		logger: logger,
	}
}

// Fetch downloads the result document of a completed recognition job. The
// locator is a pre-signed URL handed out by the recognition service.
func (f *transcriptFetcher) Fetch(ctx context.Context, locator string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, locator, nil)
	if err != nil {
		f.logger.ErrorWithFields(err, "Failed to build transcript request", map[string]interface{}{
			"URL": locator,
		})
		return nil, err
	}

	res, err := f.client.Do(req)
	if err != nil {
		f.logger.ErrorWithFields(err, "Failed to fetch transcript document", map[string]interface{}{
			"URL": locator,
		})
		return nil, err
	}

	defer func(body io.ReadCloser) {
		if err := body.Close(); err != nil {
			f.logger.ErrorWithFields(err, "Failed to close the response body", map[string]interface{}{
				"URL": locator,
			})
		}
	}(res.Body)

	if res.StatusCode != http.StatusOK {
		bodyPayload, _ := io.ReadAll(res.Body)
		f.logger.ErrorWithFields(nil, "Transcript fetch returned non-OK status code", map[string]interface{}{
			"URL":     locator,
			"status":  res.StatusCode,
			"message": string(bodyPayload),
		})
		return nil, fmt.Errorf("transcript fetch returned status code %d", res.StatusCode)
	}

	payload, err := io.ReadAll(res.Body)
	if err != nil {
		f.logger.ErrorWithFields(err, "Failed to read the response body", map[string]interface{}{
			"URL": locator,
		})
		return nil, err
	}

	return payload, nil
}
