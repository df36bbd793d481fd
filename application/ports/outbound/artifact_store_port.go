package outbound

import "context"

// ArtifactStorePort persists stage artifacts under hierarchical keys. Writes
// are durable and visible to subsequent calls from this process.
type ArtifactStorePort interface {
	Put(ctx context.Context, key string, payload []byte) error
	// URI returns the service-native locator for a key, suitable for handing
	// to external services that read from the store directly.
	URI(key string) string
}
