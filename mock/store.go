package mock

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/KMCooper357/multilingual-pipeline/domain"
)

// ArtifactStore keeps artifacts in memory. Writes whose key starts with
// FailPrefix are rejected with a StorageWriteError.
type ArtifactStore struct {
	mu         sync.Mutex
	Objects    map[string][]byte
	FailPrefix string
}

func NewArtifactStore() *ArtifactStore {
	return &ArtifactStore{Objects: make(map[string][]byte)}
}

func (m *ArtifactStore) Put(_ context.Context, key string, payload []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailPrefix != "" && strings.HasPrefix(key, m.FailPrefix) {
		return &domain.StorageWriteError{Key: key, Err: fmt.Errorf("write rejected")}
	}
	m.Objects[key] = append([]byte(nil), payload...)
	return nil
}

func (m *ArtifactStore) URI(key string) string {
	return "mem://test-bucket/" + key
}

func (m *ArtifactStore) Get(key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	payload, ok := m.Objects[key]
	return payload, ok
}
