package adapters

import (
	"github.com/google/uuid"

	"github.com/KMCooper357/multilingual-pipeline/application/ports/outbound"
)

type uuidTokenProvider struct{}

// NewUUIDTokenProvider yields collision-free job-name tokens. Wall-clock
// seconds would collide for same-named assets processed in the same second.
func NewUUIDTokenProvider() outbound.TokenProvider {
	return uuidTokenProvider{}
}

func (uuidTokenProvider) NewToken() string {
	return uuid.NewString()
}
