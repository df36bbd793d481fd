package outbound

import (
	"context"

	"github.com/KMCooper357/multilingual-pipeline/domain"
)

// AssetCatalogPort enumerates the source audio recordings of one run and
// exposes their raw bytes.
type AssetCatalogPort interface {
	List(ctx context.Context) ([]domain.Asset, error)
	Fetch(ctx context.Context, asset domain.Asset) ([]byte, error)
}
