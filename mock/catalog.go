package mock

import (
	"context"
	"fmt"

	"github.com/KMCooper357/multilingual-pipeline/domain"
)

type AssetCatalog struct {
	Assets   []domain.Asset
	Payloads map[string][]byte
	FetchErr map[string]error
}

func (m *AssetCatalog) List(_ context.Context) ([]domain.Asset, error) {
	return m.Assets, nil
}

func (m *AssetCatalog) Fetch(_ context.Context, asset domain.Asset) ([]byte, error) {
	if err, ok := m.FetchErr[asset.BaseName]; ok {
		return nil, err
	}
	payload, ok := m.Payloads[asset.BaseName]
	if !ok {
		return nil, fmt.Errorf("no payload for asset %q", asset.BaseName)
	}
	return payload, nil
}
