package adapters

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/KMCooper357/multilingual-pipeline/application/ports/outbound"
	"github.com/KMCooper357/multilingual-pipeline/domain"
)

type localAssetCatalog struct {
	dir    string
	logger outbound.LoggerPort
}

// NewLocalAssetCatalog discovers mp3 recordings in a local input directory.
func NewLocalAssetCatalog(dir string, logger outbound.LoggerPort) outbound.AssetCatalogPort {
	return &localAssetCatalog{
		dir:    dir,
		logger: logger,
	}
}

func (c *localAssetCatalog) List(_ context.Context) ([]domain.Asset, error) {
	matches, err := filepath.Glob(filepath.Join(c.dir, "*.mp3"))
	if err != nil {
		return nil, err
	}

	assets := make([]domain.Asset, 0, len(matches))
	seen := make(map[string]string, len(matches))
	for _, path := range matches {
		fileName := filepath.Base(path)
		stem := strings.TrimSuffix(fileName, filepath.Ext(fileName))
		baseName := domain.SanitizeBaseName(stem)
		if baseName == "" {
			c.logger.WarnWithFields("Skipping asset with unusable name", map[string]interface{}{
				"file": path,
			})
			continue
		}
		// Sanitization can fold distinct file names into one base name;
		// colliding keys would silently overwrite artifacts.
		if prev, ok := seen[baseName]; ok {
			c.logger.WarnWithFields("Skipping asset whose sanitized name collides", map[string]interface{}{
				"file":     path,
				"collides": prev,
			})
			continue
		}
		seen[baseName] = fileName
		assets = append(assets, domain.Asset{
			BaseName: baseName,
			FileName: fileName,
			Format:   "mp3",
		})
	}

	return assets, nil
}

func (c *localAssetCatalog) Fetch(_ context.Context, asset domain.Asset) ([]byte, error) {
	return os.ReadFile(filepath.Join(c.dir, asset.FileName))
}
