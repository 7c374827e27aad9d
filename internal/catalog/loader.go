package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
)

// starterCatalog ships with the binary so the app is usable before any
// catalog has been fetched or supplied.
//
//go:embed data/wines.json
var starterCatalog []byte

// LoadEmbedded parses the catalog bundled with the binary.
func LoadEmbedded() (*Catalog, error) {
	return Parse(starterCatalog)
}

// LoadFile parses a catalog document from disk.
func LoadFile(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	c, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return c, nil
}

// Load resolves the catalog in priority order: explicit path, the
// cached copy under dataDir, then the embedded starter document. A
// corrupt cache is skipped rather than surfaced; the caller always
// gets a usable catalog unless an explicit path is broken.
func Load(explicitPath, dataDir string) (*Catalog, error) {
	if explicitPath != "" {
		return LoadFile(explicitPath)
	}
	if dataDir != "" {
		cached := filepath.Join(dataDir, CacheFileName)
		if raw, err := os.ReadFile(cached); err == nil {
			if c, err := Parse(raw); err == nil {
				return c, nil
			}
		}
	}
	return LoadEmbedded()
}

// ResolvePath returns the catalog override path from the SOMM_CATALOG
// environment variable, or empty when unset.
func ResolvePath() string {
	return os.Getenv("SOMM_CATALOG")
}
