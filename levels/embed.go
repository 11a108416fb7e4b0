package levels

import (
	"embed"
	"fmt"
	"os"
)

//go:embed catalog.yaml
var catalogFS embed.FS

// LoadCatalog returns the embedded level catalog.
func LoadCatalog() (*Catalog, error) {
	data, err := catalogFS.ReadFile("catalog.yaml")
	if err != nil {
		return nil, fmt.Errorf("levels: read embedded catalog: %w", err)
	}
	return parseCatalog(data)
}

// LoadCatalogFromFile reads a catalog override from disk, for iterating on
// level tuning without rebuilding.
func LoadCatalogFromFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("levels: read %s: %w", path, err)
	}
	return parseCatalog(data)
}
