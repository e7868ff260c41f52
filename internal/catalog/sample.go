package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
)

//go:embed sample_catalog.yaml
var sampleCatalog []byte

// WriteSample writes the bundled example catalog to path unless a file exists there.
func WriteSample(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return false, fmt.Errorf("failed to create catalog directory: %w", err)
	}
	if err := os.WriteFile(path, sampleCatalog, 0644); err != nil {
		return false, fmt.Errorf("failed to write catalog: %w", err)
	}
	return true, nil
}
