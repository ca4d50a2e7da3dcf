package writer

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/leengari/joydb-catalog/internal/catalog"
)

// CatalogFileName is the per-relation catalog metadata file
const CatalogFileName = "catalog.json"

// SaveRelationCatalog persists a relation's catalog entry to
// <basePath>/catalog.json atomically (write temp, then rename)
func SaveRelationCatalog(rel *catalog.Relation, basePath string) error {
	if rel == nil || basePath == "" {
		return fmt.Errorf("cannot save relation catalog: nil relation or missing path")
	}

	meta := rel.ToMeta()

	metaBytes, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal catalog meta for %s: %w", rel.Name, err)
	}

	catalogPath := filepath.Join(basePath, CatalogFileName)
	tmpPath := catalogPath + ".tmp"

	// Write to temp
	if err := os.WriteFile(tmpPath, metaBytes, 0644); err != nil {
		return fmt.Errorf("failed to write temp catalog file for %s: %w", rel.Name, err)
	}

	// Atomic replace
	if err := os.Rename(tmpPath, catalogPath); err != nil {
		return fmt.Errorf("failed to rename temp → %s for relation %s: %w", CatalogFileName, rel.Name, err)
	}

	slog.Info("Relation catalog saved successfully",
		slog.String("relation", rel.Name),
		slog.String("path", catalogPath),
		slog.Int("index_count", rel.NumIndices()),
	)

	return nil
}
