package storage

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/leengari/joydb-catalog/internal/catalog"
	"github.com/leengari/joydb-catalog/internal/storage/metadata"
)

// LoadRelationCatalog reads a relation's catalog.json, validates it, and
// reconstructs the catalog entry. Validation failures are errors here —
// reconstruction itself assumes validated input.
func LoadRelationCatalog(catalogPath string) (*catalog.Relation, error) {
	data, err := os.ReadFile(catalogPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read relation catalog: %w", err)
	}

	var meta metadata.RelationCatalogMeta
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("failed to parse relation catalog: %w", err)
	}

	if !catalog.RelationMetaIsValid(meta) {
		return nil, fmt.Errorf("relation catalog %s is malformed", catalogPath)
	}

	rel := catalog.RelationFromMeta(meta)

	slog.Info("Relation catalog loaded successfully",
		slog.String("relation", rel.Name),
		slog.String("path", catalogPath),
		slog.Int("index_count", rel.NumIndices()),
	)

	return rel, nil
}

// ValidateRelationCatalog checks a catalog file without constructing a
// catalog entry. Malformed content (bad JSON included) yields false with a
// nil error; only I/O failures are reported as errors.
func ValidateRelationCatalog(catalogPath string) (bool, error) {
	data, err := os.ReadFile(catalogPath)
	if err != nil {
		return false, fmt.Errorf("failed to read relation catalog: %w", err)
	}

	var meta metadata.RelationCatalogMeta
	if err := json.Unmarshal(data, &meta); err != nil {
		return false, nil
	}

	return catalog.RelationMetaIsValid(meta), nil
}
