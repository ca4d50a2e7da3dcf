package catalog

import (
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/leengari/joydb-catalog/internal/storage/blocks"
	"github.com/leengari/joydb-catalog/internal/storage/metadata"
)

// CatalogVersion is the current version of the persisted catalog format
const CatalogVersion = 1

// Relation is a relation's catalog entry. It owns the relation's index
// scheme and provides the mutual exclusion the scheme itself does not:
// every scheme access goes through the relation's RWMutex.
type Relation struct {
	mu     sync.RWMutex
	ID     string // stable relation identifier (UUID)
	Name   string
	scheme *IndexScheme
}

// NewRelation creates a catalog entry with an empty index scheme
func NewRelation(name string) *Relation {
	return &Relation{
		ID:     uuid.New().String(),
		Name:   name,
		scheme: NewIndexScheme(),
	}
}

// AddIndex registers a new index on the relation. It rejects names already
// in use and descriptions similar to one already registered, then installs
// the entry atomically under the write lock.
func (r *Relation) AddIndex(indexName string, descriptions []blocks.IndexSubBlockDescription) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.scheme.HasIndexWithName(indexName) {
		return NewIndexNameCollision(r.Name, indexName)
	}

	for _, desc := range descriptions {
		if r.scheme.HasIndexWithDescription(desc) {
			return NewSimilarIndex(r.Name, indexName, desc.SubBlockType)
		}
	}

	// Cannot fail here: name uniqueness was checked under the same lock
	r.scheme.AddIndexMapEntry(indexName, descriptions)

	slog.Debug("index registered",
		slog.String("relation", r.Name),
		slog.String("index", indexName),
		slog.Int("descriptions", len(descriptions)),
	)

	return nil
}

// HasIndex reports whether the relation has an index with the given name
func (r *Relation) HasIndex(indexName string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.scheme.HasIndexWithName(indexName)
}

// HasSimilarIndex reports whether any registered index is similar to the
// given description
func (r *Relation) HasSimilarIndex(desc blocks.IndexSubBlockDescription) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.scheme.HasIndexWithDescription(desc)
}

// NumIndices returns how many indices are defined on the relation
func (r *Relation) NumIndices() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.scheme.NumIndices()
}

// IndexNames returns the relation's index names in registration order
func (r *Relation) IndexNames() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.scheme.IndexNames()
}

// IndexDescriptions returns copies of the descriptions registered under the
// given index name, or nil if the name is unknown
func (r *Relation) IndexDescriptions(indexName string) []blocks.IndexSubBlockDescription {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.scheme.IndexDescriptions(indexName)
}

// ToMeta snapshots the catalog entry into its persisted record form
func (r *Relation) ToMeta() metadata.RelationCatalogMeta {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return metadata.RelationCatalogMeta{
		RelationID:   r.ID,
		RelationName: r.Name,
		Version:      CatalogVersion,
		IndexScheme:  r.scheme.ToMeta(),
	}
}

// RelationMetaIsValid reports whether a persisted relation catalog record is
// fully formed: a parseable relation id, a non-empty name, and a valid index
// scheme record. Pure predicate, never panics.
func RelationMetaIsValid(meta metadata.RelationCatalogMeta) bool {
	if meta.RelationName == "" {
		return false
	}
	if _, err := uuid.Parse(meta.RelationID); err != nil {
		return false
	}
	return MetaIsValid(meta.IndexScheme)
}

// RelationFromMeta rebuilds a catalog entry from its persisted record.
//
// Precondition: the caller has already checked RelationMetaIsValid and got
// true. Behavior on records that fail validation is unspecified.
func RelationFromMeta(meta metadata.RelationCatalogMeta) *Relation {
	return &Relation{
		ID:     meta.RelationID,
		Name:   meta.RelationName,
		scheme: ReconstructFromMeta(meta.IndexScheme),
	}
}
