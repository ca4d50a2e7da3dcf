package catalog

import (
	"github.com/leengari/joydb-catalog/internal/storage/blocks"
	"github.com/leengari/joydb-catalog/internal/storage/metadata"
)

// IndexScheme records, for one relation, which index implementation variants
// back each named secondary index. It maps an index name to the ordered list
// of sub-block descriptions registered under that name.
//
// IndexScheme is NOT internally synchronized. The owning catalog entry
// (see Relation) must hold its lock across every call when the scheme is
// shared between goroutines.
//
// Entries are only ever added: there is no way to remove or modify a
// registered index, matching the catalog's monotonic lifecycle.
type IndexScheme struct {
	indexMap map[string][]blocks.IndexSubBlockDescription

	// indexNames preserves registration order so serialization is
	// deterministic across runs (Go map iteration is not).
	indexNames []string
}

// NewIndexScheme creates an empty index scheme
func NewIndexScheme() *IndexScheme {
	return &IndexScheme{
		indexMap: make(map[string][]blocks.IndexSubBlockDescription),
	}
}

// NumIndices returns the number of distinct index names registered
func (s *IndexScheme) NumIndices() int {
	return len(s.indexMap)
}

// HasIndexWithName reports whether an index with the given name exists
func (s *IndexScheme) HasIndexWithName(indexName string) bool {
	_, ok := s.indexMap[indexName]
	return ok
}

// HasIndexWithDescription scans every stored description under every name
// and reports whether any of them is similar to the given description.
// This is a full scan, not a keyed lookup.
func (s *IndexScheme) HasIndexWithDescription(desc blocks.IndexSubBlockDescription) bool {
	for _, descriptions := range s.indexMap {
		for _, stored := range descriptions {
			if areIndexDescriptionsSimilar(stored, desc) {
				return true
			}
		}
	}
	return false
}

// areIndexDescriptionsSimilar reports whether two descriptions describe
// an equivalent index. Descriptions with different sub-block types are
// never similar.
// TODO: also compare attribute ids, so two indices of the same sub-block
// type over different attribute sets stop counting as duplicates.
func areIndexDescriptionsSimilar(a, b blocks.IndexSubBlockDescription) bool {
	return a.SubBlockType == b.SubBlockType
}

// AddIndexMapEntry registers a new index under the given name. It returns
// false and leaves the scheme unchanged if the name is already taken.
//
// The descriptions are copied in, in order; the caller keeps ownership of
// the slice it passed. Similarity is deliberately NOT checked here — callers
// that want duplicate prevention must check HasIndexWithName and
// HasIndexWithDescription first.
func (s *IndexScheme) AddIndexMapEntry(indexName string, descriptions []blocks.IndexSubBlockDescription) bool {
	if _, ok := s.indexMap[indexName]; ok {
		return false // index name is already present
	}

	stored := make([]blocks.IndexSubBlockDescription, 0, len(descriptions))
	for _, desc := range descriptions {
		stored = append(stored, desc.Copy())
	}

	s.indexMap[indexName] = stored
	s.indexNames = append(s.indexNames, indexName)
	return true
}

// IndexNames returns the registered index names in registration order
func (s *IndexScheme) IndexNames() []string {
	names := make([]string, len(s.indexNames))
	copy(names, s.indexNames)
	return names
}

// IndexDescriptions returns copies of the descriptions registered under
// the given name, in stored order, or nil if the name is unknown.
func (s *IndexScheme) IndexDescriptions(indexName string) []blocks.IndexSubBlockDescription {
	descriptions, ok := s.indexMap[indexName]
	if !ok {
		return nil
	}
	out := make([]blocks.IndexSubBlockDescription, 0, len(descriptions))
	for _, desc := range descriptions {
		out = append(out, desc.Copy())
	}
	return out
}

// ToMeta serializes the scheme into its persisted record form. Entries are
// emitted in registration order, descriptions in stored order, so the output
// is the exact inverse of ReconstructFromMeta.
func (s *IndexScheme) ToMeta() metadata.IndexSchemeMeta {
	meta := metadata.IndexSchemeMeta{}
	for _, name := range s.indexNames {
		entry := metadata.IndexEntryMeta{
			IndexName: name,
		}
		for _, desc := range s.indexMap[name] {
			entry.Descriptions = append(entry.Descriptions, desc.ToMeta())
		}
		meta.Entries = append(meta.Entries, entry)
	}
	return meta
}

// MetaIsValid reports whether a persisted scheme record is fully formed:
// every entry carries a non-empty, unique index name and every description
// passes the sub-block validator. It is a pure predicate — malformed input
// yields false, never a panic.
func MetaIsValid(meta metadata.IndexSchemeMeta) bool {
	seen := make(map[string]struct{}, len(meta.Entries))
	for _, entry := range meta.Entries {
		if entry.IndexName == "" {
			return false
		}
		if _, dup := seen[entry.IndexName]; dup {
			return false
		}
		seen[entry.IndexName] = struct{}{}

		for _, descMeta := range entry.Descriptions {
			if !blocks.DescriptionMetaIsValid(descMeta) {
				return false
			}
		}
	}
	return true
}

// ReconstructFromMeta rebuilds an index scheme from its persisted record,
// preserving record order.
//
// Precondition: the caller has already checked MetaIsValid and got true.
// Behavior on records that fail validation is unspecified.
func ReconstructFromMeta(meta metadata.IndexSchemeMeta) *IndexScheme {
	scheme := NewIndexScheme()
	for _, entry := range meta.Entries {
		descriptions := make([]blocks.IndexSubBlockDescription, 0, len(entry.Descriptions))
		for _, descMeta := range entry.Descriptions {
			descriptions = append(descriptions, blocks.DescriptionFromMeta(descMeta))
		}
		scheme.AddIndexMapEntry(entry.IndexName, descriptions)
	}
	return scheme
}
