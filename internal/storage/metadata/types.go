package metadata

// IndexDescriptionMeta is the persisted form of a single index sub-block
// description
type IndexDescriptionMeta struct {
	SubBlockType string           `json:"sub_block_type"`
	AttributeIDs []int            `json:"attribute_ids,omitempty"`
	Properties   map[string]int64 `json:"properties,omitempty"`
}

// IndexEntryMeta pairs an index name with its descriptions, in stored order
type IndexEntryMeta struct {
	IndexName    string                 `json:"index_name"`
	Descriptions []IndexDescriptionMeta `json:"descriptions,omitempty"`
}

// IndexSchemeMeta is the persisted form of a relation's index scheme.
// Entry order matters: it is the scheme's registration order.
type IndexSchemeMeta struct {
	Entries []IndexEntryMeta `json:"entries,omitempty"`
}

// RelationCatalogMeta is the on-disk catalog.json for a single relation
type RelationCatalogMeta struct {
	RelationID   string          `json:"relation_id"`
	RelationName string          `json:"relation_name"`
	Version      int             `json:"version"`
	IndexScheme  IndexSchemeMeta `json:"index_scheme"`
}
