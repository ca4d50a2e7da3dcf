package catalog

import (
	"fmt"

	"github.com/leengari/joydb-catalog/internal/storage/blocks"
)

// IndexNameCollisionError reports an attempt to register an index under a
// name the relation already uses
type IndexNameCollisionError struct {
	Relation  string // relation name
	IndexName string // offending index name
}

func (e *IndexNameCollisionError) Error() string {
	return fmt.Sprintf("index name collision in relation %s: index %q already exists",
		e.Relation, e.IndexName)
}

// SimilarIndexError reports an attempt to register an index whose description
// is similar to one already registered (possibly under a different name)
type SimilarIndexError struct {
	Relation     string // relation name
	IndexName    string // name the caller tried to register
	SubBlockType blocks.IndexSubBlockType
}

func (e *SimilarIndexError) Error() string {
	return fmt.Sprintf("similar index already defined in relation %s: rejected %q (%s)",
		e.Relation, e.IndexName, e.SubBlockType)
}

func NewIndexNameCollision(relation, indexName string) *IndexNameCollisionError {
	return &IndexNameCollisionError{
		Relation:  relation,
		IndexName: indexName,
	}
}

func NewSimilarIndex(relation, indexName string, subBlockType blocks.IndexSubBlockType) *SimilarIndexError {
	return &SimilarIndexError{
		Relation:     relation,
		IndexName:    indexName,
		SubBlockType: subBlockType,
	}
}
