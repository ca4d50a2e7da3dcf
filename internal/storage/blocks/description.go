package blocks

import (
	"github.com/leengari/joydb-catalog/internal/storage/metadata"
)

// IndexSubBlockType identifies the physical storage format backing an index
type IndexSubBlockType uint8

const (
	IndexSubBlockTypeUnknown IndexSubBlockType = iota
	IndexSubBlockTypeBTree
	IndexSubBlockTypeCSBTree
	IndexSubBlockTypeHash
	IndexSubBlockTypeSMA
	IndexSubBlockTypeBloomFilter
	IndexSubBlockTypeBitWeavingH
	IndexSubBlockTypeBitWeavingV
)

// String returns a human-readable name for the sub-block type
func (t IndexSubBlockType) String() string {
	switch t {
	case IndexSubBlockTypeBTree:
		return "BTREE"
	case IndexSubBlockTypeCSBTree:
		return "CSB_TREE"
	case IndexSubBlockTypeHash:
		return "HASH"
	case IndexSubBlockTypeSMA:
		return "SMA"
	case IndexSubBlockTypeBloomFilter:
		return "BLOOM_FILTER"
	case IndexSubBlockTypeBitWeavingH:
		return "BITWEAVING_H"
	case IndexSubBlockTypeBitWeavingV:
		return "BITWEAVING_V"
	default:
		return "UNKNOWN"
	}
}

// SubBlockTypeFromString parses a persisted type tag back into an
// IndexSubBlockType. Unrecognized tags map to IndexSubBlockTypeUnknown.
func SubBlockTypeFromString(s string) IndexSubBlockType {
	switch s {
	case "BTREE":
		return IndexSubBlockTypeBTree
	case "CSB_TREE":
		return IndexSubBlockTypeCSBTree
	case "HASH":
		return IndexSubBlockTypeHash
	case "SMA":
		return IndexSubBlockTypeSMA
	case "BLOOM_FILTER":
		return IndexSubBlockTypeBloomFilter
	case "BITWEAVING_H":
		return IndexSubBlockTypeBitWeavingH
	case "BITWEAVING_V":
		return IndexSubBlockTypeBitWeavingV
	default:
		return IndexSubBlockTypeUnknown
	}
}

// IndexSubBlockDescription describes one index implementation variant:
// which sub-block type backs it, the attributes it covers, and any
// implementation-specific tuning properties.
//
// It is a plain value type. The catalog stores its own copies (see Copy),
// so callers are free to reuse or mutate a description after handing it in.
type IndexSubBlockDescription struct {
	SubBlockType IndexSubBlockType
	AttributeIDs []int
	Properties   map[string]int64
}

// Copy returns a deep copy of the description
func (d IndexSubBlockDescription) Copy() IndexSubBlockDescription {
	cp := IndexSubBlockDescription{
		SubBlockType: d.SubBlockType,
	}
	if d.AttributeIDs != nil {
		cp.AttributeIDs = make([]int, len(d.AttributeIDs))
		copy(cp.AttributeIDs, d.AttributeIDs)
	}
	if d.Properties != nil {
		cp.Properties = make(map[string]int64, len(d.Properties))
		for k, v := range d.Properties {
			cp.Properties[k] = v
		}
	}
	return cp
}

// IsValid reports whether the description is well-formed:
// the sub-block type must be known, attribute ids must be non-negative,
// and attribute-backed sub-block types must cover at least one attribute.
func (d IndexSubBlockDescription) IsValid() bool {
	switch d.SubBlockType {
	case IndexSubBlockTypeBTree, IndexSubBlockTypeCSBTree, IndexSubBlockTypeHash:
		// Key-ordered and hash formats may be built over zero attributes
		// at description time (attributes resolved when the block is built).
	case IndexSubBlockTypeSMA, IndexSubBlockTypeBloomFilter,
		IndexSubBlockTypeBitWeavingH, IndexSubBlockTypeBitWeavingV:
		if len(d.AttributeIDs) == 0 {
			return false
		}
	default:
		return false
	}

	for _, id := range d.AttributeIDs {
		if id < 0 {
			return false
		}
	}
	return true
}

// ToMeta converts the description to its persisted record form
func (d IndexSubBlockDescription) ToMeta() metadata.IndexDescriptionMeta {
	meta := metadata.IndexDescriptionMeta{
		SubBlockType: d.SubBlockType.String(),
	}
	if len(d.AttributeIDs) > 0 {
		meta.AttributeIDs = make([]int, len(d.AttributeIDs))
		copy(meta.AttributeIDs, d.AttributeIDs)
	}
	if len(d.Properties) > 0 {
		meta.Properties = make(map[string]int64, len(d.Properties))
		for k, v := range d.Properties {
			meta.Properties[k] = v
		}
	}
	return meta
}

// DescriptionMetaIsValid reports whether a persisted description record is
// well-formed. It never panics on malformed input.
func DescriptionMetaIsValid(meta metadata.IndexDescriptionMeta) bool {
	return DescriptionFromMeta(meta).IsValid()
}

// DescriptionFromMeta reconstructs a description from its persisted record
// form. Callers should check DescriptionMetaIsValid first; an unrecognized
// type tag comes back as IndexSubBlockTypeUnknown.
func DescriptionFromMeta(meta metadata.IndexDescriptionMeta) IndexSubBlockDescription {
	desc := IndexSubBlockDescription{
		SubBlockType: SubBlockTypeFromString(meta.SubBlockType),
	}
	if len(meta.AttributeIDs) > 0 {
		desc.AttributeIDs = make([]int, len(meta.AttributeIDs))
		copy(desc.AttributeIDs, meta.AttributeIDs)
	}
	if len(meta.Properties) > 0 {
		desc.Properties = make(map[string]int64, len(meta.Properties))
		for k, v := range meta.Properties {
			desc.Properties[k] = v
		}
	}
	return desc
}
