package merge

import (
	"strings"

	"github.com/google/uuid"

	"github.com/agentstation/gtfsmerge/pkg/constants"
)

// keyMode is the deduplication strategy derived from a table's identifier
// fields and the reference header.
type keyMode int

const (
	// keySynthetic gives every row a fresh unique key (no deduplication).
	keySynthetic keyMode = iota
	// keySingle keys on one column; rows with an empty value are dropped.
	keySingle
	// keyComposite concatenates several columns; empty keys are kept.
	keyComposite
)

// KeyBuilder computes merge keys for rows aligned to one reference header.
type KeyBuilder struct {
	mode    keyMode
	indexes []int
}

// NewKeyBuilder resolves idFields against reference.
//
// No id fields, or a single id field absent from the reference header,
// yields synthetic keys. For composite keys, fields absent from the
// reference header are skipped.
func NewKeyBuilder(reference Header, idFields []string) *KeyBuilder {
	switch len(idFields) {
	case 0:
		return &KeyBuilder{mode: keySynthetic}
	case 1:
		idx := reference.Index(idFields[0])
		if idx < 0 {
			return &KeyBuilder{mode: keySynthetic}
		}
		return &KeyBuilder{mode: keySingle, indexes: []int{idx}}
	default:
		indexes := make([]int, 0, len(idFields))
		for _, field := range idFields {
			if idx := reference.Index(field); idx >= 0 {
				indexes = append(indexes, idx)
			}
		}
		return &KeyBuilder{mode: keyComposite, indexes: indexes}
	}
}

// Synthetic reports whether every row receives a generated key.
func (b *KeyBuilder) Synthetic() bool {
	return b.mode == keySynthetic
}

// Key returns the merge key for an aligned row and whether the row should
// be kept. Only single-column keys drop rows (when the value is empty).
// A composite key whose components are all empty is kept and collides
// with every other such row.
func (b *KeyBuilder) Key(aligned []string) (string, bool) {
	switch b.mode {
	case keySingle:
		v := aligned[b.indexes[0]]
		return v, v != ""
	case keyComposite:
		var sb strings.Builder
		for _, idx := range b.indexes {
			sb.WriteString(aligned[idx])
			sb.WriteString(constants.KeySeparator)
		}
		return sb.String(), true
	default:
		return uuid.NewString(), true
	}
}

// BuildKey is the one-shot form of NewKeyBuilder(reference, idFields).Key(aligned).
func BuildKey(aligned []string, reference Header, idFields []string) (string, bool) {
	return NewKeyBuilder(reference, idFields).Key(aligned)
}
