// Package llm defines the structured metadata exchanged with the model
// backend: the typed entity set, the extraction and finalization prompts,
// parsing and validation of model replies, and chunk-result merging.
package llm

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/evgenyd/docs-metadata-enhancer/constants"
)

// ValueKind tags the shape of one metadata field value.
type ValueKind int

const (
	KindScalar ValueKind = iota
	KindList
	KindLinked
)

// LinkedItem is a list entry that has been resolved against the knowledge
// base. Wikidata is empty when linking found no match.
type LinkedItem struct {
	Name     string `json:"name"`
	Wikidata string `json:"wikidata,omitempty"`
}

// FieldValue is a tagged union over the three shapes a metadata field can
// take. Exactly one of Str, List or Linked is meaningful, selected by Kind.
type FieldValue struct {
	Kind   ValueKind
	Str    string
	List   []string
	Linked []LinkedItem
}

// Strings returns the value's entries as plain strings regardless of kind.
func (v FieldValue) Strings() []string {
	switch v.Kind {
	case KindScalar:
		if v.Str == "" {
			return nil
		}
		return []string{v.Str}
	case KindList:
		return v.List
	case KindLinked:
		out := make([]string, 0, len(v.Linked))
		for _, it := range v.Linked {
			out = append(out, it.Name)
		}
		return out
	}
	return nil
}

// IsEmpty reports whether the value carries no entries.
func (v FieldValue) IsEmpty() bool {
	return len(v.Strings()) == 0
}

// MarshalJSON emits the wire shape other tooling round-trips against: a
// string for scalars, an array of strings or {name, wikidata} objects for
// lists.
func (v FieldValue) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case KindScalar:
		return json.Marshal(v.Str)
	case KindList:
		if v.List == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(v.List)
	case KindLinked:
		if v.Linked == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(v.Linked)
	}
	return nil, fmt.Errorf("unknown value kind %d", v.Kind)
}

// EntitySet maps canonical metadata fields to typed values. It is the
// transient shape flowing between extraction, merge, finalization and
// enrichment; only the finalized version is persisted.
type EntitySet struct {
	Fields map[string]FieldValue
}

func NewEntitySet() *EntitySet {
	return &EntitySet{Fields: make(map[string]FieldValue)}
}

func (s *EntitySet) SetScalar(field, val string) {
	s.Fields[field] = FieldValue{Kind: KindScalar, Str: val}
}

func (s *EntitySet) SetList(field string, vals []string) {
	s.Fields[field] = FieldValue{Kind: KindList, List: vals}
}

func (s *EntitySet) SetLinked(field string, items []LinkedItem) {
	s.Fields[field] = FieldValue{Kind: KindLinked, Linked: items}
}

// Get returns the value for a canonical field, zero-valued when absent.
func (s *EntitySet) Get(field string) FieldValue {
	return s.Fields[field]
}

// IsEmpty reports whether no field carries any entry.
func (s *EntitySet) IsEmpty() bool {
	for _, v := range s.Fields {
		if !v.IsEmpty() {
			return false
		}
	}
	return true
}

// MarshalMetadata serializes the set as the persisted metadata object: every
// canonical field present, empty placeholders for fields without evidence.
func (s *EntitySet) MarshalMetadata() (json.RawMessage, error) {
	out := make(map[string]FieldValue, len(constants.MetadataFields))
	for _, f := range constants.MetadataFields {
		v, ok := s.Fields[f]
		if !ok {
			if constants.IsListField(f) {
				v = FieldValue{Kind: KindList}
			} else {
				v = FieldValue{Kind: KindScalar}
			}
		}
		out[f] = v
	}
	return json.Marshal(out)
}

// Extractor produces one entity set per text chunk.
type Extractor interface {
	Extract(ctx context.Context, chunk string) (*EntitySet, error)
}

// Finalizer turns the merged un-deduplicated entity bag into the final
// document metadata.
type Finalizer interface {
	Finalize(ctx context.Context, merged *EntitySet) (*EntitySet, error)
}
