package entity

import (
	"encoding/json"
	"fmt"
	"strings"

	domainerror "github.com/pocket-ledger/backend/internal/domain/error"
)

// TagList is the canonical ordered representation of transaction tags.
// Upstream data may supply tags either as a proper array or as a raw
// comma-joined string; both shapes are normalized here, at the data-model
// boundary, so the rest of the core never branches on shape.
type TagList []string

// ParseTagList splits a raw comma-joined string into a normalized tag list.
// Whitespace around tags is trimmed and empty entries are dropped.
func ParseTagList(raw string) TagList {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	tags := make(TagList, 0, len(parts))
	for _, p := range parts {
		if tag := strings.TrimSpace(p); tag != "" {
			tags = append(tags, tag)
		}
	}
	if len(tags) == 0 {
		return nil
	}
	return tags
}

// Normalize trims each tag and drops empty entries, preserving order.
func (t TagList) Normalize() TagList {
	if len(t) == 0 {
		return nil
	}
	tags := make(TagList, 0, len(t))
	for _, tag := range t {
		if trimmed := strings.TrimSpace(tag); trimmed != "" {
			tags = append(tags, trimmed)
		}
	}
	if len(tags) == 0 {
		return nil
	}
	return tags
}

// SearchJoin joins tags with single spaces for free-text matching.
func (t TagList) SearchJoin() string {
	return strings.Join(t, " ")
}

// ExportJoin joins tags with "; " for tabular export, disambiguating the tag
// separator from the CSV field separator.
func (t TagList) ExportJoin() string {
	return strings.Join(t, "; ")
}

// UnmarshalJSON accepts either a JSON array of strings or a single
// comma-joined string.
func (t *TagList) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*t = TagList(list).Normalize()
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: tags must be an array of strings or a comma-joined string", domainerror.ErrMalformedRecord)
	}
	*t = ParseTagList(raw)
	return nil
}

// MarshalJSON always renders tags as an array, never as a raw string.
func (t TagList) MarshalJSON() ([]byte, error) {
	if t == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(t))
}
