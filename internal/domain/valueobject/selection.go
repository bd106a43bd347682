package valueobject

import "github.com/google/uuid"

// Selection tracks the set of explicitly selected transaction ids. When
// non-empty it overrides the filtered view as the aggregation and export
// scope.
type Selection map[uuid.UUID]struct{}

// NewSelection creates an empty selection.
func NewSelection(ids ...uuid.UUID) Selection {
	s := make(Selection, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Contains reports membership.
func (s Selection) Contains(id uuid.UUID) bool {
	_, ok := s[id]
	return ok
}

// Toggle flips membership for a single id. Toggling twice restores the
// previous state.
func (s Selection) Toggle(id uuid.UUID) {
	if s.Contains(id) {
		delete(s, id)
	} else {
		s[id] = struct{}{}
	}
}

// ToggleAll implements select-all semantics over the currently displayed
// set: if every displayed id is already selected the selection empties,
// otherwise it becomes exactly the displayed set.
func (s *Selection) ToggleAll(displayed []uuid.UUID) {
	if len(*s) == len(displayed) && len(displayed) > 0 {
		allSelected := true
		for _, id := range displayed {
			if !s.Contains(id) {
				allSelected = false
				break
			}
		}
		if allSelected {
			*s = NewSelection()
			return
		}
	}

	*s = NewSelection(displayed...)
}

// IDs returns the selected ids in unspecified order.
func (s Selection) IDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	return ids
}
