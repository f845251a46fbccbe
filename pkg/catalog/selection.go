package catalog

import "github.com/mugiliam/contentcatalog/pkg/types"

// Selection tracks which single record of a view is expanded. The zero
// value is collapsed. A Selection belongs to one view and is not safe for
// concurrent use.
type Selection struct {
	expanded types.NullableRecordId
}

// SelectionState is the serializable form of a Selection.
type SelectionState struct {
	ExpandedId types.NullableRecordId `json:"expandedId"`
}

func NewSelection() *Selection {
	return &Selection{}
}

// RestoreSelection rebuilds a Selection from a saved state.
func RestoreSelection(state SelectionState) *Selection {
	return &Selection{expanded: state.ExpandedId}
}

// Toggle collapses id if it is the expanded record, otherwise expands id in
// place of whatever was expanded. Ids are not checked against any store; a
// dangling id resolves to no record.
func (s *Selection) Toggle(id types.RecordId) {
	if s.expanded.Valid && s.expanded.Value == id {
		s.expanded.Clear()
		return
	}
	s.expanded.Set(id)
}

// Clear collapses the selection unconditionally.
func (s *Selection) Clear() {
	s.expanded.Clear()
}

// Expanded returns the expanded id, or ok == false when collapsed.
func (s *Selection) Expanded() (types.RecordId, bool) {
	return s.expanded.Value, s.expanded.Valid
}

func (s *Selection) IsExpanded(id types.RecordId) bool {
	return s.expanded.Valid && s.expanded.Value == id
}

func (s *Selection) State() SelectionState {
	return SelectionState{ExpandedId: s.expanded}
}
