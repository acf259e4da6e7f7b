package listview

import "sort"

// Selection tracks a set of selected ids plus a best-effort "all selected"
// flag. Ids are stored as a set: callers must not rely on order or
// duplicates surviving.
type Selection struct {
	ids map[string]struct{}
	all bool
}

func NewSelection() *Selection {
	return &Selection{ids: make(map[string]struct{})}
}

// Toggle adds or removes a single id. It always drops the all-selected
// flag, even when the toggle happens to complete the visible set: selecting
// everything must go through SelectAll explicitly.
func (s *Selection) Toggle(id string, selected bool) {
	if selected {
		s.ids[id] = struct{}{}
	} else {
		delete(s.ids, id)
	}
	s.all = false
}

// SelectAll with selected=true replaces the selection with exactly the
// visible ids (the current page, not the full filtered set). With
// selected=false it clears both the set and the flag.
func (s *Selection) SelectAll(visible []string, selected bool) {
	s.ids = make(map[string]struct{}, len(visible))
	s.all = false
	if !selected {
		return
	}
	for _, id := range visible {
		s.ids[id] = struct{}{}
	}
	s.all = true
}

func (s *Selection) IsAllSelected() bool {
	return s.all
}

func (s *Selection) Contains(id string) bool {
	_, ok := s.ids[id]
	return ok
}

func (s *Selection) Len() int {
	return len(s.ids)
}

// IDs returns the selected ids in sorted order for deterministic output.
func (s *Selection) IDs() []string {
	out := make([]string, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Resolve intersects the selection with the current collection ids,
// preserving collection order. A selection surviving a refetch silently
// drops ids that no longer exist, so bulk operations never act on stale
// entries.
func (s *Selection) Resolve(current []string) []string {
	out := make([]string, 0, len(s.ids))
	for _, id := range current {
		if _, ok := s.ids[id]; ok {
			out = append(out, id)
		}
	}
	return out
}

// ResolveSelection is the one-shot form used by bulk handlers: intersect a
// raw id list with the ids present in the current collection.
func ResolveSelection(selected, current []string) []string {
	sel := NewSelection()
	for _, id := range selected {
		sel.Toggle(id, true)
	}
	return sel.Resolve(current)
}
