package viewmodel

import "sort"

// Selection tracks which loaded products are checked. Only ids that have
// appeared in a loaded page can be selected.
type Selection struct {
	selected map[string]bool
	known    map[string]struct{}
}

func NewSelection() *Selection {
	return &Selection{
		selected: map[string]bool{},
		known:    map[string]struct{}{},
	}
}

// Observe records ids seen in a loaded page.
func (s *Selection) Observe(ids []string) {
	for _, id := range ids {
		s.known[id] = struct{}{}
	}
}

// ToggleAll sets every given id to checked and leaves the rest alone.
func (s *Selection) ToggleAll(ids []string, checked bool) {
	for _, id := range ids {
		s.ToggleOne(id, checked)
	}
}

func (s *Selection) ToggleOne(id string, checked bool) {
	if _, ok := s.known[id]; !ok {
		return
	}
	s.selected[id] = checked
}

func (s *Selection) IsSelected(id string) bool {
	return s.selected[id]
}

// AllSelected reports whether every given id is checked. It is false for no ids.
func (s *Selection) AllSelected(ids []string) bool {
	if len(ids) == 0 {
		return false
	}
	for _, id := range ids {
		if !s.selected[id] {
			return false
		}
	}
	return true
}

// SelectedIDs returns the checked ids in sorted order.
func (s *Selection) SelectedIDs() []string {
	ids := []string{}
	for id, checked := range s.selected {
		if _, ok := s.known[id]; checked && ok {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}

// Known filters ids down to those seen in a loaded page, keeping order.
func (s *Selection) Known(ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := s.known[id]; ok {
			out = append(out, id)
		}
	}
	return out
}

func (s *Selection) Clear() {
	s.selected = map[string]bool{}
}
