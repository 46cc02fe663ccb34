package employee

import "strings"

// Search filters employees by case-insensitive substring match against
// first name, last name, email and phone. Callers decide whether an empty
// term means "no filter"; Search itself always filters.
func Search(employees []Employee, term string) []Employee {
	needle := strings.ToLower(term)
	results := make([]Employee, 0, len(employees))
	for _, e := range employees {
		if strings.Contains(strings.ToLower(e.FirstName), needle) ||
			strings.Contains(strings.ToLower(e.LastName), needle) ||
			strings.Contains(strings.ToLower(e.Email), needle) ||
			strings.Contains(strings.ToLower(e.Phone), needle) {
			results = append(results, e)
		}
	}
	return results
}

// Selection tracks which employee ids are marked for a bulk operation.
// It is scoped to the page being viewed: changing page resets it.
type Selection map[string]struct{}

func NewSelection() Selection {
	return make(Selection)
}

func (s Selection) Has(id string) bool {
	_, ok := s[id]
	return ok
}

func (s Selection) Toggle(id string) {
	if s.Has(id) {
		delete(s, id)
	} else {
		s[id] = struct{}{}
	}
}

// SelectAll adds every given id (the ids visible on the current page) to the
// selection. Union, so it is idempotent.
func (s Selection) SelectAll(ids []string) {
	for _, id := range ids {
		s[id] = struct{}{}
	}
}

// DeselectAll removes exactly the given ids, leaving any others selected.
func (s Selection) DeselectAll(ids []string) {
	for _, id := range ids {
		delete(s, id)
	}
}

// Reset empties the selection. Called on page change: selection does not
// persist across pagination.
func (s *Selection) Reset() {
	*s = make(Selection)
}

// IDs returns the selected ids in no particular order.
func (s Selection) IDs() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	return ids
}

func (s Selection) Count() int {
	return len(s)
}
