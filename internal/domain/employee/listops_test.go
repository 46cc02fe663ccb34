package employee

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func searchFixture() []Employee {
	return []Employee{
		{ID: "1", FirstName: "John", LastName: "Smith", Email: "john.smith@corp.com", Phone: "+(1) 555 111 22 33"},
		{ID: "2", FirstName: "Jane", LastName: "Johnson", Email: "jane@corp.com", Phone: "+(1) 555 444 55 66"},
		{ID: "3", FirstName: "Ahmet", LastName: "Yilmaz", Email: "ahmet@corp.com", Phone: "+(90) 532 123 45 67"},
	}
}

func ids(employees []Employee) []string {
	out := make([]string, 0, len(employees))
	for _, e := range employees {
		out = append(out, e.ID)
	}
	return out
}

func TestSearchCaseInsensitive(t *testing.T) {
	employees := searchFixture()
	upper := Search(employees, "JOHN")
	lower := Search(employees, "john")
	assert.Equal(t, ids(lower), ids(upper))
	assert.Equal(t, []string{"1", "2"}, ids(lower), "matches first name and last name substrings")
}

func TestSearchMatchesEmailAndPhone(t *testing.T) {
	employees := searchFixture()
	assert.Equal(t, []string{"3"}, ids(Search(employees, "ahmet@")))
	assert.Equal(t, []string{"3"}, ids(Search(employees, "532 123")))
}

func TestSearchEmptyTermReturnsAll(t *testing.T) {
	employees := searchFixture()
	assert.Len(t, Search(employees, ""), 3)
}

func TestSearchNoMatch(t *testing.T) {
	assert.Empty(t, Search(searchFixture(), "nobody"))
}

func TestSearchPreservesOrder(t *testing.T) {
	employees := searchFixture()
	assert.Equal(t, []string{"1", "2", "3"}, ids(Search(employees, "corp.com")))
}

func TestSelectionToggle(t *testing.T) {
	sel := NewSelection()
	assert.False(t, sel.Has("a"))

	sel.Toggle("a")
	assert.True(t, sel.Has("a"))
	assert.Equal(t, 1, sel.Count())

	sel.Toggle("a")
	assert.False(t, sel.Has("a"))
	assert.Zero(t, sel.Count())
}

func TestSelectAllUnionsWithExisting(t *testing.T) {
	sel := NewSelection()
	sel.Toggle("a")
	sel.SelectAll([]string{"b", "c"})

	assert.True(t, sel.Has("a"), "selections made before select-all survive")
	assert.True(t, sel.Has("b"))
	assert.True(t, sel.Has("c"))
	assert.Equal(t, 3, sel.Count())
}

func TestDeselectAllRemovesOnlyGivenIDs(t *testing.T) {
	sel := NewSelection()
	sel.SelectAll([]string{"a", "b", "c"})
	sel.DeselectAll([]string{"b", "c", "zzz"})

	assert.True(t, sel.Has("a"))
	assert.False(t, sel.Has("b"))
	assert.Equal(t, 1, sel.Count())
}

func TestSelectionReset(t *testing.T) {
	sel := NewSelection()
	sel.SelectAll([]string{"a", "b"})
	sel.Reset()
	assert.Zero(t, sel.Count())

	sel.Toggle("c")
	assert.True(t, sel.Has("c"), "selection is reusable after reset")
}

func TestSelectionIDs(t *testing.T) {
	sel := NewSelection()
	sel.SelectAll([]string{"b", "a"})
	assert.ElementsMatch(t, []string{"a", "b"}, sel.IDs())
}
