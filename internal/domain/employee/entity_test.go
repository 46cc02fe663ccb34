package employee

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFullName(t *testing.T) {
	cases := []struct {
		name     string
		first    string
		last     string
		expected string
	}{
		{"both names", "Ada", "Lovelace", "Ada Lovelace"},
		{"first only", "Ada", "", "Ada"},
		{"last only", "", "Lovelace", "Lovelace"},
		{"whitespace trimmed", "  Ada ", " Lovelace  ", "Ada Lovelace"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e := Employee{FirstName: c.first, LastName: c.last}
			got, err := e.FullName()
			require.NoError(t, err)
			assert.Equal(t, c.expected, got)
		})
	}
}

func TestFullNameEmpty(t *testing.T) {
	e := Employee{FirstName: "  ", LastName: ""}
	_, err := e.FullName()
	assert.ErrorIs(t, err, ErrEmptyFullName)
}

func TestParseViewMode(t *testing.T) {
	table, err := ParseViewMode("table")
	require.NoError(t, err)
	assert.Equal(t, ViewModeTable, table)

	cards, err := ParseViewMode("card-list")
	require.NoError(t, err)
	assert.Equal(t, ViewModeCardList, cards)

	_, err = ParseViewMode("grid")
	assert.ErrorIs(t, err, ErrUnknownViewMode)
}

func TestViewModePageSize(t *testing.T) {
	assert.Equal(t, 10, ViewModeTable.PageSize())
	assert.Equal(t, 4, ViewModeCardList.PageSize())
}

func TestIsValidPosition(t *testing.T) {
	for _, p := range Positions() {
		assert.True(t, IsValidPosition(string(p)))
	}
	assert.False(t, IsValidPosition("intern"))
	assert.False(t, IsValidPosition(""))
}
