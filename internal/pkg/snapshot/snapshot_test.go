package snapshot

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/nimbushr/employee-manager-go/internal/domain/employee"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEmployee() employee.Employee {
	return employee.Employee{
		ID:               "emp-1",
		FirstName:        "Ada",
		LastName:         "Lovelace",
		DateOfBirth:      time.Date(1990, time.December, 10, 0, 0, 0, 0, time.Local),
		DateOfEmployment: time.Date(2020, time.January, 6, 0, 0, 0, 0, time.Local),
		Phone:            "+(90) 532 123 45 67",
		Email:            "ada@example.com",
		Department:       "Analytics",
		Position:         employee.PositionSenior,
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "employees.json")
	store, err := NewStore(path)
	require.NoError(t, err)

	want := []employee.Employee{testEmployee()}
	require.NoError(t, store.Save(want))

	got, found, err := store.Load()
	require.NoError(t, err)
	assert.True(t, found)
	require.Len(t, got, 1)
	assert.Equal(t, want[0].ID, got[0].ID)
	assert.Equal(t, want[0].Email, got[0].Email)
	assert.True(t, want[0].DateOfBirth.Equal(got[0].DateOfBirth))
	assert.True(t, want[0].DateOfEmployment.Equal(got[0].DateOfEmployment))
	assert.Equal(t, want[0].Position, got[0].Position)
}

func TestLoadMissingFileIsFreshStart(t *testing.T) {
	store, err := NewStore(filepath.Join(t.TempDir(), "nope", "employees.json"))
	require.NoError(t, err)

	got, found, err := store.Load()
	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, got)
}

func TestLoadDistinguishesEmptySnapshotFromMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "employees.json")
	store, err := NewStore(path)
	require.NoError(t, err)

	// A saved empty collection is a real snapshot: found, zero records. The
	// boot path relies on this so an emptied-out collection stays empty
	// instead of being re-seeded.
	require.NoError(t, store.Save([]employee.Employee{}))

	got, found, err := store.Load()
	require.NoError(t, err)
	assert.True(t, found)
	assert.Empty(t, got)
}

func TestLoadRejectsCorruptSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "employees.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	store, err := NewStore(path)
	require.NoError(t, err)

	_, _, err = store.Load()
	assert.Error(t, err)
}

func TestLoadRejectsBadDate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "employees.json")
	payload := `{"employees":[{"id":"x","firstName":"A","lastName":"B","dateOfBirth":"not-a-date","dateOfEmployment":"2020-01-06","phone":"p","email":"e","department":"d","position":"junior"}]}`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0644))

	store, err := NewStore(path)
	require.NoError(t, err)

	_, _, err = store.Load()
	assert.Error(t, err)
}

func TestSaveReplacesPreviousSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "employees.json")
	store, err := NewStore(path)
	require.NoError(t, err)

	require.NoError(t, store.Save([]employee.Employee{testEmployee()}))
	require.NoError(t, store.Save(nil))

	got, found, err := store.Load()
	require.NoError(t, err)
	assert.True(t, found)
	assert.Empty(t, got)
}
