package service

import (
	"testing"
	"time"

	"github.com/saurabh1105/Socail-Connect/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setExpID(e *model.Experience, id string) { e.ID = id }
func expID(e model.Experience) string         { return e.ID }

// TestInsertFront_Prepends verifies lists stay newest-first.
func TestInsertFront_Prepends(t *testing.T) {
	list := []model.Experience{{ID: "old", Title: "Junior Dev"}}

	list = InsertFront(list, model.Experience{Title: "Senior Dev"}, setExpID)

	require.Len(t, list, 2)
	assert.Equal(t, "Senior Dev", list[0].Title)
	assert.Equal(t, "old", list[1].ID)
}

// TestInsertFront_AssignsUniqueIDs verifies no two inserted entries
// ever share an id.
func TestInsertFront_AssignsUniqueIDs(t *testing.T) {
	var list []model.Experience
	for i := 0; i < 100; i++ {
		list = InsertFront(list, model.Experience{Title: "Dev"}, setExpID)
	}

	seen := make(map[string]bool, len(list))
	for _, e := range list {
		require.NotEmpty(t, e.ID)
		require.False(t, seen[e.ID], "duplicate id %s", e.ID)
		seen[e.ID] = true
	}
}

// TestRemoveByID_RoundTrip verifies removing a freshly inserted entry
// restores the original list.
func TestRemoveByID_RoundTrip(t *testing.T) {
	orig := []model.Experience{
		{ID: "a", Title: "Dev", From: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)},
		{ID: "b", Title: "Ops"},
	}

	list := InsertFront(orig, model.Experience{Title: "Lead"}, setExpID)
	list, err := RemoveByID(list, list[0].ID, expID)

	require.NoError(t, err)
	assert.Equal(t, orig, list)
}

// TestRemoveByID_PreservesOrder verifies removal from the middle keeps
// the rest in order.
func TestRemoveByID_PreservesOrder(t *testing.T) {
	list := []model.Experience{{ID: "a"}, {ID: "b"}, {ID: "c"}}

	list, err := RemoveByID(list, "b", expID)

	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "a", list[0].ID)
	assert.Equal(t, "c", list[1].ID)
}

// TestRemoveByID_UnknownID verifies an unknown id fails loudly and the
// list is untouched — in particular the last element must survive.
func TestRemoveByID_UnknownID(t *testing.T) {
	list := []model.Experience{{ID: "a"}, {ID: "b"}}

	out, err := RemoveByID(list, "nope", expID)

	assert.ErrorIs(t, err, ErrEntryNotFound)
	assert.Nil(t, out)
	require.Len(t, list, 2)
	assert.Equal(t, "b", list[1].ID)
}

// TestRemoveByID_EmptyList verifies removal from an empty list is a
// clean not-found.
func TestRemoveByID_EmptyList(t *testing.T) {
	_, err := RemoveByID(nil, "x", expID)
	assert.ErrorIs(t, err, ErrEntryNotFound)
}
