package service

import (
	"errors"

	"github.com/google/uuid"
)

// ErrEntryNotFound is returned when a sub-document id does not exist in
// its parent list. Removal never touches the list in that case.
var ErrEntryNotFound = errors.New("entry not found")

// InsertFront assigns a fresh id to the entry and prepends it, so lists
// stay ordered newest-first. setID writes the generated id into the
// entry before insertion.
func InsertFront[T any](list []T, entry T, setID func(*T, string)) []T {
	setID(&entry, uuid.New().String())
	out := make([]T, 0, len(list)+1)
	out = append(out, entry)
	return append(out, list...)
}

// RemoveByID removes the entry whose id matches, preserving the order
// of the rest. An unknown id fails with ErrEntryNotFound instead of
// deleting anything.
func RemoveByID[T any](list []T, id string, idOf func(T) string) ([]T, error) {
	idx := -1
	for i, e := range list {
		if idOf(e) == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, ErrEntryNotFound
	}

	out := make([]T, 0, len(list)-1)
	out = append(out, list[:idx]...)
	return append(out, list[idx+1:]...), nil
}
