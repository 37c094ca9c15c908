package service

import (
	"context"
	"strings"
	"sync"
)

// ListSnapshot is what a list page renders.
type ListSnapshot[T any] struct {
	Snapshot[T]
	Filtered bool
	Term     string
}

// ListView is the state of a list page: a filter toggle (all vs.
// available/active), an optional search term and the loaded items.
type ListView[T any, I any] struct {
	res         Resource[T, I]
	items       *Collection[T]
	searchField string
	msgs        Messages

	mu       sync.Mutex
	filtered bool
	term     string
}

// NewListView creates a ListView over res. Searches use searchField.
func NewListView[T any, I any](res Resource[T, I], idOf func(T) int64, searchField string, msgs Messages) *ListView[T, I] {
	return &ListView[T, I]{
		res:         res,
		items:       NewCollection(idOf),
		searchField: searchField,
		msgs:        msgs,
	}
}

// Mount loads the state a page opens with: a search when term has content,
// otherwise the list selected by filtered.
func (v *ListView[T, I]) Mount(ctx context.Context, filtered bool, term string) error {
	return v.open(ctx, filtered, term)
}

// SetFilter switches the filter and reloads when it changed, clearing any
// search term. The new result replaces the previous list entirely.
func (v *ListView[T, I]) SetFilter(ctx context.Context, filtered bool) error {
	v.mu.Lock()
	changed := v.filtered != filtered
	v.mu.Unlock()

	if !changed {
		return nil
	}
	return v.open(ctx, filtered, "")
}

// Search runs a search with the current filter. A blank term reloads the
// filtered or unfiltered list instead of searching for nothing.
func (v *ListView[T, I]) Search(ctx context.Context, term string) error {
	v.mu.Lock()
	filtered := v.filtered
	v.mu.Unlock()

	return v.open(ctx, filtered, term)
}

// Filtered reports which list the view shows.
func (v *ListView[T, I]) Filtered() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.filtered
}

// open sets filter and term together and issues exactly one call.
func (v *ListView[T, I]) open(ctx context.Context, filtered bool, term string) error {
	v.mu.Lock()
	v.filtered = filtered
	v.term = term
	seq := v.items.Begin()
	v.mu.Unlock()

	var (
		items   []T
		err     error
		failMsg string
	)
	if trimmed := strings.TrimSpace(term); trimmed == "" {
		items, err = v.res.List(ctx, filtered)
		failMsg = v.msgs.LoadFailed
	} else {
		items, err = v.res.Search(ctx, v.searchField, trimmed)
		failMsg = v.msgs.SearchFailed
	}

	return v.items.Publish(seq, items, err, failMsg)
}

// Delete removes the item with the given id once the user confirmed. On
// success the item leaves the in-memory list without a re-fetch; on failure
// the list is left untouched. An unconfirmed delete issues no call.
func (v *ListView[T, I]) Delete(ctx context.Context, id int64, confirmed bool) error {
	if !confirmed {
		return nil
	}

	if err := v.res.Delete(ctx, id); err != nil {
		return err
	}

	v.items.Remove(id)
	return nil
}

// Snapshot returns a copy of the view state.
func (v *ListView[T, I]) Snapshot() ListSnapshot[T] {
	v.mu.Lock()
	defer v.mu.Unlock()

	return ListSnapshot[T]{
		Snapshot: v.items.Snapshot(),
		Filtered: v.filtered,
		Term:     v.term,
	}
}
