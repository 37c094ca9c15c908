package service

import (
	"errors"
	"sync"
)

// ErrSuperseded is returned by Collection.Publish when a newer load started
// before this one finished; its result was discarded.
var ErrSuperseded = errors.New("load superseded by a newer request")

// State is the tri-state of a fetch-driven view.
type State int

const (
	StateLoading State = iota
	StateLoaded
	StateErrored
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	case StateErrored:
		return "errored"
	}
	return "unknown"
}

// Snapshot is a consistent copy of a Collection.
type Snapshot[T any] struct {
	State State
	Items []T
	Err   string
}

// Collection holds the items of one list view. Every load is tagged with a
// sequence number and only the most recent load may publish its result, so
// responses arriving out of order never overwrite newer data.
type Collection[T any] struct {
	mu    sync.Mutex
	idOf  func(T) int64
	state State
	items []T
	err   string
	seq   uint64
}

// NewCollection creates a Collection in the loading state. idOf extracts the
// identifier used by Remove.
func NewCollection[T any](idOf func(T) int64) *Collection[T] {
	return &Collection[T]{idOf: idOf}
}

// Begin enters the loading state and returns the sequence number of the new
// load.
func (c *Collection[T]) Begin() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.seq++
	c.state = StateLoading
	return c.seq
}

// Publish stores the outcome of the load numbered seq. It returns
// ErrSuperseded without touching the state when a newer load has begun.
func (c *Collection[T]) Publish(seq uint64, items []T, err error, failMsg string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if seq != c.seq {
		return ErrSuperseded
	}

	if err != nil {
		c.state = StateErrored
		c.err = failMsg
		c.items = nil
		return err
	}

	if items == nil {
		items = []T{}
	}
	c.state = StateLoaded
	c.err = ""
	c.items = items
	return nil
}

// Remove drops the item with the given id without re-fetching. It reports
// whether an item was removed.
func (c *Collection[T]) Remove(id int64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, item := range c.items {
		if c.idOf(item) == id {
			kept := make([]T, 0, len(c.items)-1)
			kept = append(kept, c.items[:i]...)
			c.items = append(kept, c.items[i+1:]...)
			return true
		}
	}
	return false
}

// Snapshot returns a copy of the current state.
func (c *Collection[T]) Snapshot() Snapshot[T] {
	c.mu.Lock()
	defer c.mu.Unlock()

	return Snapshot[T]{
		State: c.state,
		Items: append([]T(nil), c.items...),
		Err:   c.err,
	}
}
