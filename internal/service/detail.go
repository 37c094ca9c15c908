package service

import (
	"context"
	"sync"
)

// DetailState is the renderable state of a detail page.
type DetailState int

const (
	DetailLoading DetailState = iota
	DetailLoaded
	DetailErrored
	DetailNotFound
)

// DetailSnapshot is what a detail page renders.
type DetailSnapshot[T any] struct {
	State  DetailState
	ID     int64
	Record *T
	Err    string
}

// DetailView holds one fetched record.
type DetailView[T any, I any] struct {
	res  Resource[T, I]
	msgs Messages

	mu     sync.Mutex
	seq    uint64
	state  DetailState
	id     int64
	record *T
	err    string
}

// NewDetailView creates a DetailView over res.
func NewDetailView[T any, I any](res Resource[T, I], msgs Messages) *DetailView[T, I] {
	return &DetailView[T, I]{res: res, msgs: msgs}
}

// Load fetches the record with the given id. A successful answer without a
// record moves the view to DetailNotFound.
func (v *DetailView[T, I]) Load(ctx context.Context, id int64) error {
	v.mu.Lock()
	v.seq++
	seq := v.seq
	v.state = DetailLoading
	v.id = id
	v.mu.Unlock()

	record, err := v.res.Get(ctx, id)

	v.mu.Lock()
	defer v.mu.Unlock()

	if seq != v.seq {
		return ErrSuperseded
	}

	v.record = record
	switch {
	case err != nil:
		v.state = DetailErrored
		v.err = v.msgs.DetailFailed
		return err
	case record == nil:
		v.state = DetailNotFound
		v.err = ""
	default:
		v.state = DetailLoaded
		v.err = ""
	}
	return nil
}

// Delete removes the loaded record once the user confirmed. It reports
// whether a delete call succeeded.
func (v *DetailView[T, I]) Delete(ctx context.Context, confirmed bool) (bool, error) {
	if !confirmed {
		return false, nil
	}

	v.mu.Lock()
	id := v.id
	v.mu.Unlock()

	if err := v.res.Delete(ctx, id); err != nil {
		return false, err
	}
	return true, nil
}

// Snapshot returns a copy of the view state.
func (v *DetailView[T, I]) Snapshot() DetailSnapshot[T] {
	v.mu.Lock()
	defer v.mu.Unlock()

	return DetailSnapshot[T]{
		State:  v.state,
		ID:     v.id,
		Record: v.record,
		Err:    v.err,
	}
}
