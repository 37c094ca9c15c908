package service

import "context"

// Form is the editable state of a create or edit page.
type Form[I any] interface {
	Validate() error
	Input() I
}

// Editor submits forms for one resource. Validation runs first and a failing
// form never reaches the network.
type Editor[T any, I any] struct {
	res Resource[T, I]
}

// NewEditor creates an Editor over res.
func NewEditor[T any, I any](res Resource[T, I]) *Editor[T, I] {
	return &Editor[T, I]{res: res}
}

// Create validates form and creates the record.
func (e *Editor[T, I]) Create(ctx context.Context, form Form[I]) (*T, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}
	return e.res.Create(ctx, form.Input())
}

// Update validates form and partially updates the record with the given id.
func (e *Editor[T, I]) Update(ctx context.Context, id int64, form Form[I]) (*T, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}
	return e.res.Update(ctx, id, form.Input())
}

// Fetch loads the record that seeds an edit form. A successful answer
// without a record yields ErrNotFound.
func (e *Editor[T, I]) Fetch(ctx context.Context, id int64) (*T, error) {
	record, err := e.res.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, ErrNotFound
	}
	return record, nil
}
