package service

import (
	"errors"

	"github.com/biblioteca/biblioteca-admin/internal/validator"
)

var ErrNotFound = errors.New("record not found")

// ValidationError blocks a submission before any network call. Fields maps
// form field names to messages; Message is the notice shown to the user.
type ValidationError struct {
	Fields  map[string]string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func validationError(v *validator.Validator) error {
	if v.Valid() {
		return nil
	}
	return &ValidationError{Fields: v.Errors, Message: v.First()}
}
