package web

import "github.com/biblioteca/biblioteca-admin/internal/service"

// Confirm asks the user to confirm a delete before any call is made.
type Confirm struct {
	Action  string
	From    string
	Message string
}

// HomeData feeds the home page counters.
type HomeData struct {
	Stats  service.Stats
	Failed bool
}

// ListData feeds a list page.
type ListData[T any] struct {
	service.ListSnapshot[T]
	Msgs    service.Messages
	Confirm *Confirm
}

func (d ListData[T]) Loading() bool { return d.State == service.StateLoading }
func (d ListData[T]) Errored() bool { return d.State == service.StateErrored }

// Empty is true only for a successful load without items.
func (d ListData[T]) Empty() bool {
	return d.State == service.StateLoaded && len(d.Items) == 0
}

// DetailData feeds a detail page.
type DetailData[T any] struct {
	service.DetailSnapshot[T]
	Msgs    service.Messages
	Confirm *Confirm
}

func (d DetailData[T]) Loading() bool  { return d.State == service.DetailLoading }
func (d DetailData[T]) Errored() bool  { return d.State == service.DetailErrored }
func (d DetailData[T]) NotFound() bool { return d.State == service.DetailNotFound }

// FormData feeds a create or edit page. LoadErr replaces the form when the
// record to edit could not be fetched.
type FormData[F any] struct {
	Form    F
	Errors  map[string]string
	Notice  string
	LoadErr string
	Action  string
	Cancel  string
	Editing bool
}

// LoginData feeds the login page.
type LoginData struct {
	Next  string
	Error string
}

// ErrorData feeds the generic error page.
type ErrorData struct {
	Status  int
	Message string
}
