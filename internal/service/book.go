package service

import (
	"strconv"
	"strings"

	"github.com/biblioteca/biblioteca-admin/internal/model"
	"github.com/biblioteca/biblioteca-admin/internal/validator"
)

const (
	MsgTitleAuthorRequired = "Título y autor son obligatorios"
	MsgInvalidYear         = "El año de publicación debe ser un número entero"
)

// BookForm mirrors the editable book fields. The year stays text until
// submission.
type BookForm struct {
	Title     string
	Author    string
	ISBN      string
	Year      string
	Available bool
}

// NewBookForm returns the blank create form; new books start available.
func NewBookForm() BookForm {
	return BookForm{Available: true}
}

// BookFormFrom seeds an edit form from a fetched book.
func BookFormFrom(b model.Book) BookForm {
	f := BookForm{
		Title:     b.Title,
		Author:    b.Author,
		ISBN:      b.ISBN,
		Available: b.Available,
	}
	if b.PublicationYear != nil {
		f.Year = strconv.Itoa(*b.PublicationYear)
	}
	return f
}

// Validate checks the form without touching the network.
func (f BookForm) Validate() error {
	v := validator.New()
	v.Check(validator.NotBlank(f.Title), "titulo", MsgTitleAuthorRequired)
	v.Check(validator.NotBlank(f.Author), "autor", MsgTitleAuthorRequired)
	if year := strings.TrimSpace(f.Year); year != "" {
		_, err := strconv.Atoi(year)
		v.Check(err == nil, "añoPublicacion", MsgInvalidYear)
	}
	return validationError(v)
}

// Input builds the payload: blank optional fields are left out and the year
// becomes an integer.
func (f BookForm) Input() model.BookInput {
	title := strings.TrimSpace(f.Title)
	author := strings.TrimSpace(f.Author)
	available := f.Available

	in := model.BookInput{
		Title:     &title,
		Author:    &author,
		Available: &available,
	}
	if isbn := strings.TrimSpace(f.ISBN); isbn != "" {
		in.ISBN = &isbn
	}
	if year, err := strconv.Atoi(strings.TrimSpace(f.Year)); err == nil {
		in.PublicationYear = &year
	}
	return in
}

// BookService bundles the book views and the form editor.
type BookService struct {
	*Editor[model.Book, model.BookInput]
	res Resource[model.Book, model.BookInput]
}

// NewBookService creates a new BookService.
func NewBookService(res Resource[model.Book, model.BookInput]) *BookService {
	return &BookService{Editor: NewEditor(res), res: res}
}

// NewListView returns a fresh book list view searching by title.
func (s *BookService) NewListView() *ListView[model.Book, model.BookInput] {
	return NewListView(s.res, model.BookID, SearchTitle, BookMessages)
}

// NewDetailView returns a fresh book detail view.
func (s *BookService) NewDetailView() *DetailView[model.Book, model.BookInput] {
	return NewDetailView(s.res, BookMessages)
}
