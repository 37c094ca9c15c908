package repository

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/biblioteca/biblioteca-admin/internal/model"
)

// BookRepository wraps the /libros endpoints.
type BookRepository struct {
	client *Client
}

// NewBookRepository creates a new BookRepository.
func NewBookRepository(client *Client) *BookRepository {
	return &BookRepository{client: client}
}

// List returns every book.
func (r *BookRepository) List(ctx context.Context) ([]model.Book, error) {
	return r.list(ctx, "/libros")
}

// ListAvailable returns the books currently available for lending.
func (r *BookRepository) ListAvailable(ctx context.Context) ([]model.Book, error) {
	return r.list(ctx, "/libros/disponibles")
}

// Get fetches one book. A 2xx answer without a body yields (nil, nil).
func (r *BookRepository) Get(ctx context.Context, id int64) (*model.Book, error) {
	var book model.Book
	found, err := r.client.do(ctx, http.MethodGet, bookPath(id), nil, &book)
	if err != nil || !found {
		return nil, err
	}
	return &book, nil
}

// Create sends a new book and returns the stored record.
func (r *BookRepository) Create(ctx context.Context, in model.BookInput) (*model.Book, error) {
	var book model.Book
	found, err := r.client.do(ctx, http.MethodPost, "/libros", in, &book)
	if err != nil || !found {
		return nil, err
	}
	return &book, nil
}

// Update sends the non-nil fields of in for the book with the given id.
func (r *BookRepository) Update(ctx context.Context, id int64, in model.BookInput) (*model.Book, error) {
	var book model.Book
	found, err := r.client.do(ctx, http.MethodPut, bookPath(id), in, &book)
	if err != nil || !found {
		return nil, err
	}
	return &book, nil
}

// Delete removes the book with the given id.
func (r *BookRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.client.do(ctx, http.MethodDelete, bookPath(id), nil, nil)
	return err
}

// SearchByTitle returns books whose title contains term.
func (r *BookRepository) SearchByTitle(ctx context.Context, term string) ([]model.Book, error) {
	return r.list(ctx, "/libros/buscar/titulo/"+url.PathEscape(term))
}

// SearchByAuthor returns books whose author contains term.
func (r *BookRepository) SearchByAuthor(ctx context.Context, term string) ([]model.Book, error) {
	return r.list(ctx, "/libros/buscar/autor/"+url.PathEscape(term))
}

func (r *BookRepository) list(ctx context.Context, path string) ([]model.Book, error) {
	books := []model.Book{}
	if _, err := r.client.do(ctx, http.MethodGet, path, nil, &books); err != nil {
		return nil, err
	}
	return books, nil
}

func bookPath(id int64) string {
	return "/libros/" + strconv.FormatInt(id, 10)
}
