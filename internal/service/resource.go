package service

import (
	"context"
	"errors"

	"github.com/biblioteca/biblioteca-admin/internal/model"
)

var ErrUnknownSearchField = errors.New("unknown search field")

// Search fields understood by the resource adapters.
const (
	SearchTitle  = "titulo"
	SearchAuthor = "autor"
	SearchName   = "nombre"
	SearchEmail  = "email"
)

// Resource is the remote collection contract shared by every view: list
// (all or filtered), fetch, create, partial update, delete and search.
type Resource[T any, I any] interface {
	List(ctx context.Context, filtered bool) ([]T, error)
	Get(ctx context.Context, id int64) (*T, error)
	Create(ctx context.Context, in I) (*T, error)
	Update(ctx context.Context, id int64, in I) (*T, error)
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, field, term string) ([]T, error)
}

// BookAPI is the set of /libros calls the book resource needs.
type BookAPI interface {
	List(ctx context.Context) ([]model.Book, error)
	ListAvailable(ctx context.Context) ([]model.Book, error)
	Get(ctx context.Context, id int64) (*model.Book, error)
	Create(ctx context.Context, in model.BookInput) (*model.Book, error)
	Update(ctx context.Context, id int64, in model.BookInput) (*model.Book, error)
	Delete(ctx context.Context, id int64) error
	SearchByTitle(ctx context.Context, term string) ([]model.Book, error)
	SearchByAuthor(ctx context.Context, term string) ([]model.Book, error)
}

// UserAPI is the set of /usuarios calls the user resource needs.
type UserAPI interface {
	List(ctx context.Context) ([]model.User, error)
	ListActive(ctx context.Context) ([]model.User, error)
	Get(ctx context.Context, id int64) (*model.User, error)
	Create(ctx context.Context, in model.UserInput) (*model.User, error)
	Update(ctx context.Context, id int64, in model.UserInput) (*model.User, error)
	Delete(ctx context.Context, id int64) error
	SearchByName(ctx context.Context, term string) ([]model.User, error)
	SearchByEmail(ctx context.Context, term string) ([]model.User, error)
}

// BookResource adapts a BookAPI. The filter selects available books.
type BookResource struct {
	BookAPI
}

// NewBookResource creates a new BookResource.
func NewBookResource(api BookAPI) *BookResource {
	return &BookResource{BookAPI: api}
}

func (r *BookResource) List(ctx context.Context, filtered bool) ([]model.Book, error) {
	if filtered {
		return r.BookAPI.ListAvailable(ctx)
	}
	return r.BookAPI.List(ctx)
}

func (r *BookResource) Search(ctx context.Context, field, term string) ([]model.Book, error) {
	switch field {
	case SearchTitle:
		return r.BookAPI.SearchByTitle(ctx, term)
	case SearchAuthor:
		return r.BookAPI.SearchByAuthor(ctx, term)
	}
	return nil, ErrUnknownSearchField
}

// UserResource adapts a UserAPI. The filter selects active users.
type UserResource struct {
	UserAPI
}

// NewUserResource creates a new UserResource.
func NewUserResource(api UserAPI) *UserResource {
	return &UserResource{UserAPI: api}
}

func (r *UserResource) List(ctx context.Context, filtered bool) ([]model.User, error) {
	if filtered {
		return r.UserAPI.ListActive(ctx)
	}
	return r.UserAPI.List(ctx)
}

func (r *UserResource) Search(ctx context.Context, field, term string) ([]model.User, error) {
	switch field {
	case SearchName:
		return r.UserAPI.SearchByName(ctx, term)
	case SearchEmail:
		return r.UserAPI.SearchByEmail(ctx, term)
	}
	return nil, ErrUnknownSearchField
}
