package repository

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/biblioteca/biblioteca-admin/internal/model"
)

// UserRepository wraps the /usuarios endpoints.
type UserRepository struct {
	client *Client
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(client *Client) *UserRepository {
	return &UserRepository{client: client}
}

// List returns every user.
func (r *UserRepository) List(ctx context.Context) ([]model.User, error) {
	return r.list(ctx, "/usuarios")
}

// ListActive returns only active users.
func (r *UserRepository) ListActive(ctx context.Context) ([]model.User, error) {
	return r.list(ctx, "/usuarios/activos")
}

// Get fetches one user. A 2xx answer without a body yields (nil, nil).
func (r *UserRepository) Get(ctx context.Context, id int64) (*model.User, error) {
	var user model.User
	found, err := r.client.do(ctx, http.MethodGet, userPath(id), nil, &user)
	if err != nil || !found {
		return nil, err
	}
	return &user, nil
}

// Create sends a new user and returns the stored record.
func (r *UserRepository) Create(ctx context.Context, in model.UserInput) (*model.User, error) {
	var user model.User
	found, err := r.client.do(ctx, http.MethodPost, "/usuarios", in, &user)
	if err != nil || !found {
		return nil, err
	}
	return &user, nil
}

// Update sends the non-nil fields of in for the user with the given id.
func (r *UserRepository) Update(ctx context.Context, id int64, in model.UserInput) (*model.User, error) {
	var user model.User
	found, err := r.client.do(ctx, http.MethodPut, userPath(id), in, &user)
	if err != nil || !found {
		return nil, err
	}
	return &user, nil
}

// Delete removes the user with the given id.
func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.client.do(ctx, http.MethodDelete, userPath(id), nil, nil)
	return err
}

// SearchByName returns users whose name contains term.
func (r *UserRepository) SearchByName(ctx context.Context, term string) ([]model.User, error) {
	return r.list(ctx, "/usuarios/buscar/nombre/"+url.PathEscape(term))
}

// SearchByEmail returns users whose email contains term.
func (r *UserRepository) SearchByEmail(ctx context.Context, term string) ([]model.User, error) {
	return r.list(ctx, "/usuarios/buscar/email/"+url.PathEscape(term))
}

func (r *UserRepository) list(ctx context.Context, path string) ([]model.User, error) {
	users := []model.User{}
	if _, err := r.client.do(ctx, http.MethodGet, path, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func userPath(id int64) string {
	return "/usuarios/" + strconv.FormatInt(id, 10)
}
