package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/biblioteca/biblioteca-admin/internal/model"
)

type stubBookAPI struct {
	BookAPI
	calls []string
}

func (s *stubBookAPI) List(ctx context.Context) ([]model.Book, error) {
	s.calls = append(s.calls, "list")
	return nil, nil
}

func (s *stubBookAPI) ListAvailable(ctx context.Context) ([]model.Book, error) {
	s.calls = append(s.calls, "available")
	return nil, nil
}

func (s *stubBookAPI) SearchByTitle(ctx context.Context, term string) ([]model.Book, error) {
	s.calls = append(s.calls, "title:"+term)
	return nil, nil
}

func (s *stubBookAPI) SearchByAuthor(ctx context.Context, term string) ([]model.Book, error) {
	s.calls = append(s.calls, "author:"+term)
	return nil, nil
}

func TestBookResource_Dispatch(t *testing.T) {
	api := &stubBookAPI{}
	r := NewBookResource(api)
	ctx := context.Background()

	_, _ = r.List(ctx, false)
	_, _ = r.List(ctx, true)
	_, _ = r.Search(ctx, SearchTitle, "x")
	_, _ = r.Search(ctx, SearchAuthor, "y")

	assert.Equal(t, []string{"list", "available", "title:x", "author:y"}, api.calls)

	_, err := r.Search(ctx, SearchEmail, "z")
	require.ErrorIs(t, err, ErrUnknownSearchField)
}

type stubUserAPI struct {
	UserAPI
	calls []string
}

func (s *stubUserAPI) List(ctx context.Context) ([]model.User, error) {
	s.calls = append(s.calls, "list")
	return nil, nil
}

func (s *stubUserAPI) ListActive(ctx context.Context) ([]model.User, error) {
	s.calls = append(s.calls, "active")
	return nil, nil
}

func (s *stubUserAPI) SearchByName(ctx context.Context, term string) ([]model.User, error) {
	s.calls = append(s.calls, "name:"+term)
	return nil, nil
}

func (s *stubUserAPI) SearchByEmail(ctx context.Context, term string) ([]model.User, error) {
	s.calls = append(s.calls, "email:"+term)
	return nil, nil
}

func TestUserResource_Dispatch(t *testing.T) {
	api := &stubUserAPI{}
	r := NewUserResource(api)
	ctx := context.Background()

	_, _ = r.List(ctx, true)
	_, _ = r.List(ctx, false)
	_, _ = r.Search(ctx, SearchName, "ana")
	_, _ = r.Search(ctx, SearchEmail, "@x")

	assert.Equal(t, []string{"active", "list", "name:ana", "email:@x"}, api.calls)

	_, err := r.Search(ctx, SearchTitle, "z")
	require.ErrorIs(t, err, ErrUnknownSearchField)
}
