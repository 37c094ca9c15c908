package repository

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/biblioteca/biblioteca-admin/internal/fakeapi"
)

func newTestServer(t *testing.T) (*fakeapi.Server, *Client) {
	t.Helper()
	fake := fakeapi.New()
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)
	return fake, NewClient(srv.URL + "/")
}

func TestClient_NonSuccessStatusIsAPIError(t *testing.T) {
	fake, client := newTestServer(t)
	fake.FailRoute("GET /libros", http.StatusInternalServerError)

	_, err := NewBookRepository(client).List(context.Background())
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.MethodGet, apiErr.Method)
	assert.Equal(t, "/libros", apiErr.Path)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
}

func TestClient_TransportErrorPropagates(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	_, err := NewUserRepository(NewClient(srv.URL)).List(context.Background())
	require.Error(t, err)
	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr))
}

func TestClient_NoRetry(t *testing.T) {
	fake, client := newTestServer(t)
	fake.FailRoute("GET /usuarios/activos", http.StatusServiceUnavailable)

	_, err := NewUserRepository(client).ListActive(context.Background())
	require.Error(t, err)
	assert.Len(t, fake.CallsTo("GET /usuarios/activos"), 1)
}

func TestClient_CanceledContext(t *testing.T) {
	_, client := newTestServer(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewBookRepository(client).List(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestClient_EmptyBodyMeansNoRecord(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte("null"))
	}))
	t.Cleanup(srv.Close)

	book, err := NewBookRepository(NewClient(srv.URL)).Get(context.Background(), 3)
	require.NoError(t, err)
	assert.Nil(t, book)
}
