package repository

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/biblioteca/biblioteca-admin/internal/model"
)

func TestUserRepository_CRUD(t *testing.T) {
	fake, client := newTestServer(t)
	repo := NewUserRepository(client)
	ctx := context.Background()

	created, err := repo.Create(ctx, model.UserInput{
		Name:   strPtr("Ana"),
		Email:  strPtr("ana@example.com"),
		Active: boolPtr(true),
	})
	require.NoError(t, err)
	assert.Equal(t, "Ana", created.Name)

	calls := fake.CallsTo("POST /usuarios")
	require.Len(t, calls, 1)
	assert.JSONEq(t, `{"nombre":"Ana","email":"ana@example.com","activo":true}`, calls[0].Body)

	got, err := repo.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", got.Email)
	assert.NotNil(t, got.CreatedAt)

	updated, err := repo.Update(ctx, created.ID, model.UserInput{Phone: strPtr("555-1234")})
	require.NoError(t, err)
	assert.Equal(t, "555-1234", updated.Phone)
	assert.Equal(t, "Ana", updated.Name)

	require.NoError(t, repo.Delete(ctx, created.ID))
	_, err = repo.Get(ctx, created.ID)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
}

func TestUserRepository_ListActiveAndSearch(t *testing.T) {
	fake, client := newTestServer(t)
	fake.AddUser(model.User{Name: "Ana Pérez", Email: "ana@example.com", Active: true})
	fake.AddUser(model.User{Name: "Luis Gómez", Email: "luis@correo.es", Active: false})
	repo := NewUserRepository(client)
	ctx := context.Background()

	active, err := repo.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "Ana Pérez", active[0].Name)

	byName, err := repo.SearchByName(ctx, "gómez")
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, "luis@correo.es", byName[0].Email)

	byEmail, err := repo.SearchByEmail(ctx, "example")
	require.NoError(t, err)
	require.Len(t, byEmail, 1)
	assert.Equal(t, "Ana Pérez", byEmail[0].Name)
}
