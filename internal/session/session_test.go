package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T, ttl time.Duration) (*Store, *time.Time) {
	t.Helper()
	s := NewStore(ttl, time.Hour)
	t.Cleanup(s.Close)

	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }
	return s, &now
}

func TestStore_NewAndGet(t *testing.T) {
	s, _ := newTestStore(t, time.Hour)

	sess, err := s.New()
	require.NoError(t, err)
	assert.NotEmpty(t, sess.ID)
	assert.Len(t, sess.CSRFToken, csrfTokenLength)

	got, ok := s.Get(sess.ID)
	require.True(t, ok)
	assert.Same(t, sess, got)

	_, ok = s.Get("unknown")
	assert.False(t, ok)
}

func TestStore_Expiry(t *testing.T) {
	s, now := newTestStore(t, time.Hour)

	sess, err := s.New()
	require.NoError(t, err)

	*now = now.Add(30 * time.Minute)
	_, ok := s.Get(sess.ID)
	require.True(t, ok, "activity inside the ttl keeps the session")

	*now = now.Add(59 * time.Minute)
	_, ok = s.Get(sess.ID)
	require.True(t, ok, "ttl counts from the last access")

	*now = now.Add(2 * time.Hour)
	_, ok = s.Get(sess.ID)
	assert.False(t, ok)
	assert.Equal(t, 0, s.Len())
}

func TestStore_Sweep(t *testing.T) {
	s, now := newTestStore(t, time.Minute)

	old, err := s.New()
	require.NoError(t, err)
	*now = now.Add(2 * time.Minute)
	fresh, err := s.New()
	require.NoError(t, err)

	assert.Equal(t, 1, s.Sweep())
	_, ok := s.Get(old.ID)
	assert.False(t, ok)
	_, ok = s.Get(fresh.ID)
	assert.True(t, ok)
}

func TestStore_Delete(t *testing.T) {
	s, _ := newTestStore(t, time.Hour)
	sess, err := s.New()
	require.NoError(t, err)

	s.Delete(sess.ID)
	_, ok := s.Get(sess.ID)
	assert.False(t, ok)
}

func TestSession_Flashes(t *testing.T) {
	sess := &Session{}
	sess.AddFlash(FlashSuccess, "Libro creado exitosamente")
	sess.AddFlash(FlashError, "Error al eliminar el libro")

	flashes := sess.PopFlashes()
	require.Len(t, flashes, 2)
	assert.Equal(t, Flash{Kind: FlashSuccess, Message: "Libro creado exitosamente"}, flashes[0])
	assert.Empty(t, sess.PopFlashes(), "flashes are consumed once")
}

func TestSession_ViewSlot(t *testing.T) {
	sess := &Session{}
	view := &struct{ n int }{n: 1}

	sess.SetView("/libros", view)
	assert.Same(t, view, sess.View("/libros"))
	assert.Nil(t, sess.View("/usuarios"))

	sess.Navigate("/libros")
	assert.Same(t, view, sess.View("/libros"), "same page keeps its view")

	sess.Navigate("/libros/3")
	assert.Nil(t, sess.View("/libros"), "navigating away discards the view")
}

func TestSession_Authenticated(t *testing.T) {
	sess := &Session{}
	assert.False(t, sess.Authenticated())
	sess.SetAuthenticated(true)
	assert.True(t, sess.Authenticated())
}

func TestContext(t *testing.T) {
	_, ok := FromContext(context.Background())
	assert.False(t, ok)

	sess := &Session{ID: "abc"}
	got, ok := FromContext(NewContext(context.Background(), sess))
	require.True(t, ok)
	assert.Equal(t, "abc", got.ID)
}
