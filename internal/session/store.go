package session

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/biblioteca/biblioteca-admin/internal/crypto"
)

const csrfTokenLength = 32

// Store keeps sessions in memory. Sessions idle for longer than the TTL are
// treated as missing and swept by a background goroutine.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session
	ttl      time.Duration
	now      func() time.Time
	done     chan struct{}
	once     sync.Once
}

// NewStore creates a Store and starts its cleanup loop, which runs every
// sweepEvery until Close is called.
func NewStore(ttl, sweepEvery time.Duration) *Store {
	s := &Store{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		now:      time.Now,
		done:     make(chan struct{}),
	}
	go s.cleanup(sweepEvery)
	return s
}

// New creates and registers a fresh session.
func (s *Store) New() (*Session, error) {
	token, err := crypto.RandomToken(csrfTokenLength)
	if err != nil {
		return nil, fmt.Errorf("generating csrf token: %w", err)
	}

	sess := &Session{
		ID:        uuid.NewString(),
		CSRFToken: token,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess.touch(s.now())
	s.sessions[sess.ID] = sess
	return sess, nil
}

// Get returns the live session with the given id and refreshes its idle
// timer.
func (s *Store) Get(id string) (*Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, false
	}

	now := s.now()
	if sess.idleSince(now) > s.ttl {
		delete(s.sessions, id)
		return nil, false
	}
	sess.touch(now)
	return sess, true
}

// Delete forgets the session with the given id.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

// Len returns the number of stored sessions, expired or not.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Sweep removes every expired session and returns how many were removed.
func (s *Store) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0
	for id, sess := range s.sessions {
		if sess.idleSince(now) > s.ttl {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

// Close stops the cleanup loop.
func (s *Store) Close() {
	s.once.Do(func() { close(s.done) })
}

func (s *Store) cleanup(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			if removed := s.Sweep(); removed > 0 {
				slog.Info("expired sessions swept", "removed", removed, "live", s.Len())
			}
		}
	}
}
