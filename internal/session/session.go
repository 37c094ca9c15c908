package session

import (
	"context"
	"sync"
	"time"
)

// Flash kinds.
const (
	FlashSuccess = "success"
	FlashError   = "error"
)

// Flash is a one-shot notice shown on the next rendered page.
type Flash struct {
	Kind    string
	Message string
}

// Session is the server-side state of one browser. It holds at most one view
// (the state of the page last rendered), keyed by that page's path.
type Session struct {
	ID        string
	CSRFToken string

	mu            sync.Mutex
	authenticated bool
	flashes       []Flash
	viewPath      string
	view          any
	lastSeen      time.Time
}

// AddFlash queues a notice for the next rendered page.
func (s *Session) AddFlash(kind, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flashes = append(s.flashes, Flash{Kind: kind, Message: message})
}

// PopFlashes returns the queued notices and clears them.
func (s *Session) PopFlashes() []Flash {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := s.flashes
	s.flashes = nil
	return out
}

// View returns the view stored for path, or nil.
func (s *Session) View(path string) any {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.viewPath != path {
		return nil
	}
	return s.view
}

// SetView stores v as the state of the page at path, replacing any other.
func (s *Session) SetView(path string, v any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.viewPath = path
	s.view = v
}

// Navigate discards the stored view unless it belongs to path.
func (s *Session) Navigate(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.viewPath != path {
		s.viewPath = ""
		s.view = nil
	}
}

func (s *Session) Authenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.authenticated
}

func (s *Session) SetAuthenticated(ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.authenticated = ok
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *Session) idleSince(now time.Time) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Sub(s.lastSeen)
}

type contextKey string

const sessionKey contextKey = "session"

// NewContext returns a copy of ctx carrying s.
func NewContext(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, sessionKey, s)
}

// FromContext extracts the session placed by the session middleware.
func FromContext(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(sessionKey).(*Session)
	return s, ok && s != nil
}
