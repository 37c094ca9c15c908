package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/biblioteca/biblioteca-admin/internal/crypto"
	"github.com/biblioteca/biblioteca-admin/internal/session"
)

const SessionCookie = "biblioteca_session"

// SessionOptions configures a SessionManager.
type SessionOptions struct {
	Store  *session.Store
	Secret string
	TTL    time.Duration
	Secure bool
	// Now defaults to time.Now.
	Now func() time.Time
}

// SessionManager ties browser cookies to sessions in a Store. The cookie is a
// signed token naming the session; it is re-issued once half its lifetime
// has passed so that an active browser keeps its session.
type SessionManager struct {
	opts SessionOptions
}

// NewSessionManager creates a new SessionManager.
func NewSessionManager(opts SessionOptions) *SessionManager {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &SessionManager{opts: opts}
}

// Handler attaches the browser's session to the request context, creating
// one when the cookie is missing, invalid or refers to an expired session.
// A GET to a path other than the one whose view the session holds discards
// that view.
func (m *SessionManager) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		now := m.opts.Now()

		sess, expires := m.lookup(r, now)
		switch {
		case sess == nil:
			var err error
			sess, err = m.start(w, now)
			if err != nil {
				slog.Error("creating session", "error", err)
				http.Error(w, "Error interno del servidor", http.StatusInternalServerError)
				return
			}
		case expires.Sub(now) < m.opts.TTL/2:
			if err := m.setCookie(w, sess.ID, now); err != nil {
				slog.Error("refreshing session cookie", "error", err)
			}
		}

		if r.Method == http.MethodGet {
			sess.Navigate(r.URL.Path)
		}

		next.ServeHTTP(w, r.WithContext(session.NewContext(r.Context(), sess)))
	})
}

// Renew replaces the request's session with a fresh one under a new id and
// cookie. The old session is forgotten.
func (m *SessionManager) Renew(w http.ResponseWriter, r *http.Request) (*session.Session, error) {
	if old, ok := session.FromContext(r.Context()); ok {
		m.opts.Store.Delete(old.ID)
	}
	return m.start(w, m.opts.Now())
}

// End forgets the request's session and clears the cookie.
func (m *SessionManager) End(w http.ResponseWriter, r *http.Request) {
	if sess, ok := session.FromContext(r.Context()); ok {
		m.opts.Store.Delete(sess.ID)
	}
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.opts.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (m *SessionManager) start(w http.ResponseWriter, now time.Time) (*session.Session, error) {
	sess, err := m.opts.Store.New()
	if err != nil {
		return nil, err
	}
	if err := m.setCookie(w, sess.ID, now); err != nil {
		m.opts.Store.Delete(sess.ID)
		return nil, err
	}
	return sess, nil
}

func (m *SessionManager) setCookie(w http.ResponseWriter, id string, now time.Time) error {
	token, err := crypto.IssueSessionToken(id, m.opts.Secret, now, m.opts.TTL)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(m.opts.TTL.Seconds()),
		HttpOnly: true,
		Secure:   m.opts.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// lookup returns the live session named by the cookie and the cookie's
// expiry.
func (m *SessionManager) lookup(r *http.Request, now time.Time) (*session.Session, time.Time) {
	cookie, err := r.Cookie(SessionCookie)
	if err != nil {
		return nil, time.Time{}
	}

	claims, err := crypto.ParseSessionToken(cookie.Value, m.opts.Secret, now)
	if err != nil {
		return nil, time.Time{}
	}

	sess, ok := m.opts.Store.Get(claims.SessionID)
	if !ok {
		return nil, time.Time{}
	}
	return sess, claims.ExpiresAt.Time
}
