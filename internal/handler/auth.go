package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/biblioteca/biblioteca-admin/internal/crypto"
	"github.com/biblioteca/biblioteca-admin/internal/middleware"
	"github.com/biblioteca/biblioteca-admin/internal/web"
)

const msgBadPassword = "Contraseña incorrecta"

// AuthHandler handles the optional admin login.
type AuthHandler struct {
	hasher       *crypto.PasswordHasher
	passwordHash string
	sessions     *middleware.SessionManager
	pages        *Pages
}

// NewAuthHandler creates a new AuthHandler. An empty passwordHash disables
// login entirely.
func NewAuthHandler(hasher *crypto.PasswordHasher, passwordHash string, sessions *middleware.SessionManager, pages *Pages) *AuthHandler {
	return &AuthHandler{hasher: hasher, passwordHash: passwordHash, sessions: sessions, pages: pages}
}

func (h *AuthHandler) enabled() bool {
	return h.passwordHash != ""
}

// HandleLoginPage handles GET /login requests.
func (h *AuthHandler) HandleLoginPage(w http.ResponseWriter, r *http.Request) {
	next := safeNext(r.URL.Query().Get("next"))
	if !h.enabled() || sessionOf(r).Authenticated() {
		http.Redirect(w, r, next, http.StatusSeeOther)
		return
	}

	h.pages.render(w, r, http.StatusOK, "login", "Acceso", "/login", web.LoginData{Next: next})
}

// HandleLogin handles POST /login requests.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	next := safeNext(r.PostFormValue("next"))
	if !h.enabled() {
		http.Redirect(w, r, next, http.StatusSeeOther)
		return
	}

	err := h.hasher.Compare(r.PostFormValue("password"), h.passwordHash)
	switch {
	case errors.Is(err, crypto.ErrPasswordMismatch):
		slog.Warn("failed admin login", "remote", r.RemoteAddr)
		h.pages.render(w, r, http.StatusUnauthorized, "login", "Acceso", "/login", web.LoginData{Next: next, Error: msgBadPassword})
		return
	case err != nil:
		slog.Error("verifying admin password", "error", err)
		h.pages.renderError(w, r, http.StatusInternalServerError, msgInternal)
		return
	}

	// A successful login always starts a new session.
	sess, err := h.sessions.Renew(w, r)
	if err != nil {
		slog.Error("renewing session", "error", err)
		h.pages.renderError(w, r, http.StatusInternalServerError, msgInternal)
		return
	}
	sess.SetAuthenticated(true)
	http.Redirect(w, r, next, http.StatusSeeOther)
}

// HandleLogout handles POST /logout requests.
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	h.sessions.End(w, r)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// safeNext keeps redirects on this site.
func safeNext(next string) string {
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return "/"
	}
	return next
}
