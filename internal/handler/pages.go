package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/biblioteca/biblioteca-admin/internal/session"
	"github.com/biblioteca/biblioteca-admin/internal/web"
)

const (
	msgPageNotFound = "Página no encontrada"
	msgInternal     = "Error interno del servidor"
)

// Pages renders templates inside the shell with the per-request session data.
type Pages struct {
	renderer     *web.Renderer
	loginEnabled bool
}

// NewPages creates a new Pages.
func NewPages(renderer *web.Renderer, loginEnabled bool) *Pages {
	return &Pages{renderer: renderer, loginEnabled: loginEnabled}
}

// render writes the named page. path is the page the shell highlights, which
// differs from the request path when a POST re-renders its originating view.
func (p *Pages) render(w http.ResponseWriter, r *http.Request, status int, name, title, path string, data any) {
	page := web.Page{
		Title:        title,
		Path:         path,
		LoginEnabled: p.loginEnabled,
		Data:         data,
	}
	if sess, ok := session.FromContext(r.Context()); ok {
		page.Flashes = sess.PopFlashes()
		page.CSRFToken = sess.CSRFToken
		page.Authenticated = sess.Authenticated()
	}

	if err := p.renderer.Render(w, status, name, page); err != nil {
		slog.Error("rendering page", "template", name, "path", r.URL.Path, "error", err)
		http.Error(w, msgInternal, http.StatusInternalServerError)
	}
}

func (p *Pages) renderError(w http.ResponseWriter, r *http.Request, status int, message string) {
	p.render(w, r, status, "error", message, r.URL.Path, web.ErrorData{Status: status, Message: message})
}

// NotFound renders the 404 page for unknown routes.
func (p *Pages) NotFound(w http.ResponseWriter, r *http.Request) {
	p.renderError(w, r, http.StatusNotFound, msgPageNotFound)
}

// MethodNotAllowed renders the 405 page.
func (p *Pages) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	p.renderError(w, r, http.StatusMethodNotAllowed, "Método no permitido")
}

// HandleHealth handles GET /health requests.
func HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// idParam parses the {id} URL parameter. Only positive integers are valid.
func idParam(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func sessionOf(r *http.Request) *session.Session {
	if sess, ok := session.FromContext(r.Context()); ok {
		return sess
	}
	// Routes mounted without the session middleware still get a private,
	// throwaway session so handlers need no nil checks.
	return &session.Session{}
}
