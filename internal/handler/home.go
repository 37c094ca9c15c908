package handler

import (
	"log/slog"
	"net/http"

	"github.com/biblioteca/biblioteca-admin/internal/service"
	"github.com/biblioteca/biblioteca-admin/internal/web"
)

// HomeHandler serves the landing page with the book counters.
type HomeHandler struct {
	dashboard *service.Dashboard
	pages     *Pages
}

// NewHomeHandler creates a new HomeHandler.
func NewHomeHandler(dashboard *service.Dashboard, pages *Pages) *HomeHandler {
	return &HomeHandler{dashboard: dashboard, pages: pages}
}

// HandleHome handles GET / requests. Counter failures are logged and the
// page shows zeros.
func (h *HomeHandler) HandleHome(w http.ResponseWriter, r *http.Request) {
	stats, err := h.dashboard.Stats(r.Context())
	if err != nil {
		slog.Error("loading statistics", "error", err)
	}

	h.pages.render(w, r, http.StatusOK, "home", "Inicio", "/", web.HomeData{
		Stats:  stats,
		Failed: err != nil,
	})
}
