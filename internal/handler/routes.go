package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/biblioteca/biblioteca-admin/internal/middleware"
)

// Router bundles what NewRouter wires together.
type Router struct {
	Pages *Pages
	Home  *HomeHandler
	Books *BookHandler
	Users *UserHandler
	Auth  *AuthHandler

	Sessions      func(http.Handler) http.Handler
	RateLimit     func(http.Handler) http.Handler
	LoginRequired bool
	TrustProxy    bool
}

// NewRouter builds the route table. Every state-changing route is
// rate-limited and CSRF-checked. Client addresses come from forwarding
// headers only with TrustProxy set.
func NewRouter(rt Router) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	if rt.TrustProxy {
		r.Use(chimw.RealIP)
	}
	r.Use(middleware.Logger)
	r.Use(chimw.Recoverer)

	r.NotFound(rt.Pages.NotFound)
	r.MethodNotAllowed(rt.Pages.MethodNotAllowed)

	r.Get("/health", HandleHealth)

	r.Group(func(r chi.Router) {
		r.Use(rt.Sessions)
		r.Use(middleware.CSRF)

		limited := r.With(rt.RateLimit)

		r.Get("/login", rt.Auth.HandleLoginPage)
		limited.Post("/login", rt.Auth.HandleLogin)
		limited.Post("/logout", rt.Auth.HandleLogout)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireLogin(rt.LoginRequired))
			limited := r.With(rt.RateLimit)

			r.Get("/", rt.Home.HandleHome)

			r.Get("/libros", rt.Books.HandleList)
			r.Get("/libros/nuevo", rt.Books.HandleNew)
			limited.Post("/libros/nuevo", rt.Books.HandleCreate)
			r.Get("/libros/{id}", rt.Books.HandleDetail)
			r.Get("/libros/{id}/editar", rt.Books.HandleEdit)
			limited.Post("/libros/{id}/editar", rt.Books.HandleUpdate)
			limited.Post("/libros/{id}/eliminar", rt.Books.HandleDelete)

			r.Get("/usuarios", rt.Users.HandleList)
			r.Get("/usuarios/nuevo", rt.Users.HandleNew)
			limited.Post("/usuarios/nuevo", rt.Users.HandleCreate)
			r.Get("/usuarios/{id}", rt.Users.HandleDetail)
			r.Get("/usuarios/{id}/editar", rt.Users.HandleEdit)
			limited.Post("/usuarios/{id}/editar", rt.Users.HandleUpdate)
			limited.Post("/usuarios/{id}/eliminar", rt.Users.HandleDelete)
		})
	})

	return r
}
