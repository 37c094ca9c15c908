package middleware

import (
	"net/http"
	"net/url"

	"github.com/biblioteca/biblioteca-admin/internal/session"
)

// RequireLogin sends browsers without an authenticated session to the login
// page. When enabled is false every request passes.
func RequireLogin(enabled bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if !enabled {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess, ok := session.FromContext(r.Context())
			if ok && sess.Authenticated() {
				next.ServeHTTP(w, r)
				return
			}

			target := "/login"
			if r.Method == http.MethodGet {
				target += "?next=" + url.QueryEscape(r.URL.RequestURI())
			}
			http.Redirect(w, r, target, http.StatusSeeOther)
		})
	}
}
