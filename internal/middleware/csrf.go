package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/biblioteca/biblioteca-admin/internal/session"
)

// CSRFField is the form field every state-changing form must carry.
const CSRFField = "csrf_token"

// CSRF rejects state-changing requests whose form token does not match the
// session's. It must run after Sessions.
func CSRF(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			next.ServeHTTP(w, r)
			return
		}

		sess, ok := session.FromContext(r.Context())
		if !ok {
			http.Error(w, "Sesión no válida", http.StatusForbidden)
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB
		token := r.PostFormValue(CSRFField)
		if token == "" || subtle.ConstantTimeCompare([]byte(token), []byte(sess.CSRFToken)) != 1 {
			http.Error(w, "Token de seguridad inválido, recargue la página", http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}
