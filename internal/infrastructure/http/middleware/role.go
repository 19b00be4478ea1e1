package middleware

import (
	"net/http"

	"github.com/mubarek-tria/CIEt/internal/domain"
)

const roleHeader = "X-User-Role"

// ResolveRole reads the caller-asserted role header and stores the parsed
// role in the request context. The assertion is advisory only; nothing
// verifies it against a credential store. Missing or unrecognized values
// resolve to guest.
func ResolveRole(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role := domain.ParseRole(r.Header.Get(roleHeader))
		next.ServeHTTP(w, r.WithContext(WithRole(r.Context(), role)))
	})
}

// RequireRole returns a middleware that allows the request iff the resolved
// role is in the given set. Denials are written before the body is read.
func RequireRole(roles ...domain.Role) func(http.Handler) http.Handler {
	allowed := make(map[domain.Role]bool, len(roles))
	for _, role := range roles {
		allowed[role] = true
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !allowed[RoleFromContext(r.Context())] {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusForbidden)
				_, _ = w.Write([]byte(`{"error":"Forbidden: insufficient role"}`))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
