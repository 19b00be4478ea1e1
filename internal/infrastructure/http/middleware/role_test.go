package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mubarek-tria/CIEt/internal/domain"
)

func gatedHandler(roles ...domain.Role) http.Handler {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return ResolveRole(RequireRole(roles...)(inner))
}

func TestRequireRoleAllows(t *testing.T) {
	h := gatedHandler(domain.RoleDirector, domain.RoleEmployee)
	for _, role := range []string{"director", "employee", "DIRECTOR", "Employee"} {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.Header.Set("X-User-Role", role)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Errorf("role %q: got %d, want 200", role, rec.Code)
		}
	}
}

func TestRequireRoleDenies(t *testing.T) {
	h := gatedHandler(domain.RoleAdmin)
	for _, role := range []string{"director", "employee", "guest", "superuser", ""} {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		if role != "" {
			req.Header.Set("X-User-Role", role)
		}
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		if rec.Code != http.StatusForbidden {
			t.Errorf("role %q: got %d, want 403", role, rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "Forbidden: insufficient role") {
			t.Errorf("role %q: body %q missing denial message", role, rec.Body.String())
		}
	}
}

func TestRequireRoleDeniesBeforeBodyIsRead(t *testing.T) {
	h := gatedHandler(domain.RoleAdmin)
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{this is not json`))
	req.Header.Set("X-User-Role", "employee")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Errorf("malformed body must not matter for a denied role: got %d, want 403", rec.Code)
	}
}

func TestRoleFromContextDefaultsToGuest(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if got := RoleFromContext(req.Context()); got != domain.RoleGuest {
		t.Errorf("RoleFromContext on bare context = %q, want guest", got)
	}
}
