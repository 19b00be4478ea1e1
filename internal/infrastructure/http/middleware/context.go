package middleware

import (
	"context"

	"github.com/mubarek-tria/CIEt/internal/domain"
)

type contextKey string

const roleContextKey contextKey = "role"

// WithRole injects the resolved role into the context.
func WithRole(ctx context.Context, role domain.Role) context.Context {
	return context.WithValue(ctx, roleContextKey, role)
}

// RoleFromContext returns the role from the context, or RoleGuest.
func RoleFromContext(ctx context.Context) domain.Role {
	v := ctx.Value(roleContextKey)
	if v == nil {
		return domain.RoleGuest
	}
	r, ok := v.(domain.Role)
	if !ok {
		return domain.RoleGuest
	}
	return r
}
