package context

import (
	"context"

	"containerview/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// KeyPrincipal is the key for the authenticated caller.
const KeyPrincipal ContextKey = "principal"

// SetPrincipal attaches the principal to the echo context and to the request context,
// so both handlers and usecases can read it.
func SetPrincipal(c echo.Context, principal *entity.Principal) {
	c.Set(string(KeyPrincipal), principal)
	c.SetRequest(c.Request().WithContext(WithPrincipal(c.Request().Context(), principal)))
}

// GetPrincipal returns the principal set by the authentication filter.
func GetPrincipal(c echo.Context) (*entity.Principal, bool) {
	principal, ok := c.Get(string(KeyPrincipal)).(*entity.Principal)

	return principal, ok && principal != nil
}

// WithPrincipal returns a new context carrying the principal.
func WithPrincipal(ctx context.Context, principal *entity.Principal) context.Context {
	return context.WithValue(ctx, KeyPrincipal, principal)
}

// GetPrincipalFromContext extracts the principal from a standard context.
func GetPrincipalFromContext(ctx context.Context) (*entity.Principal, bool) {
	principal, ok := valueOf[*entity.Principal](ctx, KeyPrincipal)

	return principal, ok && principal != nil
}
