package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "containerview/internal/delivery/context"
	"containerview/internal/domain/entity"
	domainerrors "containerview/internal/domain/errors"
	"containerview/internal/domain/repository"
	"containerview/internal/domain/service"
	"containerview/internal/errors"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const bearerPrefix = "Bearer "

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	SessionCodec service.SessionTokenCodec
	UserRepo     repository.UserRepository
	Logger       *slog.Logger
}

// AuthMiddleware resolves the session token into a principal and guards routes by permission.
type AuthMiddleware struct {
	sessionCodec service.SessionTokenCodec
	userRepo     repository.UserRepository
	logger       *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{
		sessionCodec: params.SessionCodec,
		userRepo:     params.UserRepo,
		logger:       params.Logger,
	}
}

// BearerToken returns the token of an "Authorization: Bearer" header, or "".
func BearerToken(c echo.Context) string {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if len(header) <= len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return ""
	}

	return strings.TrimSpace(header[len(bearerPrefix):])
}

// Authenticate runs on every request and never rejects one. A valid session token whose
// subject still exists attaches a principal; anything else leaves the request anonymous
// for the route guards to decide.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := BearerToken(c)
		if token == "" {
			return next(c)
		}

		ctx := c.Request().Context()
		logger := deliverycontext.GetLoggerOrDefault(ctx, m.logger)

		identity, err := m.sessionCodec.Validate(token)
		if err != nil {
			logger.Debug("Ignoring invalid session token", slog.String("path", c.Request().URL.Path))

			return next(c)
		}

		// The role is read on every request so role changes apply before the token expires.
		user, err := m.userRepo.FindByTaxID(ctx, identity)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				logger.Warn("Session token subject no longer exists", slog.String("identity", identity))
			} else {
				logger.Error("Failed to load session subject", slog.String("identity", identity), slog.Any("error", err))
			}

			return next(c)
		}

		deliverycontext.SetPrincipal(c, entity.NewPrincipal(user.TaxID, user.Role))

		return next(c)
	}
}

// RequireAuthenticated rejects anonymous requests with 401.
func (m *AuthMiddleware) RequireAuthenticated() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, ok := deliverycontext.GetPrincipal(c); !ok {
				return domainerrors.ErrUnauthenticated
			}

			return next(c)
		}
	}
}

// RequirePermission rejects anonymous requests with 401 and principals lacking the
// permission with 403.
func (m *AuthMiddleware) RequirePermission(permission entity.Permission) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal, ok := deliverycontext.GetPrincipal(c)
			if !ok {
				return domainerrors.ErrUnauthenticated
			}
			if !principal.Can(permission) {
				deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).Warn("Permission denied",
					slog.String("identity", principal.Identity),
					slog.String("required", string(permission)),
				)

				return domainerrors.ErrForbidden
			}

			return next(c)
		}
	}
}
