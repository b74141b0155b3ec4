// Package middleware contains the echo middleware of the API server.
package middleware

import (
	"log/slog"
	"strings"

	"bazaar/internal/delivery/api/response"
	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const callerKey = "caller"

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	TokenService service.TokenService
	Logger       *slog.Logger
}

// AuthMiddleware authenticates requests carrying a Bearer access token.
type AuthMiddleware struct {
	tokenService service.TokenService
	logger       *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// Authenticate validates the access token and stores the resolved Caller on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return unauthorized(c, "Authorization header is missing")
		}

		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || tokenString == "" {
			return unauthorized(c, "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenService.ValidateToken(tokenString)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
				Debug("Rejected access token", slog.Any("error", err))

			return unauthorized(c, "Invalid or expired token")
		}

		c.Set(callerKey, claims.Caller())

		return next(c)
	}
}

func unauthorized(c echo.Context, message string) error {
	return response.Unauthorized(c, domainerrors.ErrUnauthorized.ErrorCode(), message)
}

// GetCaller returns the authenticated account set by Authenticate.
func GetCaller(c echo.Context) (entity.Caller, bool) {
	caller, ok := c.Get(callerKey).(entity.Caller)

	return caller, ok
}

// SetCaller stores caller on the request context. Tests use it to skip token handling.
func SetCaller(c echo.Context, caller entity.Caller) {
	c.Set(callerKey, caller)
}
