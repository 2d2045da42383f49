package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/mna-portal/societa-api/internal/core/domain"
	"github.com/mna-portal/societa-api/internal/core/ports"
)

// IdentityKey is the echo context key under which the decoded identity is
// stored by the auth middleware.
const IdentityKey = "identity"

// Auth requires a valid bearer token and injects the decoded identity into
// the context. Missing token → 401, invalid or expired token → 403.
func Auth(verifier ports.TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := bearerToken(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}

			ident, err := verifier.Verify(token)
			if err != nil {
				return echo.NewHTTPError(http.StatusForbidden, "invalid token")
			}

			c.Set(IdentityKey, ident)
			return next(c)
		}
	}
}

// OptionalAuth attaches an identity when a valid bearer token is present and
// otherwise lets the request through anonymously. An invalid token is
// deliberately ignored rather than rejected: public routes never hard-fail on
// a bad token.
func OptionalAuth(verifier ports.TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := bearerToken(c)
			if !ok {
				return next(c)
			}

			if ident, err := verifier.Verify(token); err == nil {
				c.Set(IdentityKey, ident)
			}
			return next(c)
		}
	}
}

// Identity returns the identity attached by Auth or OptionalAuth, or nil for
// anonymous callers.
func Identity(c echo.Context) *domain.Identity {
	ident, _ := c.Get(IdentityKey).(*domain.Identity)
	return ident
}

func bearerToken(c echo.Context) (string, bool) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if header == "" {
		return "", false
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}
