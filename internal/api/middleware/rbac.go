package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RequireRole enforces role-based access control on routes behind Auth.
// The 403 payload names the allowed roles and the caller's role; roles are
// not secret, and the context helps API consumers debug.
func RequireRole(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ident := Identity(c)
			if ident == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}

			if _, ok := allowed[ident.Role]; !ok {
				return c.JSON(http.StatusForbidden, map[string]any{
					"error":         "access denied",
					"requiredRoles": allowedRoles,
					"yourRole":      ident.Role,
				})
			}
			return next(c)
		}
	}
}
