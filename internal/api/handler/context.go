package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/mna-portal/societa-api/internal/api/middleware"
	"github.com/mna-portal/societa-api/internal/core/domain"
)

// requireIdentity extracts the identity attached by the mandatory auth
// middleware. Absence proves the middleware did not run; fail fast with 401
// before any handler logic.
func requireIdentity(c echo.Context) (*domain.Identity, error) {
	ident := middleware.Identity(c)
	if ident == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}
	return ident, nil
}

// parseID validates a path id: a positive integer.
func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.New("invalid id")
	}
	return id, nil
}
