package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mna-portal/societa-api/internal/api/metrics"
	"github.com/mna-portal/societa-api/internal/core/domain"
	"github.com/mna-portal/societa-api/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type loginRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=4,max=100"`
}

type loginResponse struct {
	Token     string       `json:"token"`
	User      *domain.User `json:"user"`
	ExpiresIn string       `json:"expiresIn"`
	TokenType string       `json:"tokenType"`
}

type refreshResponse struct {
	Token     string `json:"token"`
	ExpiresIn string `json:"expiresIn"`
}

// Login authenticates a user and returns a bearer token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
		}
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, loginResponse{
		Token:     token,
		User:      user,
		ExpiresIn: h.authService.ExpiresIn(),
		TokenType: "Bearer",
	})
}

// Logout is advisory only: tokens are stateless and cannot be revoked
// server-side, the client just discards its copy.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]any
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"message": "logged out, discard the token client-side",
	})
}

// Me returns the identity decoded from the caller's token.
//
// @Summary      Current identity
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]any
// @Failure      401  {object}  errorResponse
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	ident, err := requireIdentity(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"user": ident})
}

// Refresh re-issues a token from the currently valid identity without
// re-checking credentials.
//
// @Summary      Refresh token
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  refreshResponse
// @Failure      401  {object}  errorResponse
// @Router       /api/auth/refresh [post]
func (h *AuthHandler) Refresh(c echo.Context) error {
	ident, err := requireIdentity(c)
	if err != nil {
		return err
	}

	token, err := h.authService.Refresh(*ident)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, refreshResponse{
		Token:     token,
		ExpiresIn: h.authService.ExpiresIn(),
	})
}
