package api

import (
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/mna-portal/societa-api/internal/api/handler"
	"github.com/mna-portal/societa-api/internal/api/middleware"
	"github.com/mna-portal/societa-api/internal/core/domain"
	"github.com/mna-portal/societa-api/internal/core/ports"
	"github.com/mna-portal/societa-api/internal/core/service"
	"github.com/mna-portal/societa-api/internal/infrastructure/config"
	"github.com/mna-portal/societa-api/internal/infrastructure/db/postgres"
	redisdb "github.com/mna-portal/societa-api/internal/infrastructure/db/redis"
	httphandlers "github.com/mna-portal/societa-api/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// rdb may be nil, in which case the public-list cache is disabled.
func NewRouter(pool *pgxpool.Pool, rdb *redis.Client, tokens *service.TokenManager, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     []string{cfg.CORSOrigin},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete},
		AllowHeaders:     []string{echo.HeaderContentType, echo.HeaderAuthorization},
		AllowCredentials: true,
	}))
	e.Use(echoprometheus.NewMiddleware("societa"))

	// --- Dependencies ---
	var cache ports.CompanyCache
	if rdb != nil {
		cache = redisdb.NewPublicListCache(rdb)
	}

	authRepo := postgres.NewAuthRepository(pool)
	authService := service.NewAuthService(authRepo, tokens, log)
	authHandler := handler.NewAuthHandler(authService)

	companyRepo := postgres.NewCompanyRepository(pool)
	companyService := service.NewCompanyService(companyRepo, cache, log)
	companyHandler := handler.NewCompanyHandler(companyService)

	mandatoryAuth := middleware.Auth(tokens)
	optionalAuth := middleware.OptionalAuth(tokens)
	adminOnly := middleware.RequireRole(domain.RoleAdmin)

	// --- Auth routes ---
	auth := e.Group("/api/auth")
	auth.POST("/login", authHandler.Login)
	auth.POST("/logout", authHandler.Logout)
	auth.GET("/me", authHandler.Me, mandatoryAuth)
	auth.POST("/refresh", authHandler.Refresh, mandatoryAuth)

	// --- Società routes ---
	societa := e.Group("/api/societa")
	societa.GET("", companyHandler.List, optionalAuth)
	societa.GET("/:id", companyHandler.Get, optionalAuth)
	societa.POST("", companyHandler.Create, mandatoryAuth, adminOnly)
	societa.PATCH("/:id", companyHandler.Update, mandatoryAuth, adminOnly)
	societa.DELETE("/:id", companyHandler.Delete, mandatoryAuth, adminOnly)

	// --- Service banner ---
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"message":   "societa portal API",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"version":   cfg.Version,
		})
	})

	// --- Health probes and metrics (no auth required) ---
	healthHandler := httphandlers.NewHealthHandler()
	healthDepsHandler := httphandlers.NewHealthDependenciesHandler(pool, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
