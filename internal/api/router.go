// Package api assembles the HTTP surface: routing, middleware chain, error
// mapping, and the wiring of repositories into services and handlers.
package api

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/markobarraza/cafe-marketplace/internal/api/handler"
	"github.com/markobarraza/cafe-marketplace/internal/api/middleware"
	"github.com/markobarraza/cafe-marketplace/internal/core/domain"
	"github.com/markobarraza/cafe-marketplace/internal/core/ports"
	"github.com/markobarraza/cafe-marketplace/internal/core/service"
	"github.com/markobarraza/cafe-marketplace/internal/infrastructure/config"
	"github.com/markobarraza/cafe-marketplace/internal/infrastructure/db/postgres"
	redisinfra "github.com/markobarraza/cafe-marketplace/internal/infrastructure/db/redis"
	"github.com/markobarraza/cafe-marketplace/internal/security/token"
)

// NewRouter builds the fully wired Echo instance. audit may be nil when the
// audit pipeline is disabled (tests do this).
func NewRouter(
	cfg *config.Config,
	pool *pgxpool.Pool,
	rdb *redis.Client,
	audit ports.AuditPublisher,
	log zerolog.Logger,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("marketplace"))

	issuer := token.NewIssuer(cfg.JWTSecret, cfg.TokenTTL)

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	cartRepo := postgres.NewCartRepository(pool)
	limiter := redisinfra.NewLoginLimiter(rdb, cfg.Login.MaxAttempts, cfg.Login.Window)

	authService := service.NewAuthService(userRepo, issuer, limiter, audit, log)
	userService := service.NewUserService(userRepo, audit, log)
	productService := service.NewProductService(productRepo, audit, log)
	cartService := service.NewCartService(cartRepo, audit, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	productHandler := handler.NewProductHandler(productService)
	cartHandler := handler.NewCartHandler(cartService)
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(pool, rdb)

	requireAuth := middleware.Auth(issuer, log)

	// Public surface: registration, login, and catalog reads.
	e.POST("/usuarios", authHandler.Register)
	e.POST("/login", authHandler.Login)
	e.GET("/productos", productHandler.List)
	e.GET("/productos/:id", productHandler.Get)
	e.GET("/usuarios/:id/productos", productHandler.ListByOwner)

	// Account management. Listing all accounts is admin only; the remaining
	// routes enforce self-or-admin inside the service layer.
	users := e.Group("/usuarios", requireAuth)
	users.GET("", userHandler.List, middleware.RequireRoles(domain.RoleAdmin))
	users.GET("/:id", userHandler.Get)
	users.PUT("/:id", userHandler.Update)
	users.DELETE("/:id", userHandler.Delete)

	// Catalog mutations. Publishing requires a seller or admin role; update
	// and delete additionally require ownership, enforced in the repository.
	products := e.Group("/productos", requireAuth)
	products.POST("", productHandler.Create, middleware.RequireRoles(domain.RoleSeller, domain.RoleAdmin))
	products.PUT("/:id", productHandler.Update)
	products.DELETE("/:id", productHandler.Delete)

	cart := e.Group("/carrito", requireAuth)
	cart.GET("", cartHandler.List)
	cart.POST("", cartHandler.Add)
	cart.DELETE("/:id", cartHandler.Remove)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
