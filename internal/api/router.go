package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shelftrack/reading-tracker/internal/api/handler"
	"github.com/shelftrack/reading-tracker/internal/api/middleware"
	"github.com/shelftrack/reading-tracker/internal/core/domain"
	"github.com/shelftrack/reading-tracker/internal/core/ports"
	"github.com/shelftrack/reading-tracker/internal/infrastructure/config"
)

// Services groups the use-case implementations the router wires to routes.
type Services struct {
	Auth    ports.AuthService
	Users   ports.UserService
	Books   ports.BookService
	Entries ports.ReadingEntryService
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, log zerolog.Logger, db *mongo.Database, rdb *redis.Client, svcs Services) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log, cfg.Env)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("readingtracker"))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(svcs.Auth, handler.CookieConfig{
		Name:   cfg.JWT.CookieName,
		Secure: cfg.Env != "development",
	})
	userHandler := handler.NewUserHandler(svcs.Users)
	bookHandler := handler.NewBookHandler(svcs.Books)
	entryHandler := handler.NewReadingEntryHandler(svcs.Entries)

	authRequired := middleware.Authenticate(svcs.Auth, cfg.JWT.CookieName)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	v1 := e.Group("/api/v1")

	// --- Auth routes ---
	auth := v1.Group("/auth")
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.Refresh, authRequired)
	auth.DELETE("/logout", authHandler.Logout, authRequired)
	auth.GET("/me", authHandler.Me, authRequired)

	// --- User routes ---
	users := v1.Group("/users", authRequired)
	users.GET("", userHandler.List,
		middleware.RequirePermission(domain.PermViewAllUsers))
	users.GET("/:id", userHandler.Get,
		middleware.RequirePermission(domain.PermViewUserProfile))
	users.PATCH("/:id", userHandler.Update,
		middleware.RequirePermission(domain.PermManageUsers))
	users.POST("/:id/deactivate", userHandler.Deactivate,
		middleware.RequireAllPermissions(domain.PermManageUsers, domain.PermDeactivateUser))
	users.POST("/:id/activate", userHandler.Activate,
		middleware.RequireAllPermissions(domain.PermManageUsers, domain.PermActivateUser))

	// --- Book routes ---
	books := v1.Group("/books", authRequired)
	books.POST("", bookHandler.Create,
		middleware.RequirePermission(domain.PermCreateBook))
	books.GET("", bookHandler.List,
		middleware.RequirePermission(domain.PermViewBook))
	books.GET("/search", bookHandler.Search,
		middleware.RequirePermission(domain.PermViewBook))
	books.GET("/:id", bookHandler.Get,
		middleware.RequirePermission(domain.PermViewBook))
	books.PATCH("/:id", bookHandler.Update,
		middleware.RequireAnyPermission(domain.PermEditBook, domain.PermEditOwnBook))
	books.DELETE("/:id", bookHandler.Delete,
		middleware.RequireAnyPermission(domain.PermDeleteBook, domain.PermDeleteOwnBook))

	// --- Reading entry routes ---
	canEditEntry := middleware.RequireAnyPermission(domain.PermEditReadingEntry, domain.PermEditOwnReadingEntry)

	entries := v1.Group("/reading-entries", authRequired)
	entries.POST("", entryHandler.Create,
		middleware.RequirePermission(domain.PermCreateReadingEntry))
	entries.GET("", entryHandler.List,
		middleware.RequirePermission(domain.PermViewOwnReadingEntries))
	entries.GET("/:id", entryHandler.Get,
		middleware.RequirePermission(domain.PermViewReadingEntry))
	entries.PATCH("/:id/start-reading", entryHandler.StartReading, canEditEntry)
	entries.PATCH("/:id/progress", entryHandler.UpdateProgress, canEditEntry)
	entries.PATCH("/:id/complete", entryHandler.Complete, canEditEntry)
	entries.PATCH("/:id/abandon", entryHandler.Abandon, canEditEntry)
	entries.PATCH("/:id/review", entryHandler.UpdateReview, canEditEntry)
	entries.DELETE("/:id", entryHandler.Delete,
		middleware.RequireAnyPermission(domain.PermDeleteReadingEntry, domain.PermDeleteOwnReadingEntry))

	return e
}
