package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/fintrack/finance-tracker/internal/api/handler"
	"github.com/fintrack/finance-tracker/internal/api/middleware"
	"github.com/fintrack/finance-tracker/internal/core/service"
	mongodb "github.com/fintrack/finance-tracker/internal/infrastructure/db/mongo"
	redisdb "github.com/fintrack/finance-tracker/internal/infrastructure/db/redis"
	healthhandlers "github.com/fintrack/finance-tracker/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, jwtSecret string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("fintrack"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	txRepo := mongodb.NewTransactionRepository(db)
	summaryCache := redisdb.NewSummaryCache(rdb)

	tokenService := service.NewTokenService(jwtSecret, 0)
	authService := service.NewAuthService(userRepo, tokenService)
	txService := service.NewTransactionService(txRepo, summaryCache, log)

	authHandler := handler.NewAuthHandler(authService)
	txHandler := handler.NewTransactionHandler(txService)
	authRequired := middleware.Auth(tokenService)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.GET("/auth/profile", authHandler.GetProfile, authRequired)
	e.PUT("/auth/profile", authHandler.UpdateProfile, authRequired)

	// --- Transaction routes (all ownership-scoped) ---
	tx := e.Group("/transactions", authRequired)
	tx.GET("", txHandler.List)
	tx.POST("", txHandler.Create)
	tx.GET("/summary", txHandler.Summary)
	tx.PUT("/:id", txHandler.Update)
	tx.DELETE("/:id", txHandler.Delete)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := healthhandlers.NewHealthHandler()
	healthDepsHandler := healthhandlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
