package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/paktrade/holdings-api/docs"
	"github.com/paktrade/holdings-api/internal/api/handler"
	"github.com/paktrade/holdings-api/internal/api/middleware"
	"github.com/paktrade/holdings-api/internal/core/service"
	"github.com/paktrade/holdings-api/internal/core/token"
	mongodb "github.com/paktrade/holdings-api/internal/infrastructure/db/mongo"
	redisdb "github.com/paktrade/holdings-api/internal/infrastructure/db/redis"
	"github.com/paktrade/holdings-api/internal/infrastructure/queue"
	"github.com/paktrade/holdings-api/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, audit *queue.Dispatcher, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("holdings"))

	// --- Dependencies ---
	tokens := token.NewManager([]byte(cfg.SessionTokenKey), []byte(cfg.TransactionTokenKey))

	accountRepo := mongodb.NewAccountRepository(db)
	holdingRepo := mongodb.NewHoldingRepository(db)
	orderRepo := mongodb.NewOrderRepository(db)

	authService := service.NewAuthService(accountRepo, tokens)
	holdingService := service.NewHoldingService(holdingRepo)
	orderService := service.NewOrderService(orderRepo)

	authHandler := handler.NewAuthHandler(authService, audit, cfg.IsProduction())
	holdingHandler := handler.NewHoldingHandler(holdingService)
	orderHandler := handler.NewOrderHandler(orderService)
	txHandler := handler.NewTransactionHandler(tokens)

	session := middleware.Session(tokens, accountRepo)
	authLimiter := middleware.RateLimit(redisdb.NewRateLimiter(rdb, 0, 0), "auth", log)

	// --- Auth routes ---
	e.POST("/signup", authHandler.Signup, authLimiter)
	e.POST("/login", authHandler.Login, authLimiter)

	// --- Protected routes ---
	v1 := e.Group("/v1", session)
	v1.GET("/holdings", holdingHandler.List)
	v1.POST("/holdings", holdingHandler.Create)
	v1.GET("/orders", orderHandler.List)
	v1.POST("/orders", orderHandler.Create)
	v1.POST("/transactions/token", txHandler.IssueToken, middleware.RequireCompliance())

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
