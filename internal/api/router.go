package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/opsdesk/business-ops/internal/api/handler"
	"github.com/opsdesk/business-ops/internal/api/middleware"
	"github.com/opsdesk/business-ops/internal/core/domain"
	"github.com/opsdesk/business-ops/internal/core/service"
	mongodb "github.com/opsdesk/business-ops/internal/infrastructure/db/mongo"
	redisdb "github.com/opsdesk/business-ops/internal/infrastructure/db/redis"
)

// RouterConfig carries everything NewRouter needs beyond the two stores.
type RouterConfig struct {
	JWTSecret      string
	TokenTTL       time.Duration
	MaxAttempts    int
	ThrottleWindow time.Duration
	Log            zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg RouterConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(cfg.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("businessops"))

	// --- Repositories ---
	userRepo := mongodb.NewUserRepository(db)
	ruleRepo := mongodb.NewLoginRuleRepository(db)
	auditRepo := mongodb.NewAuditLogRepository(db)
	businessRepo := mongodb.NewBusinessRepository(db)
	contactRepo := mongodb.NewContactRepository(db)
	quoteRepo := mongodb.NewQuoteRepository(db)
	seqRepo := mongodb.NewSequenceRepository(db)

	throttle := redisdb.NewLoginThrottle(rdb, cfg.MaxAttempts, cfg.ThrottleWindow)

	// --- Services ---
	authService := service.NewAuthService(userRepo, ruleRepo, throttle, cfg.JWTSecret, cfg.TokenTTL, cfg.Log)
	userService := service.NewUserService(userRepo, cfg.Log)
	ruleService := service.NewLoginRuleService(ruleRepo, userRepo, auditRepo, cfg.Log)
	businessService := service.NewBusinessService(businessRepo, contactRepo, seqRepo, cfg.Log)
	quoteService := service.NewQuoteService(quoteRepo, businessRepo, seqRepo, cfg.Log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	ruleHandler := handler.NewLoginRuleHandler(ruleService)
	businessHandler := handler.NewBusinessHandler(businessService)
	quoteHandler := handler.NewQuoteHandler(quoteService)

	authMW := middleware.Auth(cfg.JWTSecret)
	adminOnly := middleware.RBAC(string(domain.RoleAdmin))
	anyRole := middleware.RBAC(string(domain.RoleAdmin), string(domain.RoleStaff))

	// --- Auth ---
	e.POST("/auth/login", authHandler.Login)

	// --- Users ---
	users := e.Group("/v1/users", authMW)
	users.GET("", userHandler.List, anyRole)
	users.GET("/me", userHandler.Me, anyRole)
	users.GET("/:id", userHandler.Get, anyRole)
	users.POST("", userHandler.Create, adminOnly)
	users.PUT("/:id", userHandler.Update, adminOnly)
	users.DELETE("/:id", userHandler.Delete, adminOnly)
	users.PUT("/delete/:id", userHandler.SoftDelete, adminOnly)
	users.POST("/:id/change-password", userHandler.ChangePassword, anyRole)

	// --- Login rules (admin only) ---
	rules := e.Group("/v1/login-rules", authMW, adminOnly)
	rules.POST("", ruleHandler.Create)
	rules.POST("/:id", ruleHandler.Update)
	rules.POST("/delete/:id", ruleHandler.Delete)
	rules.GET("", ruleHandler.List)
	rules.GET("/:id/history", ruleHandler.History)

	// --- Businesses ---
	businesses := e.Group("/v1/businesses", authMW, anyRole)
	businesses.POST("", businessHandler.Create)
	businesses.GET("", businessHandler.List)
	businesses.GET("/:id", businessHandler.Get)

	// --- Quotes ---
	quotes := e.Group("/v1/quotes", authMW, anyRole)
	quotes.POST("/calc", quoteHandler.Calculate)
	quotes.POST("", quoteHandler.Create)
	quotes.GET("", quoteHandler.List)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
