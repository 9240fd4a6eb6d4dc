package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"gorm.io/gorm"

	_ "github.com/ratewise/store-ratings/docs"
	"github.com/ratewise/store-ratings/internal/api/handler"
	"github.com/ratewise/store-ratings/internal/api/middleware"
	"github.com/ratewise/store-ratings/internal/core/domain"
	"github.com/ratewise/store-ratings/internal/core/service"
	"github.com/ratewise/store-ratings/internal/infrastructure/db/postgres"
	redisdb "github.com/ratewise/store-ratings/internal/infrastructure/db/redis"
)

// Options carries the router's external dependencies and settings.
type Options struct {
	DB         *gorm.DB
	Redis      *redis.Client
	JWTSecret  string
	CORSOrigin string
	Logger     zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(opts Options) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(opts.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     []string{opts.CORSOrigin},
		AllowCredentials: true,
	}))
	e.Use(echoprometheus.NewMiddleware("store_ratings"))

	// --- Dependencies ---
	userRepo := postgres.NewUserRepository(opts.DB)
	storeRepo := postgres.NewStoreRepository(opts.DB)
	ratingRepo := postgres.NewRatingRepository(opts.DB)
	countsCache := redisdb.NewCountsCache(opts.Redis)

	authService := service.NewAuthService(userRepo, opts.JWTSecret, time.Hour)
	ratingService := service.NewRatingService(ratingRepo, storeRepo, opts.Logger)
	storeService := service.NewStoreService(storeRepo, ratingRepo, userRepo, opts.Logger)
	adminService := service.NewAdminService(userRepo, storeRepo, ratingRepo, countsCache, opts.Logger)

	authHandler := handler.NewAuthHandler(authService)
	adminHandler := handler.NewAdminHandler(adminService, authService, storeService)
	ownerHandler := handler.NewOwnerHandler(ratingService)
	storeHandler := handler.NewStoreHandler(storeService, ratingService)

	authn := middleware.Auth(opts.JWTSecret)

	// --- Auth routes ---
	e.POST("/auth/signup", authHandler.Signup)
	e.POST("/auth/login", authHandler.Login)
	e.PATCH("/auth/password", authHandler.UpdatePassword, authn)

	// --- Admin routes ---
	admin := e.Group("/admin", authn, middleware.RBAC(domain.RoleAdmin))
	admin.GET("/dashboard", adminHandler.Dashboard)
	admin.GET("/stores", adminHandler.Stores)
	admin.POST("/stores", adminHandler.CreateStore)
	admin.GET("/users", adminHandler.Users)
	admin.POST("/users", adminHandler.CreateUser)
	admin.GET("/users/:id", adminHandler.UserDetail)

	// --- Owner routes ---
	owner := e.Group("/owner", authn, middleware.RBAC(domain.RoleOwner))
	owner.GET("/store/ratings", ownerHandler.StoreRatings)

	// --- Authenticated store routes (any role) ---
	stores := e.Group("/stores", authn, middleware.RBAC())
	stores.GET("", storeHandler.List)
	stores.POST("/:id/ratings", storeHandler.SubmitRating)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(opts.DB, opts.Redis)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
