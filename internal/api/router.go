package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	redisclient "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/worldwise/trip-planner-api/internal/api/handler"
	"github.com/worldwise/trip-planner-api/internal/api/middleware"
	"github.com/worldwise/trip-planner-api/internal/core/ports"
	"github.com/worldwise/trip-planner-api/internal/core/service"
	"github.com/worldwise/trip-planner-api/internal/infrastructure/config"
	"github.com/worldwise/trip-planner-api/internal/infrastructure/db/redis"
	"github.com/worldwise/trip-planner-api/internal/infrastructure/storage"
)

// Repositories bundles the persistence handles built in main (where their
// indexes are ensured) so the router and the purge job share instances.
type Repositories struct {
	Users  ports.UserRepository
	Cities ports.PlaceRepository
	Plans  ports.PlaceRepository
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, repos Repositories, db *mongo.Database, rdb *redisclient.Client, log zerolog.Logger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     cfg.AllowedOrigins(),
		AllowCredentials: true,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderContentType, echo.HeaderAuthorization},
	}))
	e.Use(echoprometheus.NewMiddleware("worldwise"))
	e.Use(middleware.RateLimit(redis.NewRateLimiter(rdb, cfg.RateLimit, 0), log))

	// --- Dependencies ---
	files, err := storage.NewLocalStore(cfg.UploadDir)
	if err != nil {
		return nil, err
	}

	tokens := service.NewTokenService(cfg.JWTSecret, 0)
	authService := service.NewAuthService(repos.Users, tokens, log)
	avatarService := service.NewAvatarService(repos.Users, files, cfg.PublicBaseURL, log)
	cityService := service.NewPlaceService(repos.Cities, "cities", false, log)
	planService := service.NewPlaceService(repos.Plans, "plans", true, log)

	authHandler := handler.NewAuthHandler(authService, avatarService)
	cityHandler := handler.NewPlaceHandler(cityService)
	planHandler := handler.NewPlaceHandler(planService)
	authGate := middleware.Auth(tokens)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	// The 5M ceiling leaves headroom for the multipart envelope around the
	// 4 MiB file limit enforced by the avatar service.
	e.POST("/auth/avatar", authHandler.UploadAvatar, authGate, echomiddleware.BodyLimit("5M"))

	// --- Owned resources ---
	cities := e.Group("/cities", authGate)
	cities.GET("", cityHandler.List)
	cities.POST("", cityHandler.Create)
	cities.GET("/:id", cityHandler.Get)
	cities.DELETE("/:id", cityHandler.Delete)

	plans := e.Group("/plans", authGate)
	plans.GET("", planHandler.List)
	plans.POST("", planHandler.Create)
	plans.GET("/:id", planHandler.Get)
	plans.DELETE("/:id", planHandler.Delete)

	// --- Static avatar files ---
	e.Static("/uploads", cfg.UploadDir)

	// --- Health probes, metrics, docs (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e, nil
}
