package server

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/pageza/diethub/backend/config"
	"github.com/pageza/diethub/backend/internal/api"
	"github.com/pageza/diethub/backend/internal/database"
	"github.com/pageza/diethub/backend/internal/middleware"
	"github.com/pageza/diethub/backend/internal/repository"
	"github.com/pageza/diethub/backend/internal/service"
)

// Server represents the HTTP server
type Server struct {
	cfg    *config.Config
	router *gin.Engine
	http   *http.Server
	db     *gorm.DB
	redis  *redis.Client
	images service.ImageStore
}

// Option customises a Server before its routes are mounted.
type Option func(*Server)

// WithRedis enables the write rate limiter backed by client.
func WithRedis(client *redis.Client) Option {
	return func(s *Server) { s.redis = client }
}

// WithImageStore enables recipe image uploads.
func WithImageStore(store service.ImageStore) Option {
	return func(s *Server) { s.images = store }
}

// New wires repositories, services and handlers onto a fresh gin engine.
func New(cfg *config.Config, db *gorm.DB, opts ...Option) *Server {
	s := &Server{cfg: cfg, db: db}
	for _, opt := range opts {
		opt(s)
	}

	if cfg.Environment != config.Development {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(gin.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS())
	router.Use(middleware.Metrics())

	if s.redis != nil && cfg.RateLimitWrites > 0 {
		log.Printf("[Server] Write rate limit enabled: %d requests/minute", cfg.RateLimitWrites)
		router.Use(middleware.NewWriteRateLimiter(s.redis, cfg.RateLimitWrites).RateLimitMiddleware())
	}

	router.NoRoute(middleware.NotFound())

	api.NewHealthHandler(func(ctx context.Context) error {
		return database.HealthCheck(ctx, db)
	}).RegisterRoutes(router)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	recipeService := service.NewRecipeService(repository.NewRecipeRepository(db), s.images)
	profileService := service.NewProfileService(repository.NewHealthProfileRepository(db))
	api.SetupAPI(router, recipeService, profileService)

	s.router = router
	return s
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start listens on the configured address and blocks until the server stops.
// It returns nil after a graceful Shutdown.
func (s *Server) Start() error {
	s.http = &http.Server{
		Addr:              s.cfg.Addr(),
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Printf("[Server] Listening on %s", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}
