package container

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"happybrother-backend/internal/config"
	infraCache "happybrother-backend/internal/infrastructure/cache"
	"happybrother-backend/internal/infrastructure/database"
	"happybrother-backend/pkg/cache"
	"happybrother-backend/pkg/jwt"

	authHandler "happybrother-backend/internal/domains/auth/handler"
	authService "happybrother-backend/internal/domains/auth/service"

	"happybrother-backend/internal/domains/post"
	postHandler "happybrother-backend/internal/domains/post/handler"
	postRepo "happybrother-backend/internal/domains/post/repository"
	postService "happybrother-backend/internal/domains/post/service"
)

// Container holds the application's dependency graph.
// Initialization order matters: config, infrastructure, repositories,
// services, handlers.
type Container struct {
	// Infrastructure - singletons shared across domains
	Config     *config.Config
	DB         *database.PostgresDB
	Cache      cache.Cache
	JWTManager *jwt.Manager

	// Post domain
	PostRepo    post.Repository
	PostService post.Service
	PostHandler *postHandler.PostHandler

	// Auth domain (session gate)
	AuthHandler *authHandler.AuthHandler
}

// NewContainer builds and wires the whole dependency graph.
func NewContainer() (*Container, error) {
	c := &Container{}

	// Config first - a missing required value is logged, not fatal;
	// dependent operations will fail when attempted.
	cfg, err := config.Load()
	if err != nil {
		log.Error().Err(err).Msg("configuration incomplete")
	}
	c.Config = cfg

	// Database
	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	c.DB = db

	// Cache - a Redis failure is non-critical, reads fall back to the
	// database.
	redisCache := infraCache.NewRedisCache(
		cfg.Redis.Host,
		cfg.Redis.Password,
		cfg.Redis.DB,
	)
	if rc, ok := redisCache.(*infraCache.RedisCache); ok {
		if err := rc.Connect(context.Background()); err != nil {
			log.Warn().Err(err).Msg("redis connection failed (non-critical)")
		}
	}
	c.Cache = redisCache

	c.JWTManager = jwt.NewManager(cfg.JWT.Secret, cfg.JWT.SessionExpiry)

	// Repositories
	c.PostRepo = postRepo.NewPostgresRepository(db.Pool, c.Cache)

	// Services
	c.PostService = postService.NewPostService(c.PostRepo, cfg.Content.Authors)

	authSvc, err := authService.NewAuthService(cfg.Admin, c.JWTManager, cfg.JWT.SessionExpiry)
	if err != nil {
		return nil, fmt.Errorf("failed to init auth service: %w", err)
	}

	// Handlers
	c.PostHandler = postHandler.NewPostHandler(c.PostService)
	c.AuthHandler = authHandler.NewAuthHandler(authSvc)

	log.Info().Str("env", cfg.App.Environment).Msg("container initialized")
	return c, nil
}

// Cleanup releases infrastructure resources on shutdown.
func (c *Container) Cleanup() {
	if c.DB != nil {
		c.DB.Close()
	}
	if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
		if err := rc.Close(); err != nil {
			log.Warn().Err(err).Msg("redis close failed")
		}
	}
	log.Info().Msg("container cleaned up")
}
