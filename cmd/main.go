package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/carbazaar/admin-gateway/internal/api/handlers"
	"github.com/carbazaar/admin-gateway/internal/api/router"
	"github.com/carbazaar/admin-gateway/internal/audit"
	"github.com/carbazaar/admin-gateway/internal/backend"
	"github.com/carbazaar/admin-gateway/internal/config"
	"github.com/carbazaar/admin-gateway/internal/middleware"
	"github.com/carbazaar/admin-gateway/internal/panel"
	"github.com/carbazaar/admin-gateway/internal/session"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Session store: Redis when reachable, in-memory otherwise.
	var sessionStore session.Store = session.NewMemoryStore()
	var rateLimitStore middleware.RateLimitStore = middleware.NewMemoryStore()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Host + ":" + cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		log.Warn().Err(err).Msg("Redis unavailable, using in-memory session store")
	} else {
		sessionStore = session.NewRedisStore(redisClient)
		rateLimitStore = middleware.NewRedisStore(redisClient)
	}

	var recorder audit.Recorder = audit.NewMemoryRecorder()
	if cfg.Audit.Enabled {
		pg, err := audit.NewPostgresRecorder(audit.BuildDSN(cfg.Audit))
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize audit storage")
		}
		recorder = pg
	}

	httpClient := &http.Client{Timeout: cfg.Backend.RequestTimeout}
	apiClient := backend.NewClient(cfg.Backend.BaseURL, httpClient)
	authClient := backend.NewClient(cfg.Backend.AuthBaseURL, httpClient)

	sessions := session.NewManager(sessionStore, cfg.JWT.SessionTTL)
	panels := panel.NewRegistry(apiClient)

	app := fiber.New(fiber.Config{
		AppName: "Admin Gateway",
	})

	app.Use(cors.New())
	app.Use(logger.New())

	authHandler := handlers.NewAuthHandler(authClient, sessions, panels, recorder, cfg.JWT.Secret, cfg.JWT.SessionTTL)
	panelHandler := handlers.NewPanelHandler(apiClient, panels, recorder)
	carsHandler := handlers.NewCarsHandler(apiClient, panelHandler)
	authMiddleware := middleware.NewAuthMiddleware(cfg.JWT.Secret, sessions)
	rateLimiter := middleware.NewRateLimiter(rateLimitStore, cfg.Server.RateLimit.Enabled)

	apiRouter := router.NewRouter(
		app,
		authHandler,
		panelHandler,
		carsHandler,
		authMiddleware,
		rateLimiter,
	)
	apiRouter.SetupRoutes()

	log.Info().Str("port", cfg.Server.Port).Msg("Admin gateway starting")
	if err := app.Listen(":" + cfg.Server.Port); err != nil {
		log.Fatal().Err(err).Msg("Failed to start server")
	}
}
