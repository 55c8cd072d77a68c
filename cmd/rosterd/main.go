package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/requestid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	transport "github.com/pverales/rosterd/adapters/fiber"
	pgxadapter "github.com/pverales/rosterd/adapters/pgx"
	"github.com/pverales/rosterd/config"
	"github.com/pverales/rosterd/core"
	"github.com/pverales/rosterd/logging"
	"github.com/pverales/rosterd/pkg/cache"
	"github.com/pverales/rosterd/pkg/crypto"
	"github.com/pverales/rosterd/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, closeLog, err := logging.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		log.Fatalf("can't initialize logger: %v", err)
	}
	defer closeLog()

	pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("failed to connect to postgres", zap.Error(err))
	}
	defer pool.Close()

	storage := pgxadapter.New(pool)

	sessionCache := cache.NewInMemoryCache(core.CacheConfig{
		TTL:     5 * time.Minute,
		MaxSize: 500,
	})
	sessions := services.NewSessionManager(
		services.SessionConfig{MaxAge: cfg.SessionTTL},
		storage,
		sessionCache,
	)
	users := services.NewUserService(storage, crypto.NewArgon2(), logger)

	app := fiber.New()
	app.Use(requestid.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"http://localhost:3000",
			"http://127.0.0.1:3000",
			"http://localhost:8000",
			"http://127.0.0.1:8000",
		},
		AllowMethods:     []string{fiber.MethodGet, fiber.MethodPost, fiber.MethodPut, fiber.MethodPatch, fiber.MethodDelete},
		AllowCredentials: true,
	}))
	app.Use(transport.RequestTimer(logger))

	adapter := transport.New(app, users, sessions, logger)
	adapter.RegisterRoutes()

	logger.Info("starting rosterd", zap.Int("port", cfg.Port))
	if err := app.Listen(fmt.Sprintf(":%d", cfg.Port)); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
