package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	_ "github.com/worldwise/trip-planner-api/docs"
	"github.com/worldwise/trip-planner-api/internal/api"
	"github.com/worldwise/trip-planner-api/internal/infrastructure/config"
	mongodb "github.com/worldwise/trip-planner-api/internal/infrastructure/db/mongo"
	redisdb "github.com/worldwise/trip-planner-api/internal/infrastructure/db/redis"
	"github.com/worldwise/trip-planner-api/pkg/logger"
)

// @title           Worldwise Trip Planner API
// @version         1.0
// @description     User accounts and per-user travel records (cities, plans).
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in              header
// @name            Authorization
func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: cfg.IsDevelopment()})

	// Without the signing secret every issued token would be forgeable.
	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}

	users := mongodb.NewUserRepository(db)
	cities := mongodb.NewPlaceRepository(db, "cities")
	plans := mongodb.NewPlaceRepository(db, "plans")

	if err := users.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("users index creation failed")
	}
	if err := cities.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("cities index creation failed")
	}
	if err := plans.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("plans index creation failed")
	}

	repos := api.Repositories{Users: users, Cities: cities, Plans: plans}

	e, err := api.NewRouter(cfg, repos, db, rdb, log)
	if err != nil {
		log.Fatal().Err(err).Msg("router setup failed")
	}

	if cfg.PurgeInterval > 0 {
		go runPurge(ctx, cfg.PurgeInterval, repos, log)
	}

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
	if err := client.Disconnect(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("mongodb disconnect failed")
	}
	_ = rdb.Close()
	log.Info().Msg("bye")
}

// runPurge wipes all cities and plans on a fixed interval so a shared demo
// instance resets itself.
func runPurge(ctx context.Context, interval time.Duration, repos api.Repositories, log zerolog.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cities, err := repos.Cities.DeleteAll(ctx)
			if err != nil {
				log.Error().Err(err).Msg("purge of cities failed")
				continue
			}
			plans, err := repos.Plans.DeleteAll(ctx)
			if err != nil {
				log.Error().Err(err).Msg("purge of plans failed")
				continue
			}
			log.Info().Int64("cities", cities).Int64("plans", plans).Msg("purged all travel records")
		}
	}
}
