package main

import (
	"context"
	"time"

	"github.com/tair/holonet/internal/favorite/repository"
	"github.com/tair/holonet/internal/seed"
	"github.com/tair/holonet/pkg/cache"
	"github.com/tair/holonet/pkg/config"
	"github.com/tair/holonet/pkg/database"
	"github.com/tair/holonet/pkg/logger"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.ServiceName+"-seed", cfg.IsDevelopment(), cfg.LogLevel)

	fixture, err := seed.LoadFixture(cfg.SeedFixture)
	if err != nil {
		logger.Logger.Fatal().Err(err).Str("fixture", cfg.SeedFixture).Msg("Failed to load fixture")
	}

	db, err := database.NewGormConnection(cfg.Database)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to connect to database")
	}
	sqlDB, err := db.DB()
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to get database instance")
	}
	defer sqlDB.Close()

	if err := repository.NewGormRepository(db).AutoMigrate(); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to run migrations")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	stats, err := seed.Seed(ctx, db, fixture)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to seed database")
	}

	logger.Logger.Info().
		Int("planets", stats.Planets).
		Int("starships", stats.Starships).
		Int("characters", stats.Characters).
		Int("users", stats.Users).
		Msg("Seed completed")

	redisClient, err := cache.NewRedisClient(ctx, cfg.Redis)
	if err != nil {
		logger.Logger.Warn().Err(err).Msg("Skipping catalog cache invalidation")
		return
	}
	if redisClient == nil {
		return
	}
	defer redisClient.Close()

	removed, err := repository.InvalidateCatalog(ctx, redisClient)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to invalidate catalog cache")
		return
	}
	logger.Logger.Info().Int("keys", removed).Msg("Catalog cache invalidated")
}
