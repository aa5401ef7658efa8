package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tair/holonet/internal/activity"
	"github.com/tair/holonet/internal/favorite/domain"
	"github.com/tair/holonet/kafka"
	"github.com/tair/holonet/pkg/cache"
	"github.com/tair/holonet/pkg/config"
	"github.com/tair/holonet/pkg/logger"
	"github.com/tair/holonet/pkg/tracing"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.ServiceName+"-activity", cfg.IsDevelopment(), cfg.LogLevel)

	if len(cfg.KafkaBrokers) == 0 {
		logger.Logger.Fatal().Msg("KAFKA_BROKERS is required")
	}

	if cfg.TracingEnabled {
		tp, err := tracing.InitTracer(cfg.ServiceName+"-activity", cfg.JaegerEndpoint)
		if err != nil {
			logger.Logger.Error().Err(err).Msg("Failed to initialize tracer")
		} else {
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := tracing.Shutdown(ctx, tp); err != nil {
					logger.Logger.Error().Err(err).Msg("Failed to shutdown tracer")
				}
			}()
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	redisClient, err := cache.NewRedisClient(ctx, cfg.Redis)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	if redisClient == nil {
		logger.Logger.Fatal().Msg("REDIS_ADDR is required")
	}
	defer redisClient.Close()

	tally := activity.NewTally(redisClient)

	consumer, err := kafka.NewConsumer(cfg.KafkaBrokers, cfg.ServiceName+"-activity", kafka.TopicFavoriteChanged)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to create consumer")
	}
	defer consumer.Close()

	consumer.RegisterHandler(kafka.EventTypeFavoriteChanged, tally.Record)

	go reportTop(ctx, tally, time.Minute)

	if err := consumer.Run(ctx); err != nil {
		logger.Logger.Error().Err(err).Msg("Consumer stopped")
	}
	logger.Logger.Info().Msg("Activity worker stopped")
}

// reportTop logs the five most favorited planets and characters every interval
func reportTop(ctx context.Context, tally *activity.Tally, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			for _, target := range []domain.TargetType{domain.TargetPlanet, domain.TargetCharacter} {
				top, err := tally.Top(ctx, target, 5)
				if err != nil {
					logger.Warn(ctx).Err(err).Str("target", string(target)).Msg("Failed to read popularity")
					continue
				}
				for rank, entry := range top {
					logger.Info(ctx).
						Str("target", string(target)).
						Int("rank", rank+1).
						Uint("target_id", entry.TargetID).
						Int64("fans", entry.Fans).
						Msg("Popular favorite")
				}
			}
		}
	}
}
