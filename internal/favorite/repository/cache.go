package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tair/holonet/internal/favorite/domain"
	"github.com/tair/holonet/pkg/logger"
)

// CatalogKeyPrefix prefixes every cached catalog entry
const CatalogKeyPrefix = "holonet:catalog:"

// CachedRepository serves catalog reads (planets, characters, starships)
// from Redis. Users and favorites always go to the wrapped repository.
// The catalog only changes through the seed tool, which calls
// InvalidateCatalog afterwards.
type CachedRepository struct {
	domain.Repository
	client *redis.Client
	ttl    time.Duration
}

// NewCachedRepository wraps next. A nil client disables caching.
func NewCachedRepository(next domain.Repository, client *redis.Client, ttl time.Duration) *CachedRepository {
	return &CachedRepository{Repository: next, client: client, ttl: ttl}
}

func (r *CachedRepository) ListPlanets(ctx context.Context) ([]domain.Planet, error) {
	return readThrough(ctx, r, "planets", func() ([]domain.Planet, error) {
		return r.Repository.ListPlanets(ctx)
	})
}

func (r *CachedRepository) FindPlanetByID(ctx context.Context, id uint) (*domain.Planet, error) {
	return readThrough(ctx, r, fmt.Sprintf("planet:%d", id), func() (*domain.Planet, error) {
		return r.Repository.FindPlanetByID(ctx, id)
	})
}

func (r *CachedRepository) ListCharacters(ctx context.Context) ([]domain.Character, error) {
	return readThrough(ctx, r, "characters", func() ([]domain.Character, error) {
		return r.Repository.ListCharacters(ctx)
	})
}

func (r *CachedRepository) FindCharacterByID(ctx context.Context, id uint) (*domain.Character, error) {
	return readThrough(ctx, r, fmt.Sprintf("character:%d", id), func() (*domain.Character, error) {
		return r.Repository.FindCharacterByID(ctx, id)
	})
}

func (r *CachedRepository) ListStarships(ctx context.Context) ([]domain.Starship, error) {
	return readThrough(ctx, r, "starships", func() ([]domain.Starship, error) {
		return r.Repository.ListStarships(ctx)
	})
}

func (r *CachedRepository) FindStarshipByID(ctx context.Context, id uint) (*domain.Starship, error) {
	return readThrough(ctx, r, fmt.Sprintf("starship:%d", id), func() (*domain.Starship, error) {
		return r.Repository.FindStarshipByID(ctx, id)
	})
}

// readThrough returns the cached value for key or loads and stores it.
// Redis failures degrade to a plain load; load errors are never cached.
func readThrough[T any](ctx context.Context, r *CachedRepository, key string, load func() (T, error)) (T, error) {
	if r.client == nil {
		return load()
	}

	key = CatalogKeyPrefix + key
	if cached, err := r.client.Get(ctx, key).Bytes(); err == nil {
		var value T
		if err := json.Unmarshal(cached, &value); err == nil {
			logger.Debug(ctx).Str("cache_key", key).Msg("Cache hit")
			return value, nil
		}
	} else if !errors.Is(err, redis.Nil) {
		logger.Warn(ctx).Err(err).Str("cache_key", key).Msg("Cache read failed")
	}

	value, err := load()
	if err != nil {
		return value, err
	}

	payload, err := json.Marshal(value)
	if err != nil {
		return value, nil
	}
	if err := r.client.Set(ctx, key, payload, r.ttl).Err(); err != nil {
		logger.Warn(ctx).Err(err).Str("cache_key", key).Msg("Failed to cache catalog entry")
	}
	return value, nil
}

// InvalidateCatalog drops every cached catalog entry
func InvalidateCatalog(ctx context.Context, client *redis.Client) (int, error) {
	if client == nil {
		return 0, nil
	}

	iter := client.Scan(ctx, 0, CatalogKeyPrefix+"*", 0).Iterator()

	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return 0, fmt.Errorf("failed to scan catalog keys: %w", err)
	}

	if len(keys) > 0 {
		if err := client.Del(ctx, keys...).Err(); err != nil {
			return 0, fmt.Errorf("failed to delete catalog keys: %w", err)
		}
	}
	return len(keys), nil
}
