package favorite

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/tair/holonet/internal/favorite/domain"
	"github.com/tair/holonet/internal/favorite/repository"
)

// CacheTTL is how long catalog reads stay in Redis
type CacheTTL time.Duration

// ProvideRepository stacks the catalog cache over a traced GORM repository.
// Cache hits never reach the database and produce no repository span.
func ProvideRepository(db *gorm.DB, cache *redis.Client, ttl CacheTTL) domain.Repository {
	traced := repository.NewTracingRepository(repository.NewGormRepository(db))
	if cache == nil {
		return traced
	}
	return repository.NewCachedRepository(traced, cache, time.Duration(ttl))
}
