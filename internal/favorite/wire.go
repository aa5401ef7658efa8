//go:build wireinject
// +build wireinject

package favorite

import (
	"github.com/google/wire"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	httpDelivery "github.com/tair/holonet/internal/favorite/delivery/http"
	"github.com/tair/holonet/internal/favorite/domain"
	"github.com/tair/holonet/internal/favorite/usecase/command"
	"github.com/tair/holonet/internal/favorite/usecase/query"
)

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideRepository,
)

var CommandHandlerSet = wire.NewSet(
	command.NewAddFavoriteHandler,
	command.NewRemoveFavoriteHandler,
	wire.Struct(new(httpDelivery.Commands), "*"),
)

var QueryHandlerSet = wire.NewSet(
	query.NewListUsersHandler,
	query.NewGetUserFavoritesHandler,
	query.NewListPlanetsHandler,
	query.NewGetPlanetHandler,
	query.NewListCharactersHandler,
	query.NewGetCharacterHandler,
	query.NewListStarshipsHandler,
	query.NewGetStarshipHandler,
	query.NewListFansHandler,
	wire.Struct(new(httpDelivery.Queries), "*"),
)

// InitializeHTTPHandler initializes HTTP handler with all dependencies
func InitializeHTTPHandler(
	db *gorm.DB,
	cache *redis.Client,
	ttl CacheTTL,
	publisher domain.EventPublisher,
	reg prometheus.Registerer,
) (*httpDelivery.FavoriteHandler, error) {
	wire.Build(
		RepositorySet,
		CommandHandlerSet,
		QueryHandlerSet,
		httpDelivery.NewMetrics,
		httpDelivery.NewFavoriteHandler,
	)
	return nil, nil
}
