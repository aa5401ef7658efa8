package repository

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/tair/holonet/internal/favorite/domain"
)

var tracer = otel.Tracer("favorite-repository")

var (
	_ domain.Repository = (*GormRepository)(nil)
	_ domain.Repository = (*TracingRepository)(nil)
)

// TracingRepository wraps a repository with an OpenTelemetry span per call
type TracingRepository struct {
	next domain.Repository
}

// NewTracingRepository creates a new repository with tracing
func NewTracingRepository(next domain.Repository) *TracingRepository {
	return &TracingRepository{next: next}
}

func (r *TracingRepository) start(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return tracer.Start(ctx, "repository."+name,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attrs...),
	)
}

// end records err on the span. Not-found is an expected outcome, not a failure.
func end(span trace.Span, err error) {
	defer span.End()
	if err == nil {
		return
	}
	if errors.Is(err, domain.ErrNotFound) {
		span.SetAttributes(attribute.Bool("db.not_found", true))
		return
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}

func (r *TracingRepository) ListUsers(ctx context.Context) ([]domain.User, error) {
	ctx, span := r.start(ctx, "ListUsers")
	users, err := r.next.ListUsers(ctx)
	span.SetAttributes(attribute.Int("result.count", len(users)))
	end(span, err)
	return users, err
}

func (r *TracingRepository) FindUserByID(ctx context.Context, id uint) (*domain.User, error) {
	ctx, span := r.start(ctx, "FindUserByID", attribute.Int("user.id", int(id)))
	user, err := r.next.FindUserByID(ctx, id)
	end(span, err)
	return user, err
}

func (r *TracingRepository) ListPlanets(ctx context.Context) ([]domain.Planet, error) {
	ctx, span := r.start(ctx, "ListPlanets")
	planets, err := r.next.ListPlanets(ctx)
	span.SetAttributes(attribute.Int("result.count", len(planets)))
	end(span, err)
	return planets, err
}

func (r *TracingRepository) FindPlanetByID(ctx context.Context, id uint) (*domain.Planet, error) {
	ctx, span := r.start(ctx, "FindPlanetByID", attribute.Int("planet.id", int(id)))
	planet, err := r.next.FindPlanetByID(ctx, id)
	end(span, err)
	return planet, err
}

func (r *TracingRepository) ListCharacters(ctx context.Context) ([]domain.Character, error) {
	ctx, span := r.start(ctx, "ListCharacters")
	characters, err := r.next.ListCharacters(ctx)
	span.SetAttributes(attribute.Int("result.count", len(characters)))
	end(span, err)
	return characters, err
}

func (r *TracingRepository) FindCharacterByID(ctx context.Context, id uint) (*domain.Character, error) {
	ctx, span := r.start(ctx, "FindCharacterByID", attribute.Int("character.id", int(id)))
	character, err := r.next.FindCharacterByID(ctx, id)
	end(span, err)
	return character, err
}

func (r *TracingRepository) ListStarships(ctx context.Context) ([]domain.Starship, error) {
	ctx, span := r.start(ctx, "ListStarships")
	starships, err := r.next.ListStarships(ctx)
	span.SetAttributes(attribute.Int("result.count", len(starships)))
	end(span, err)
	return starships, err
}

func (r *TracingRepository) FindStarshipByID(ctx context.Context, id uint) (*domain.Starship, error) {
	ctx, span := r.start(ctx, "FindStarshipByID", attribute.Int("starship.id", int(id)))
	starship, err := r.next.FindStarshipByID(ctx, id)
	end(span, err)
	return starship, err
}

func (r *TracingRepository) CrewIDs(ctx context.Context, starshipIDs ...uint) (map[uint][]uint, error) {
	ctx, span := r.start(ctx, "CrewIDs", attribute.Int("query.starships", len(starshipIDs)))
	crews, err := r.next.CrewIDs(ctx, starshipIDs...)
	end(span, err)
	return crews, err
}

func (r *TracingRepository) FavoriteIDs(ctx context.Context, userIDs ...uint) (map[uint]domain.FavoriteIDs, error) {
	ctx, span := r.start(ctx, "FavoriteIDs", attribute.Int("query.users", len(userIDs)))
	favs, err := r.next.FavoriteIDs(ctx, userIDs...)
	end(span, err)
	return favs, err
}

func (r *TracingRepository) FavoritePlanetsOf(ctx context.Context, userID uint) ([]domain.Planet, error) {
	ctx, span := r.start(ctx, "FavoritePlanetsOf", attribute.Int("user.id", int(userID)))
	planets, err := r.next.FavoritePlanetsOf(ctx, userID)
	span.SetAttributes(attribute.Int("result.count", len(planets)))
	end(span, err)
	return planets, err
}

func (r *TracingRepository) FavoriteCharactersOf(ctx context.Context, userID uint) ([]domain.Character, error) {
	ctx, span := r.start(ctx, "FavoriteCharactersOf", attribute.Int("user.id", int(userID)))
	characters, err := r.next.FavoriteCharactersOf(ctx, userID)
	span.SetAttributes(attribute.Int("result.count", len(characters)))
	end(span, err)
	return characters, err
}

func (r *TracingRepository) PlanetFans(ctx context.Context, planetID uint) ([]domain.User, error) {
	ctx, span := r.start(ctx, "PlanetFans", attribute.Int("planet.id", int(planetID)))
	users, err := r.next.PlanetFans(ctx, planetID)
	span.SetAttributes(attribute.Int("result.count", len(users)))
	end(span, err)
	return users, err
}

func (r *TracingRepository) CharacterFans(ctx context.Context, characterID uint) ([]domain.User, error) {
	ctx, span := r.start(ctx, "CharacterFans", attribute.Int("character.id", int(characterID)))
	users, err := r.next.CharacterFans(ctx, characterID)
	span.SetAttributes(attribute.Int("result.count", len(users)))
	end(span, err)
	return users, err
}

func (r *TracingRepository) AddFavorite(ctx context.Context, target domain.TargetType, userID, targetID uint) (bool, error) {
	ctx, span := r.start(ctx, "AddFavorite",
		attribute.String("favorite.target", string(target)),
		attribute.Int("user.id", int(userID)),
		attribute.Int("favorite.target_id", int(targetID)),
	)
	inserted, err := r.next.AddFavorite(ctx, target, userID, targetID)
	span.SetAttributes(attribute.Bool("favorite.inserted", inserted))
	end(span, err)
	return inserted, err
}

func (r *TracingRepository) RemoveFavorite(ctx context.Context, target domain.TargetType, userID, targetID uint) (bool, error) {
	ctx, span := r.start(ctx, "RemoveFavorite",
		attribute.String("favorite.target", string(target)),
		attribute.Int("user.id", int(userID)),
		attribute.Int("favorite.target_id", int(targetID)),
	)
	removed, err := r.next.RemoveFavorite(ctx, target, userID, targetID)
	span.SetAttributes(attribute.Bool("favorite.removed", removed))
	end(span, err)
	return removed, err
}
