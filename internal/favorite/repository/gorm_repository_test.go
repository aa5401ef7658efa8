package repository

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/holonet/internal/favorite/domain"
	"github.com/tair/holonet/internal/testutil"
)

func newRepo(t *testing.T) (*GormRepository, testutil.Catalog) {
	t.Helper()
	db := testutil.NewDB(t)
	return NewGormRepository(db), testutil.SeedCatalog(t, db)
}

func TestGormRepository_ListsInInsertionOrder(t *testing.T) {
	repo, c := newRepo(t)
	ctx := context.Background()

	planets, err := repo.ListPlanets(ctx)
	require.NoError(t, err)
	require.Len(t, planets, 3)
	assert.Equal(t, []string{"Tatooine", "Alderaan", "Hoth"}, []string{planets[0].Name, planets[1].Name, planets[2].Name})

	characters, err := repo.ListCharacters(ctx)
	require.NoError(t, err)
	require.Len(t, characters, 3)
	assert.Equal(t, c.Skywalker.ID, characters[0].ID)
	assert.Equal(t, c.Tatooine.ID, characters[0].Homeworld)

	users, err := repo.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "luke", users[0].UserName)

	starships, err := repo.ListStarships(ctx)
	require.NoError(t, err)
	assert.Len(t, starships, 2)
}

func TestGormRepository_FindNotFound(t *testing.T) {
	repo, _ := newRepo(t)
	ctx := context.Background()

	_, err := repo.FindUserByID(ctx, 999)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	_, err = repo.FindPlanetByID(ctx, 999)
	assert.ErrorIs(t, err, domain.ErrPlanetNotFound)

	_, err = repo.FindCharacterByID(ctx, 999)
	assert.ErrorIs(t, err, domain.ErrCharacterNotFound)

	_, err = repo.FindStarshipByID(ctx, 999)
	assert.ErrorIs(t, err, domain.ErrStarshipNotFound)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestGormRepository_FindByID(t *testing.T) {
	repo, c := newRepo(t)

	planet, err := repo.FindPlanetByID(context.Background(), c.Hoth.ID)
	require.NoError(t, err)
	assert.Equal(t, "Hoth", planet.Name)
	assert.Equal(t, "1.1 standard", planet.Gravity)
}

func TestGormRepository_AddFavoriteIsIdempotent(t *testing.T) {
	repo, c := newRepo(t)
	ctx := context.Background()

	for _, target := range []struct {
		kind domain.TargetType
		id   uint
	}{
		{domain.TargetPlanet, c.Tatooine.ID},
		{domain.TargetCharacter, c.Solo.ID},
	} {
		t.Run(string(target.kind), func(t *testing.T) {
			inserted, err := repo.AddFavorite(ctx, target.kind, c.Luke.ID, target.id)
			require.NoError(t, err)
			assert.True(t, inserted)

			inserted, err = repo.AddFavorite(ctx, target.kind, c.Luke.ID, target.id)
			require.NoError(t, err)
			assert.False(t, inserted)
		})
	}

	favs, err := repo.FavoriteIDs(ctx, c.Luke.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint{c.Tatooine.ID}, favs[c.Luke.ID].Planets)
	assert.Equal(t, []uint{c.Solo.ID}, favs[c.Luke.ID].Characters)
}

func TestGormRepository_RemoveFavoriteIsIdempotent(t *testing.T) {
	repo, c := newRepo(t)
	ctx := context.Background()

	removed, err := repo.RemoveFavorite(ctx, domain.TargetPlanet, c.Luke.ID, c.Hoth.ID)
	require.NoError(t, err)
	assert.False(t, removed)

	_, err = repo.AddFavorite(ctx, domain.TargetPlanet, c.Luke.ID, c.Hoth.ID)
	require.NoError(t, err)

	removed, err = repo.RemoveFavorite(ctx, domain.TargetPlanet, c.Luke.ID, c.Hoth.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = repo.RemoveFavorite(ctx, domain.TargetPlanet, c.Luke.ID, c.Hoth.ID)
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestGormRepository_RemoveOnlyTouchesOnePair(t *testing.T) {
	repo, c := newRepo(t)
	ctx := context.Background()

	_, err := repo.AddFavorite(ctx, domain.TargetCharacter, c.Luke.ID, c.Organa.ID)
	require.NoError(t, err)
	_, err = repo.AddFavorite(ctx, domain.TargetCharacter, c.Leia.ID, c.Organa.ID)
	require.NoError(t, err)
	_, err = repo.AddFavorite(ctx, domain.TargetPlanet, c.Luke.ID, c.Organa.ID)
	require.NoError(t, err)

	removed, err := repo.RemoveFavorite(ctx, domain.TargetCharacter, c.Luke.ID, c.Organa.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	fans, err := repo.CharacterFans(ctx, c.Organa.ID)
	require.NoError(t, err)
	require.Len(t, fans, 1)
	assert.Equal(t, c.Leia.ID, fans[0].ID)

	planets, err := repo.FavoritePlanetsOf(ctx, c.Luke.ID)
	require.NoError(t, err)
	assert.Len(t, planets, 1)
}

func TestGormRepository_ConcurrentAddsInsertOnce(t *testing.T) {
	repo, c := newRepo(t)
	ctx := context.Background()

	const workers = 8
	results := make(chan bool, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			inserted, err := repo.AddFavorite(ctx, domain.TargetPlanet, c.Leia.ID, c.Alderaan.ID)
			assert.NoError(t, err)
			results <- inserted
		}()
	}
	wg.Wait()
	close(results)

	count := 0
	for inserted := range results {
		if inserted {
			count++
		}
	}
	assert.Equal(t, 1, count)

	fans, err := repo.PlanetFans(ctx, c.Alderaan.ID)
	require.NoError(t, err)
	assert.Len(t, fans, 1)
}

func TestGormRepository_UnknownTarget(t *testing.T) {
	repo, c := newRepo(t)

	_, err := repo.AddFavorite(context.Background(), domain.TargetType("starship"), c.Luke.ID, c.XWing.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = repo.RemoveFavorite(context.Background(), domain.TargetType("starship"), c.Luke.ID, c.XWing.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestGormRepository_FavoritesAndFans(t *testing.T) {
	repo, c := newRepo(t)
	ctx := context.Background()

	_, err := repo.AddFavorite(ctx, domain.TargetPlanet, c.Luke.ID, c.Hoth.ID)
	require.NoError(t, err)
	_, err = repo.AddFavorite(ctx, domain.TargetPlanet, c.Luke.ID, c.Tatooine.ID)
	require.NoError(t, err)
	_, err = repo.AddFavorite(ctx, domain.TargetPlanet, c.Leia.ID, c.Tatooine.ID)
	require.NoError(t, err)
	_, err = repo.AddFavorite(ctx, domain.TargetCharacter, c.Leia.ID, c.Solo.ID)
	require.NoError(t, err)

	planets, err := repo.FavoritePlanetsOf(ctx, c.Luke.ID)
	require.NoError(t, err)
	require.Len(t, planets, 2)
	assert.Equal(t, c.Tatooine.ID, planets[0].ID)
	assert.Equal(t, c.Hoth.ID, planets[1].ID)

	characters, err := repo.FavoriteCharactersOf(ctx, c.Luke.ID)
	require.NoError(t, err)
	assert.Empty(t, characters)

	fans, err := repo.PlanetFans(ctx, c.Tatooine.ID)
	require.NoError(t, err)
	require.Len(t, fans, 2)
	assert.Equal(t, c.Luke.ID, fans[0].ID)
	assert.Equal(t, c.Leia.ID, fans[1].ID)

	favs, err := repo.FavoriteIDs(ctx, c.Luke.ID, c.Leia.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint{c.Tatooine.ID, c.Hoth.ID}, favs[c.Luke.ID].Planets)
	assert.Empty(t, favs[c.Luke.ID].Characters)
	assert.Equal(t, []uint{c.Tatooine.ID}, favs[c.Leia.ID].Planets)
	assert.Equal(t, []uint{c.Solo.ID}, favs[c.Leia.ID].Characters)

	empty, err := repo.FavoriteIDs(ctx)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestGormRepository_CrewIDs(t *testing.T) {
	repo, c := newRepo(t)

	crews, err := repo.CrewIDs(context.Background(), c.XWing.ID, c.Falcon.ID)
	require.NoError(t, err)

	assert.Equal(t, []uint{c.Skywalker.ID}, crews[c.XWing.ID])
	assert.Equal(t, []uint{c.Organa.ID, c.Solo.ID}, crews[c.Falcon.ID])
}

func TestTracingRepository_PassesThrough(t *testing.T) {
	repo, c := newRepo(t)
	traced := NewTracingRepository(repo)
	ctx := context.Background()

	inserted, err := traced.AddFavorite(ctx, domain.TargetPlanet, c.Luke.ID, c.Hoth.ID)
	require.NoError(t, err)
	assert.True(t, inserted)

	_, err = traced.FindPlanetByID(ctx, 999)
	assert.ErrorIs(t, err, domain.ErrPlanetNotFound)

	fans, err := traced.PlanetFans(ctx, c.Hoth.ID)
	require.NoError(t, err)
	assert.Len(t, fans, 1)
}
