package query

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/holonet/internal/favorite/domain"
	"github.com/tair/holonet/internal/favorite/repository"
	"github.com/tair/holonet/internal/testutil"
)

func setup(t *testing.T) (domain.Repository, testutil.Catalog) {
	t.Helper()
	db := testutil.NewDB(t)
	catalog := testutil.SeedCatalog(t, db)
	return repository.NewGormRepository(db), catalog
}

func favorite(t *testing.T, repo domain.Repository, target domain.TargetType, userID, targetID uint) {
	t.Helper()
	_, err := repo.AddFavorite(context.Background(), target, userID, targetID)
	require.NoError(t, err)
}

func TestListUsers_WithFavoriteIDs(t *testing.T) {
	repo, c := setup(t)
	favorite(t, repo, domain.TargetCharacter, c.Luke.ID, c.Organa.ID)
	favorite(t, repo, domain.TargetPlanet, c.Luke.ID, c.Tatooine.ID)

	users, err := NewListUsersHandler(repo).Handle(context.Background(), ListUsersQuery{})
	require.NoError(t, err)
	require.Len(t, users, 2)

	assert.Equal(t, "luke", users[0].UserName)
	assert.Equal(t, []uint{c.Organa.ID}, users[0].FavoriteCharacters)
	assert.Equal(t, []uint{c.Tatooine.ID}, users[0].FavoritePlanets)
	assert.Equal(t, []uint{}, users[1].FavoriteCharacters)
	assert.Equal(t, []uint{}, users[1].FavoritePlanets)
}

func TestListUsers_Empty(t *testing.T) {
	repo := repository.NewGormRepository(testutil.NewDB(t))

	users, err := NewListUsersHandler(repo).Handle(context.Background(), ListUsersQuery{})
	require.NoError(t, err)
	assert.NotNil(t, users)
	assert.Empty(t, users)
}

func TestGetUserFavorites(t *testing.T) {
	repo, c := setup(t)
	favorite(t, repo, domain.TargetPlanet, c.Leia.ID, c.Alderaan.ID)
	favorite(t, repo, domain.TargetCharacter, c.Leia.ID, c.Solo.ID)

	h := NewGetUserFavoritesHandler(repo)

	t.Run("with favorites", func(t *testing.T) {
		favs, err := h.Handle(context.Background(), GetUserFavoritesQuery{UserID: c.Leia.ID})
		require.NoError(t, err)
		require.Len(t, favs.FavoritePlanets, 1)
		require.Len(t, favs.FavoriteCharacters, 1)
		assert.Equal(t, "Alderaan", favs.FavoritePlanets[0].Name)
		assert.Equal(t, "Han Solo", favs.FavoriteCharacters[0].Name)
	})

	t.Run("without favorites", func(t *testing.T) {
		favs, err := h.Handle(context.Background(), GetUserFavoritesQuery{UserID: c.Luke.ID})
		require.NoError(t, err)
		assert.Equal(t, []domain.PlanetView{}, favs.FavoritePlanets)
		assert.Equal(t, []domain.CharacterView{}, favs.FavoriteCharacters)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := h.Handle(context.Background(), GetUserFavoritesQuery{UserID: 999})
		assert.ErrorIs(t, err, domain.ErrUserNotFound)

		_, err = h.Handle(context.Background(), GetUserFavoritesQuery{})
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})
}

func TestPlanetQueries(t *testing.T) {
	repo, c := setup(t)

	planets, err := NewListPlanetsHandler(repo).Handle(context.Background(), ListPlanetsQuery{})
	require.NoError(t, err)
	assert.Len(t, planets, 3)

	planet, err := NewGetPlanetHandler(repo).Handle(context.Background(), GetPlanetQuery{ID: c.Alderaan.ID})
	require.NoError(t, err)
	assert.Equal(t, domain.PlanetView{ID: c.Alderaan.ID, Name: "Alderaan", Diameter: "12500", Gravity: "1 standard"}, *planet)

	_, err = NewGetPlanetHandler(repo).Handle(context.Background(), GetPlanetQuery{ID: 999})
	assert.ErrorIs(t, err, domain.ErrPlanetNotFound)
}

func TestCharacterQueries(t *testing.T) {
	repo, c := setup(t)

	people, err := NewListCharactersHandler(repo).Handle(context.Background(), ListCharactersQuery{})
	require.NoError(t, err)
	require.Len(t, people, 3)
	assert.Equal(t, "Luke Skywalker", people[0].Name)

	person, err := NewGetCharacterHandler(repo).Handle(context.Background(), GetCharacterQuery{ID: c.Solo.ID})
	require.NoError(t, err)
	assert.Equal(t, c.Tatooine.ID, person.Homeworld)
	assert.Equal(t, c.Falcon.ID, person.StarshipID)

	_, err = NewGetCharacterHandler(repo).Handle(context.Background(), GetCharacterQuery{})
	assert.ErrorIs(t, err, domain.ErrCharacterNotFound)
}

func TestStarshipQueries(t *testing.T) {
	repo, c := setup(t)

	starships, err := NewListStarshipsHandler(repo).Handle(context.Background(), ListStarshipsQuery{})
	require.NoError(t, err)
	require.Len(t, starships, 2)
	assert.Equal(t, []uint{c.Skywalker.ID}, starships[0].CrewMembers)
	assert.Equal(t, []uint{c.Organa.ID, c.Solo.ID}, starships[1].CrewMembers)

	falcon, err := NewGetStarshipHandler(repo).Handle(context.Background(), GetStarshipQuery{ID: c.Falcon.ID})
	require.NoError(t, err)
	assert.Equal(t, "Millennium Falcon", falcon.Name)
	assert.Len(t, falcon.CrewMembers, 2)

	_, err = NewGetStarshipHandler(repo).Handle(context.Background(), GetStarshipQuery{ID: 999})
	assert.ErrorIs(t, err, domain.ErrStarshipNotFound)
}

func TestListFans(t *testing.T) {
	repo, c := setup(t)
	favorite(t, repo, domain.TargetPlanet, c.Luke.ID, c.Tatooine.ID)
	favorite(t, repo, domain.TargetPlanet, c.Leia.ID, c.Tatooine.ID)
	favorite(t, repo, domain.TargetCharacter, c.Leia.ID, c.Solo.ID)

	h := NewListFansHandler(repo)

	fans, err := h.Handle(context.Background(), ListFansQuery{Target: domain.TargetPlanet, TargetID: c.Tatooine.ID})
	require.NoError(t, err)
	require.Len(t, fans, 2)
	assert.Equal(t, []uint{c.Tatooine.ID}, fans[1].FavoritePlanets)
	assert.Equal(t, []uint{c.Solo.ID}, fans[1].FavoriteCharacters)

	fans, err = h.Handle(context.Background(), ListFansQuery{Target: domain.TargetPlanet, TargetID: c.Hoth.ID})
	require.NoError(t, err)
	assert.Empty(t, fans)

	fans, err = h.Handle(context.Background(), ListFansQuery{Target: domain.TargetCharacter, TargetID: c.Solo.ID})
	require.NoError(t, err)
	require.Len(t, fans, 1)
	assert.Equal(t, "leia", fans[0].UserName)

	_, err = h.Handle(context.Background(), ListFansQuery{Target: domain.TargetCharacter, TargetID: 999})
	assert.ErrorIs(t, err, domain.ErrCharacterNotFound)

	_, err = h.Handle(context.Background(), ListFansQuery{Target: "starship", TargetID: 1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
