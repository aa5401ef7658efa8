package domain

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerializeUser_NeverExposesPassword(t *testing.T) {
	user := User{ID: 7, UserName: "luke", Email: "luke@rebellion.org", Password: "$2a$10$secret", IsActive: true}

	body, err := json.Marshal(SerializeUser(user, FavoriteIDs{Planets: []uint{1}}))
	require.NoError(t, err)

	var fields map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &fields))

	assert.NotContains(t, fields, "password")
	assert.NotContains(t, string(body), "secret")
	assert.Equal(t, "luke", fields["user_name"])
	assert.Equal(t, []interface{}{float64(1)}, fields["favorite_planets"])
}

func TestSerializeUser_EmptyFavoritesAreArrays(t *testing.T) {
	body, err := json.Marshal(SerializeUser(User{ID: 1, UserName: "leia"}, FavoriteIDs{}))
	require.NoError(t, err)

	assert.JSONEq(t,
		`{"id":1,"user_name":"leia","email":"","favorite_characters":[],"favorite_planets":[]}`,
		string(body),
	)
}

func TestSerializeCollections_NeverNil(t *testing.T) {
	assert.NotNil(t, SerializePlanets(nil))
	assert.NotNil(t, SerializeCharacters(nil))
	assert.NotNil(t, SerializeUsers(nil, nil))
	assert.NotNil(t, SerializeStarships(nil, nil))

	body, err := json.Marshal(FavoritesView{
		FavoriteCharacters: SerializeCharacters(nil),
		FavoritePlanets:    SerializePlanets(nil),
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"favorite_characters":[],"favorite_planets":[]}`, string(body))
}

func TestSerializeUsers_AttachesFavoritesByID(t *testing.T) {
	users := []User{{ID: 1, UserName: "luke"}, {ID: 2, UserName: "leia"}}
	favs := map[uint]FavoriteIDs{
		2: {Characters: []uint{3, 4}, Planets: []uint{2}},
	}

	views := SerializeUsers(users, favs)
	require.Len(t, views, 2)

	assert.Empty(t, views[0].FavoriteCharacters)
	assert.Empty(t, views[0].FavoritePlanets)
	assert.Equal(t, []uint{3, 4}, views[1].FavoriteCharacters)
	assert.Equal(t, []uint{2}, views[1].FavoritePlanets)
}

func TestSerializeCharacter(t *testing.T) {
	view := SerializeCharacter(Character{
		ID: 1, Name: "Han Solo", BirthYear: "29BBY", Gender: "male", Homeworld: 3, StarshipID: 2,
		HomeworldPlanet: &Planet{ID: 3, Name: "Corellia"},
	})

	body, err := json.Marshal(view)
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"id":1,"name":"Han Solo","birth_year":"29BBY","gender":"male","homeworld":3,"starship_id":2}`,
		string(body),
	)
}

func TestSerializeStarships_CrewByStarship(t *testing.T) {
	views := SerializeStarships(
		[]Starship{{ID: 1, Name: "X-wing"}, {ID: 2, Name: "Millennium Falcon"}},
		map[uint][]uint{2: {2, 3}},
	)

	require.Len(t, views, 2)
	assert.Equal(t, []uint{}, views[0].CrewMembers)
	assert.Equal(t, []uint{2, 3}, views[1].CrewMembers)
}

func TestFavoriteStatus_Changed(t *testing.T) {
	tests := []struct {
		status  FavoriteStatus
		changed bool
	}{
		{StatusAdded, true},
		{StatusRemoved, true},
		{StatusAlreadyFavorited, false},
		{StatusNotFavorited, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.changed, tt.status.Changed())
		})
	}
}

func TestTargetType_Valid(t *testing.T) {
	assert.True(t, TargetPlanet.Valid())
	assert.True(t, TargetCharacter.Valid())
	assert.False(t, TargetType("starship").Valid())
	assert.False(t, TargetType("").Valid())
}

func TestNotFoundErrors(t *testing.T) {
	for _, err := range []error{ErrUserNotFound, ErrPlanetNotFound, ErrCharacterNotFound, ErrStarshipNotFound} {
		assert.True(t, errors.Is(err, ErrNotFound), err.Error())
	}
	assert.Equal(t, ErrPlanetNotFound, TargetNotFound(TargetPlanet))
	assert.Equal(t, ErrCharacterNotFound, TargetNotFound(TargetCharacter))
	assert.False(t, errors.Is(ErrInvalidInput, ErrNotFound))
}
