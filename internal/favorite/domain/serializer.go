package domain

// UserView is the public shape of a User. The password never leaves the store.
type UserView struct {
	ID                 uint   `json:"id"`
	UserName           string `json:"user_name"`
	Email              string `json:"email"`
	FavoriteCharacters []uint `json:"favorite_characters"`
	FavoritePlanets    []uint `json:"favorite_planets"`
}

// PlanetView is the public shape of a Planet
type PlanetView struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Diameter string `json:"diameter"`
	Gravity  string `json:"gravity"`
}

// CharacterView is the public shape of a Character
type CharacterView struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	BirthYear  string `json:"birth_year"`
	Gender     string `json:"gender"`
	Homeworld  uint   `json:"homeworld"`
	StarshipID uint   `json:"starship_id"`
}

// StarshipView is the public shape of a Starship
type StarshipView struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	CrewMembers []uint `json:"crew_members"`
}

// FavoritesView lists the full records a user has favorited
type FavoritesView struct {
	FavoriteCharacters []CharacterView `json:"favorite_characters"`
	FavoritePlanets    []PlanetView    `json:"favorite_planets"`
}

func SerializeUser(u User, favs FavoriteIDs) UserView {
	return UserView{
		ID:                 u.ID,
		UserName:           u.UserName,
		Email:              u.Email,
		FavoriteCharacters: nonNil(favs.Characters),
		FavoritePlanets:    nonNil(favs.Planets),
	}
}

func SerializePlanet(p Planet) PlanetView {
	return PlanetView{
		ID:       p.ID,
		Name:     p.Name,
		Diameter: p.Diameter,
		Gravity:  p.Gravity,
	}
}

func SerializeCharacter(c Character) CharacterView {
	return CharacterView{
		ID:         c.ID,
		Name:       c.Name,
		BirthYear:  c.BirthYear,
		Gender:     c.Gender,
		Homeworld:  c.Homeworld,
		StarshipID: c.StarshipID,
	}
}

func SerializeStarship(s Starship, crew []uint) StarshipView {
	return StarshipView{
		ID:          s.ID,
		Name:        s.Name,
		CrewMembers: nonNil(crew),
	}
}

// SerializePlanets maps a slice, always returning a non-nil result
func SerializePlanets(planets []Planet) []PlanetView {
	views := make([]PlanetView, 0, len(planets))
	for _, p := range planets {
		views = append(views, SerializePlanet(p))
	}
	return views
}

// SerializeCharacters maps a slice, always returning a non-nil result
func SerializeCharacters(characters []Character) []CharacterView {
	views := make([]CharacterView, 0, len(characters))
	for _, c := range characters {
		views = append(views, SerializeCharacter(c))
	}
	return views
}

// SerializeUsers maps users with their favorite ids keyed by user id
func SerializeUsers(users []User, favs map[uint]FavoriteIDs) []UserView {
	views := make([]UserView, 0, len(users))
	for _, u := range users {
		views = append(views, SerializeUser(u, favs[u.ID]))
	}
	return views
}

// SerializeStarships maps starships with their crew ids keyed by starship id
func SerializeStarships(starships []Starship, crews map[uint][]uint) []StarshipView {
	views := make([]StarshipView, 0, len(starships))
	for _, s := range starships {
		views = append(views, SerializeStarship(s, crews[s.ID]))
	}
	return views
}

func nonNil(ids []uint) []uint {
	if ids == nil {
		return []uint{}
	}
	return ids
}
