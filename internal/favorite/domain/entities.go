package domain

// User represents an API user. Favorites are not embedded; they live in the
// join tables and are fetched through the repository.
type User struct {
	ID       uint   `gorm:"primaryKey"`
	UserName string `gorm:"size:120;uniqueIndex;not null"`
	Email    string `gorm:"size:120;uniqueIndex;not null"`
	Password string `gorm:"not null"` // bcrypt hash, never serialized
	IsActive bool   `gorm:"not null"`
}

// TableName specifies the table name
func (User) TableName() string {
	return "users"
}

// Planet represents a catalog planet
type Planet struct {
	ID       uint   `gorm:"primaryKey"`
	Name     string `gorm:"size:120;uniqueIndex;not null"`
	Diameter string `gorm:"size:120;not null"`
	Gravity  string `gorm:"size:120;not null"`
}

// TableName specifies the table name
func (Planet) TableName() string {
	return "planets"
}

// Starship represents a catalog starship. Its crew is every Character whose
// StarshipID points at it.
type Starship struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"size:120;uniqueIndex;not null"`
}

// TableName specifies the table name
func (Starship) TableName() string {
	return "starships"
}

// Character represents a catalog character.
//
// HomeworldPlanet and Starship exist only so that migrations emit the foreign
// key constraints; they are never preloaded.
type Character struct {
	ID         uint   `gorm:"primaryKey"`
	Name       string `gorm:"size:120;uniqueIndex;not null"`
	BirthYear  string `gorm:"size:120;not null"`
	Gender     string `gorm:"size:120;not null"`
	Homeworld  uint   `gorm:"not null;index"`
	StarshipID uint   `gorm:"not null;index"`

	HomeworldPlanet *Planet   `gorm:"foreignKey:Homeworld;constraint:OnUpdate:RESTRICT,OnDelete:RESTRICT"`
	Starship        *Starship `gorm:"foreignKey:StarshipID;constraint:OnUpdate:RESTRICT,OnDelete:RESTRICT"`
}

// TableName specifies the table name
func (Character) TableName() string {
	return "characters"
}

// FavoritePlanet is one "user favorited planet" membership fact
type FavoritePlanet struct {
	UserID   uint `gorm:"primaryKey;autoIncrement:false"`
	PlanetID uint `gorm:"primaryKey;autoIncrement:false;index"`

	User   *User   `gorm:"foreignKey:UserID;constraint:OnDelete:RESTRICT"`
	Planet *Planet `gorm:"foreignKey:PlanetID;constraint:OnDelete:RESTRICT"`
}

// TableName specifies the table name
func (FavoritePlanet) TableName() string {
	return "user_favorite_planet"
}

// FavoriteCharacter is one "user favorited character" membership fact
type FavoriteCharacter struct {
	UserID      uint `gorm:"primaryKey;autoIncrement:false"`
	CharacterID uint `gorm:"primaryKey;autoIncrement:false;index"`

	User      *User      `gorm:"foreignKey:UserID;constraint:OnDelete:RESTRICT"`
	Character *Character `gorm:"foreignKey:CharacterID;constraint:OnDelete:RESTRICT"`
}

// TableName specifies the table name
func (FavoriteCharacter) TableName() string {
	return "user_favorite_character"
}

// Models lists every table in migration order
func Models() []interface{} {
	return []interface{}{
		&User{},
		&Planet{},
		&Starship{},
		&Character{},
		&FavoritePlanet{},
		&FavoriteCharacter{},
	}
}

// FavoriteIDs holds the ids a single user has favorited
type FavoriteIDs struct {
	Characters []uint
	Planets    []uint
}
