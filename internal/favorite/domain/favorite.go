package domain

import (
	"context"
	"errors"
	"fmt"
)

// TargetType names the entity type on the far side of a favorite relation
type TargetType string

const (
	TargetPlanet    TargetType = "planet"
	TargetCharacter TargetType = "character"
)

// Valid reports whether t is a known favorite target
func (t TargetType) Valid() bool {
	return t == TargetPlanet || t == TargetCharacter
}

// FavoriteStatus is the outcome of a favorite toggle
type FavoriteStatus string

const (
	StatusAdded            FavoriteStatus = "added"
	StatusAlreadyFavorited FavoriteStatus = "already favorited"
	StatusRemoved          FavoriteStatus = "removed"
	StatusNotFavorited     FavoriteStatus = "not favorited"
)

// Changed reports whether the toggle mutated the join table
func (s FavoriteStatus) Changed() bool {
	return s == StatusAdded || s == StatusRemoved
}

// Errors
var (
	ErrNotFound          = errors.New("not found")
	ErrUserNotFound      = fmt.Errorf("user %w", ErrNotFound)
	ErrPlanetNotFound    = fmt.Errorf("planet %w", ErrNotFound)
	ErrCharacterNotFound = fmt.Errorf("character %w", ErrNotFound)
	ErrStarshipNotFound  = fmt.Errorf("starship %w", ErrNotFound)

	ErrInvalidInput = errors.New("invalid input")
)

// TargetNotFound returns the not-found error for a target type
func TargetNotFound(t TargetType) error {
	if t == TargetCharacter {
		return ErrCharacterNotFound
	}
	return ErrPlanetNotFound
}

// Repository defines the contract for catalog and favorites data access.
// List methods return records in insertion order.
type Repository interface {
	ListUsers(ctx context.Context) ([]User, error)
	FindUserByID(ctx context.Context, id uint) (*User, error)

	ListPlanets(ctx context.Context) ([]Planet, error)
	FindPlanetByID(ctx context.Context, id uint) (*Planet, error)

	ListCharacters(ctx context.Context) ([]Character, error)
	FindCharacterByID(ctx context.Context, id uint) (*Character, error)

	ListStarships(ctx context.Context) ([]Starship, error)
	FindStarshipByID(ctx context.Context, id uint) (*Starship, error)

	// CrewIDs maps each starship id to the ids of its crew
	CrewIDs(ctx context.Context, starshipIDs ...uint) (map[uint][]uint, error)

	// FavoriteIDs maps each user id to the ids it has favorited
	FavoriteIDs(ctx context.Context, userIDs ...uint) (map[uint]FavoriteIDs, error)
	FavoritePlanetsOf(ctx context.Context, userID uint) ([]Planet, error)
	FavoriteCharactersOf(ctx context.Context, userID uint) ([]Character, error)
	PlanetFans(ctx context.Context, planetID uint) ([]User, error)
	CharacterFans(ctx context.Context, characterID uint) ([]User, error)

	// AddFavorite inserts the pair and reports whether a row was written
	AddFavorite(ctx context.Context, target TargetType, userID, targetID uint) (bool, error)
	// RemoveFavorite deletes the pair and reports whether a row was removed
	RemoveFavorite(ctx context.Context, target TargetType, userID, targetID uint) (bool, error)
}

// FavoriteChange describes a committed favorite mutation
type FavoriteChange struct {
	UserID   uint
	Target   TargetType
	TargetID uint
	Status   FavoriteStatus
}

// EventPublisher announces committed favorite mutations
type EventPublisher interface {
	PublishFavoriteChanged(ctx context.Context, change FavoriteChange) error
}
