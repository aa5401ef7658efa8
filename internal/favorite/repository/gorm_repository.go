package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tair/holonet/internal/favorite/domain"
)

// GormRepository implements domain.Repository using GORM
type GormRepository struct {
	db *gorm.DB
}

// NewGormRepository creates a new GORM repository
func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

// AutoMigrate creates or updates the six tables
func (r *GormRepository) AutoMigrate() error {
	return r.db.AutoMigrate(domain.Models()...)
}

// ListUsers retrieves all users in insertion order
func (r *GormRepository) ListUsers(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// FindUserByID retrieves a user by ID
func (r *GormRepository) FindUserByID(ctx context.Context, id uint) (*domain.User, error) {
	var user domain.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, notFound(err, domain.ErrUserNotFound, "user")
	}
	return &user, nil
}

// ListPlanets retrieves all planets in insertion order
func (r *GormRepository) ListPlanets(ctx context.Context) ([]domain.Planet, error) {
	var planets []domain.Planet
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&planets).Error; err != nil {
		return nil, fmt.Errorf("failed to list planets: %w", err)
	}
	return planets, nil
}

// FindPlanetByID retrieves a planet by ID
func (r *GormRepository) FindPlanetByID(ctx context.Context, id uint) (*domain.Planet, error) {
	var planet domain.Planet
	if err := r.db.WithContext(ctx).First(&planet, id).Error; err != nil {
		return nil, notFound(err, domain.ErrPlanetNotFound, "planet")
	}
	return &planet, nil
}

// ListCharacters retrieves all characters in insertion order
func (r *GormRepository) ListCharacters(ctx context.Context) ([]domain.Character, error) {
	var characters []domain.Character
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&characters).Error; err != nil {
		return nil, fmt.Errorf("failed to list characters: %w", err)
	}
	return characters, nil
}

// FindCharacterByID retrieves a character by ID
func (r *GormRepository) FindCharacterByID(ctx context.Context, id uint) (*domain.Character, error) {
	var character domain.Character
	if err := r.db.WithContext(ctx).First(&character, id).Error; err != nil {
		return nil, notFound(err, domain.ErrCharacterNotFound, "character")
	}
	return &character, nil
}

// ListStarships retrieves all starships in insertion order
func (r *GormRepository) ListStarships(ctx context.Context) ([]domain.Starship, error) {
	var starships []domain.Starship
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&starships).Error; err != nil {
		return nil, fmt.Errorf("failed to list starships: %w", err)
	}
	return starships, nil
}

// FindStarshipByID retrieves a starship by ID
func (r *GormRepository) FindStarshipByID(ctx context.Context, id uint) (*domain.Starship, error) {
	var starship domain.Starship
	if err := r.db.WithContext(ctx).First(&starship, id).Error; err != nil {
		return nil, notFound(err, domain.ErrStarshipNotFound, "starship")
	}
	return &starship, nil
}

// CrewIDs maps each starship id to its crew member ids
func (r *GormRepository) CrewIDs(ctx context.Context, starshipIDs ...uint) (map[uint][]uint, error) {
	crews := make(map[uint][]uint, len(starshipIDs))
	if len(starshipIDs) == 0 {
		return crews, nil
	}

	var rows []struct {
		ID         uint
		StarshipID uint
	}
	err := r.db.WithContext(ctx).
		Model(&domain.Character{}).
		Select("id, starship_id").
		Where("starship_id IN ?", starshipIDs).
		Order("id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load crews: %w", err)
	}

	for _, row := range rows {
		crews[row.StarshipID] = append(crews[row.StarshipID], row.ID)
	}
	return crews, nil
}

// FavoriteIDs maps each user id to the planet and character ids it favorited
func (r *GormRepository) FavoriteIDs(ctx context.Context, userIDs ...uint) (map[uint]domain.FavoriteIDs, error) {
	favs := make(map[uint]domain.FavoriteIDs, len(userIDs))
	if len(userIDs) == 0 {
		return favs, nil
	}

	var planets []domain.FavoritePlanet
	err := r.db.WithContext(ctx).
		Where("user_id IN ?", userIDs).
		Order("user_id ASC, planet_id ASC").
		Find(&planets).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load favorite planets: %w", err)
	}

	var characters []domain.FavoriteCharacter
	err = r.db.WithContext(ctx).
		Where("user_id IN ?", userIDs).
		Order("user_id ASC, character_id ASC").
		Find(&characters).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load favorite characters: %w", err)
	}

	for _, fp := range planets {
		f := favs[fp.UserID]
		f.Planets = append(f.Planets, fp.PlanetID)
		favs[fp.UserID] = f
	}
	for _, fc := range characters {
		f := favs[fc.UserID]
		f.Characters = append(f.Characters, fc.CharacterID)
		favs[fc.UserID] = f
	}
	return favs, nil
}

// FavoritePlanetsOf lists the planets a user has favorited
func (r *GormRepository) FavoritePlanetsOf(ctx context.Context, userID uint) ([]domain.Planet, error) {
	var planets []domain.Planet
	err := r.db.WithContext(ctx).
		Joins("JOIN user_favorite_planet ON user_favorite_planet.planet_id = planets.id").
		Where("user_favorite_planet.user_id = ?", userID).
		Order("planets.id ASC").
		Find(&planets).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list favorite planets: %w", err)
	}
	return planets, nil
}

// FavoriteCharactersOf lists the characters a user has favorited
func (r *GormRepository) FavoriteCharactersOf(ctx context.Context, userID uint) ([]domain.Character, error) {
	var characters []domain.Character
	err := r.db.WithContext(ctx).
		Joins("JOIN user_favorite_character ON user_favorite_character.character_id = characters.id").
		Where("user_favorite_character.user_id = ?", userID).
		Order("characters.id ASC").
		Find(&characters).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list favorite characters: %w", err)
	}
	return characters, nil
}

// PlanetFans lists the users that favorited a planet
func (r *GormRepository) PlanetFans(ctx context.Context, planetID uint) ([]domain.User, error) {
	var users []domain.User
	err := r.db.WithContext(ctx).
		Joins("JOIN user_favorite_planet ON user_favorite_planet.user_id = users.id").
		Where("user_favorite_planet.planet_id = ?", planetID).
		Order("users.id ASC").
		Find(&users).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list planet fans: %w", err)
	}
	return users, nil
}

// CharacterFans lists the users that favorited a character
func (r *GormRepository) CharacterFans(ctx context.Context, characterID uint) ([]domain.User, error) {
	var users []domain.User
	err := r.db.WithContext(ctx).
		Joins("JOIN user_favorite_character ON user_favorite_character.user_id = users.id").
		Where("user_favorite_character.character_id = ?", characterID).
		Order("users.id ASC").
		Find(&users).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list character fans: %w", err)
	}
	return users, nil
}

// AddFavorite inserts the (user, target) pair. An existing pair is left
// untouched and reported as not inserted; the composite primary key makes
// concurrent identical inserts collapse into one row.
func (r *GormRepository) AddFavorite(ctx context.Context, target domain.TargetType, userID, targetID uint) (bool, error) {
	row, _, err := favoriteRow(target, userID, targetID)
	if err != nil {
		return false, err
	}

	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(row)
	if result.Error != nil {
		switch {
		case errors.Is(result.Error, gorm.ErrDuplicatedKey):
			return false, nil
		case errors.Is(result.Error, gorm.ErrForeignKeyViolated):
			return false, fmt.Errorf("failed to add favorite %s: %w", target, domain.ErrNotFound)
		}
		return false, fmt.Errorf("failed to add favorite %s: %w", target, result.Error)
	}
	return result.RowsAffected > 0, nil
}

// RemoveFavorite deletes the (user, target) pair if present
func (r *GormRepository) RemoveFavorite(ctx context.Context, target domain.TargetType, userID, targetID uint) (bool, error) {
	row, column, err := favoriteRow(target, userID, targetID)
	if err != nil {
		return false, err
	}

	result := r.db.WithContext(ctx).
		Where("user_id = ? AND "+column+" = ?", userID, targetID).
		Delete(row)
	if result.Error != nil {
		return false, fmt.Errorf("failed to remove favorite %s: %w", target, result.Error)
	}
	return result.RowsAffected > 0, nil
}

// favoriteRow builds the join row for a target and names its target column
func favoriteRow(target domain.TargetType, userID, targetID uint) (interface{}, string, error) {
	switch target {
	case domain.TargetPlanet:
		return &domain.FavoritePlanet{UserID: userID, PlanetID: targetID}, "planet_id", nil
	case domain.TargetCharacter:
		return &domain.FavoriteCharacter{UserID: userID, CharacterID: targetID}, "character_id", nil
	}
	return nil, "", fmt.Errorf("unknown favorite target %q: %w", target, domain.ErrInvalidInput)
}

func notFound(err error, sentinel error, entity string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sentinel
	}
	return fmt.Errorf("failed to find %s: %w", entity, err)
}
