package seed

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/tair/holonet/internal/favorite/domain"
	"github.com/tair/holonet/pkg/auth"
)

// Stats counts the rows created by a seed run
type Stats struct {
	Planets    int
	Starships  int
	Characters int
	Users      int
}

// Seed inserts the fixture in one transaction. Records are matched by their
// unique name (user_name for users), so re-running a fixture only adds what
// is missing and never overwrites existing rows. Favorites are not seeded.
func Seed(ctx context.Context, db *gorm.DB, f *Fixture) (Stats, error) {
	var stats Stats

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		planetIDs := make(map[string]uint, len(f.Planets))
		for _, p := range f.Planets {
			planet := domain.Planet{Name: p.Name, Diameter: p.Diameter, Gravity: p.Gravity}
			created, err := firstOrCreate(tx, &planet, &domain.Planet{Name: p.Name})
			if err != nil {
				return fmt.Errorf("seeding planet %q: %w", p.Name, err)
			}
			stats.Planets += count(created)
			planetIDs[p.Name] = planet.ID
		}

		starshipIDs := make(map[string]uint, len(f.Starships))
		for _, s := range f.Starships {
			starship := domain.Starship{Name: s.Name}
			created, err := firstOrCreate(tx, &starship, &domain.Starship{Name: s.Name})
			if err != nil {
				return fmt.Errorf("seeding starship %q: %w", s.Name, err)
			}
			stats.Starships += count(created)
			starshipIDs[s.Name] = starship.ID
		}

		for _, c := range f.Characters {
			character := domain.Character{
				Name:       c.Name,
				BirthYear:  c.BirthYear,
				Gender:     c.Gender,
				Homeworld:  planetIDs[c.Homeworld],
				StarshipID: starshipIDs[c.Starship],
			}
			created, err := firstOrCreate(tx, &character, &domain.Character{Name: c.Name})
			if err != nil {
				return fmt.Errorf("seeding character %q: %w", c.Name, err)
			}
			stats.Characters += count(created)
		}

		for _, u := range f.Users {
			password := u.Password
			if !auth.IsHashed(password) {
				hashed, err := auth.HashPassword(password)
				if err != nil {
					return fmt.Errorf("seeding user %q: %w", u.UserName, err)
				}
				password = hashed
			}

			user := domain.User{UserName: u.UserName, Email: u.Email, Password: password, IsActive: u.IsActive}
			created, err := firstOrCreate(tx, &user, &domain.User{UserName: u.UserName})
			if err != nil {
				return fmt.Errorf("seeding user %q: %w", u.UserName, err)
			}
			stats.Users += count(created)
		}
		return nil
	})

	return stats, err
}

// firstOrCreate loads the row matching where into record, or inserts record
// when there is none. It reports whether a row was inserted.
func firstOrCreate[T any](tx *gorm.DB, record *T, where *T) (bool, error) {
	var existing T
	res := tx.Where(where).Limit(1).Find(&existing)
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected > 0 {
		*record = existing
		return false, nil
	}
	if err := tx.Create(record).Error; err != nil {
		return false, err
	}
	return true, nil
}

func count(created bool) int {
	if created {
		return 1
	}
	return 0
}
