// Package testutil provides an in-memory SQLite store with the favorites
// schema for package tests.
package testutil

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/tair/holonet/internal/favorite/domain"
	"github.com/tair/holonet/pkg/database"
)

// Catalog holds the rows inserted by SeedCatalog
type Catalog struct {
	Luke, Leia               domain.User
	Tatooine, Alderaan, Hoth domain.Planet
	XWing, Falcon            domain.Starship
	Skywalker, Organa, Solo  domain.Character
}

// NewDB opens a private in-memory database with foreign keys enforced and
// every table migrated.
func NewDB(tb testing.TB) *gorm.DB {
	tb.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), database.GormConfig())
	require.NoError(tb, err)

	sqlDB, err := db.DB()
	require.NoError(tb, err)
	// a single connection keeps the in-memory database alive and serializes writes
	sqlDB.SetMaxOpenConns(1)
	tb.Cleanup(func() { sqlDB.Close() })

	require.NoError(tb, db.AutoMigrate(domain.Models()...))
	return db
}

// SeedCatalog inserts two users, three planets, two starships and three
// characters. No favorites are created.
func SeedCatalog(tb testing.TB, db *gorm.DB) Catalog {
	tb.Helper()

	c := Catalog{
		Luke:     domain.User{UserName: "luke", Email: "luke@rebellion.org", Password: "hash", IsActive: true},
		Leia:     domain.User{UserName: "leia", Email: "leia@rebellion.org", Password: "hash", IsActive: true},
		Tatooine: domain.Planet{Name: "Tatooine", Diameter: "10465", Gravity: "1 standard"},
		Alderaan: domain.Planet{Name: "Alderaan", Diameter: "12500", Gravity: "1 standard"},
		Hoth:     domain.Planet{Name: "Hoth", Diameter: "7200", Gravity: "1.1 standard"},
		XWing:    domain.Starship{Name: "X-wing"},
		Falcon:   domain.Starship{Name: "Millennium Falcon"},
	}

	require.NoError(tb, db.Create(&c.Luke).Error)
	require.NoError(tb, db.Create(&c.Leia).Error)
	require.NoError(tb, db.Create(&c.Tatooine).Error)
	require.NoError(tb, db.Create(&c.Alderaan).Error)
	require.NoError(tb, db.Create(&c.Hoth).Error)
	require.NoError(tb, db.Create(&c.XWing).Error)
	require.NoError(tb, db.Create(&c.Falcon).Error)

	c.Skywalker = domain.Character{Name: "Luke Skywalker", BirthYear: "19BBY", Gender: "male", Homeworld: c.Tatooine.ID, StarshipID: c.XWing.ID}
	c.Organa = domain.Character{Name: "Leia Organa", BirthYear: "19BBY", Gender: "female", Homeworld: c.Alderaan.ID, StarshipID: c.Falcon.ID}
	c.Solo = domain.Character{Name: "Han Solo", BirthYear: "29BBY", Gender: "male", Homeworld: c.Tatooine.ID, StarshipID: c.Falcon.ID}

	require.NoError(tb, db.Create(&c.Skywalker).Error)
	require.NoError(tb, db.Create(&c.Organa).Error)
	require.NoError(tb, db.Create(&c.Solo).Error)

	return c
}
