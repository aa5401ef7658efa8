package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/holonet/internal/favorite/domain"
	"github.com/tair/holonet/internal/testutil"
)

func newCache(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return mr, client
}

func TestCachedRepository_ReadThrough(t *testing.T) {
	db := testutil.NewDB(t)
	c := testutil.SeedCatalog(t, db)
	mr, client := newCache(t)
	ctx := context.Background()

	repo := NewCachedRepository(NewGormRepository(db), client, time.Minute)

	planet, err := repo.FindPlanetByID(ctx, c.Hoth.ID)
	require.NoError(t, err)
	assert.Equal(t, "Hoth", planet.Name)
	assert.True(t, mr.Exists(CatalogKeyPrefix+fmt.Sprintf("planet:%d", c.Hoth.ID)))

	// stale until invalidated
	require.NoError(t, db.Exec("UPDATE planets SET name = ? WHERE id = ?", "Echo Base", c.Hoth.ID).Error)
	planet, err = repo.FindPlanetByID(ctx, c.Hoth.ID)
	require.NoError(t, err)
	assert.Equal(t, "Hoth", planet.Name)

	planets, err := repo.ListPlanets(ctx)
	require.NoError(t, err)
	assert.Len(t, planets, 3)
	assert.True(t, mr.Exists(CatalogKeyPrefix+"planets"))
}

func TestCachedRepository_DoesNotCacheMisses(t *testing.T) {
	db := testutil.NewDB(t)
	testutil.SeedCatalog(t, db)
	mr, client := newCache(t)

	repo := NewCachedRepository(NewGormRepository(db), client, time.Minute)

	_, err := repo.FindCharacterByID(context.Background(), 999)
	assert.ErrorIs(t, err, domain.ErrCharacterNotFound)
	assert.False(t, mr.Exists(CatalogKeyPrefix+"character:999"))
}

func TestCachedRepository_UsersBypassCache(t *testing.T) {
	db := testutil.NewDB(t)
	testutil.SeedCatalog(t, db)
	mr, client := newCache(t)

	repo := NewCachedRepository(NewGormRepository(db), client, time.Minute)

	users, err := repo.ListUsers(context.Background())
	require.NoError(t, err)
	assert.Len(t, users, 2)
	assert.Empty(t, mr.Keys())
}

func TestCachedRepository_NilClient(t *testing.T) {
	db := testutil.NewDB(t)
	c := testutil.SeedCatalog(t, db)

	repo := NewCachedRepository(NewGormRepository(db), nil, time.Minute)

	starship, err := repo.FindStarshipByID(context.Background(), c.Falcon.ID)
	require.NoError(t, err)
	assert.Equal(t, "Millennium Falcon", starship.Name)

	removed, err := InvalidateCatalog(context.Background(), nil)
	require.NoError(t, err)
	assert.Zero(t, removed)
}

func TestInvalidateCatalog(t *testing.T) {
	mr, client := newCache(t)
	ctx := context.Background()

	require.NoError(t, mr.Set(CatalogKeyPrefix+"planets", "[]"))
	require.NoError(t, mr.Set(CatalogKeyPrefix+"planet:1", "{}"))
	require.NoError(t, mr.Set("unrelated", "keep"))

	removed, err := InvalidateCatalog(ctx, client)
	require.NoError(t, err)
	assert.Equal(t, 2, removed)
	assert.Equal(t, []string{"unrelated"}, mr.Keys())
}
