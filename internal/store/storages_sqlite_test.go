package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-starwars-favorites/internal/config"
	"github.com/MKhiriev/go-starwars-favorites/internal/logger"
	"github.com/MKhiriev/go-starwars-favorites/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSQLiteStorages(t *testing.T) *Storages {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "favorites.db")
	storages, err := NewStorages(context.Background(), config.Storage{DB: config.DB{DSN: dsn}}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { storages.Close() })

	return storages
}

func TestStorages_SQLiteFavoritesLifecycle(t *testing.T) {
	ctx := context.Background()
	s := newSQLiteStorages(t)

	user, err := s.UserRepository.CreateUser(ctx, models.User{Email: "luke@rebels.org", Password: "hash", IsActive: true})
	require.NoError(t, err)
	person, err := s.PeopleRepository.CreatePerson(ctx, models.People{Name: "Leia Organa", Homeworld: "Alderaan"})
	require.NoError(t, err)
	planet, err := s.PlanetRepository.CreatePlanet(ctx, models.Planet{Name: "Hoth", Climate: "frozen", Terrain: "tundra"})
	require.NoError(t, err)

	// duplicates are allowed
	first, err := s.FavoriteRepository.CreateFavorite(ctx, models.NewFavorite(user.UserID, models.TargetPlanet, planet.PlanetID))
	require.NoError(t, err)
	second, err := s.FavoriteRepository.CreateFavorite(ctx, models.NewFavorite(user.UserID, models.TargetPlanet, planet.PlanetID))
	require.NoError(t, err)
	assert.NotEqual(t, first.FavoriteID, second.FavoriteID)

	_, err = s.FavoriteRepository.CreateFavorite(ctx, models.NewFavorite(user.UserID, models.TargetPeople, person.PeopleID))
	require.NoError(t, err)

	favorites, err := s.FavoriteRepository.ListFavoritesByUser(ctx, user.UserID)
	require.NoError(t, err)
	require.Len(t, favorites, 3)
	require.NotNil(t, favorites[0].Planet)
	assert.Equal(t, "Hoth", favorites[0].Planet.Name)
	require.NotNil(t, favorites[2].People)
	assert.Equal(t, "Leia Organa", favorites[2].People.Name)

	deleted, err := s.FavoriteRepository.DeleteFavorite(ctx, models.NewFavoriteFilter(user.UserID, models.TargetPlanet, planet.PlanetID))
	require.NoError(t, err)
	assert.Equal(t, first.FavoriteID, deleted.FavoriteID)

	favorites, err = s.FavoriteRepository.ListFavoritesByUser(ctx, user.UserID)
	require.NoError(t, err)
	assert.Len(t, favorites, 2)

	_, err = s.FavoriteRepository.DeleteFavorite(ctx, models.NewFavoriteFilter(user.UserID, models.TargetPlanet, 999))
	assert.ErrorIs(t, err, ErrFavoriteNotFound)

	favorites, err = s.FavoriteRepository.ListFavoritesByUser(ctx, user.UserID)
	require.NoError(t, err)
	assert.Len(t, favorites, 2)
}

func TestStorages_SQLiteConstraints(t *testing.T) {
	ctx := context.Background()
	s := newSQLiteStorages(t)

	user, err := s.UserRepository.CreateUser(ctx, models.User{Email: "han@falcon.io", Password: "hash", IsActive: true})
	require.NoError(t, err)

	_, err = s.UserRepository.CreateUser(ctx, models.User{Email: "han@falcon.io", Password: "other", IsActive: true})
	assert.ErrorIs(t, err, ErrAlreadyExists)

	_, err = s.FavoriteRepository.CreateFavorite(ctx, models.NewFavorite(user.UserID, models.TargetPeople, 404))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExecutingStatement)

	_, err = s.UserRepository.FindUserByID(ctx, 404)
	assert.ErrorIs(t, err, ErrUserNotFound)

	users, err := s.UserRepository.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
	assert.True(t, users[0].IsActive)
}
