package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-starwars-favorites/internal/logger"
	"github.com/MKhiriev/go-starwars-favorites/internal/mock"
	"github.com/MKhiriev/go-starwars-favorites/internal/store"
	"github.com/MKhiriev/go-starwars-favorites/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestUserService(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	svc := NewUserService(repo, logger.Nop())
	ctx := context.Background()

	users := []models.User{{UserID: 1, Email: "luke@rebels.org"}}
	repo.EXPECT().ListUsers(ctx).Return(users, nil)
	repo.EXPECT().FindUserByID(ctx, int64(1)).Return(users[0], nil)
	repo.EXPECT().FindUserByID(ctx, int64(2)).Return(models.User{}, store.ErrUserNotFound)

	got, err := svc.ListUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, users, got)

	user, err := svc.GetUser(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "luke@rebels.org", user.Email)

	_, err = svc.GetUser(ctx, 2)
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestPeopleService(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockPeopleRepository(ctrl)
	svc := NewPeopleService(repo, logger.Nop())
	ctx := context.Background()

	repo.EXPECT().ListPeople(ctx).Return([]models.People{}, nil)
	repo.EXPECT().FindPersonByID(ctx, int64(9)).Return(models.People{}, store.ErrPeopleNotFound)

	people, err := svc.ListPeople(ctx)
	require.NoError(t, err)
	assert.NotNil(t, people)
	assert.Empty(t, people)

	_, err = svc.GetPerson(ctx, 9)
	assert.ErrorIs(t, err, store.ErrPeopleNotFound)
}

func TestPlanetService(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockPlanetRepository(ctrl)
	svc := NewPlanetService(repo, logger.Nop())
	ctx := context.Background()

	hoth := models.Planet{PlanetID: 3, Name: "Hoth", Climate: "frozen", Terrain: "tundra"}
	repo.EXPECT().ListPlanets(ctx).Return([]models.Planet{hoth}, nil)
	repo.EXPECT().FindPlanetByID(ctx, int64(3)).Return(hoth, nil)

	planets, err := svc.ListPlanets(ctx)
	require.NoError(t, err)
	assert.Len(t, planets, 1)

	planet, err := svc.GetPlanet(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, hoth, planet)
}
