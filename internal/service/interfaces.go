package service

import (
	"context"

	"github.com/MKhiriev/go-starwars-favorites/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

type UserService interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, userID int64) (models.User, error)
}

type PeopleService interface {
	ListPeople(ctx context.Context) ([]models.People, error)
	GetPerson(ctx context.Context, peopleID int64) (models.People, error)
}

type PlanetService interface {
	ListPlanets(ctx context.Context) ([]models.Planet, error)
	GetPlanet(ctx context.Context, planetID int64) (models.Planet, error)
}

type FavoriteService interface {
	// ListUserFavorites returns the favorites of userID. An empty result is
	// reported as ErrNoFavoritesFound.
	ListUserFavorites(ctx context.Context, userID int64) ([]models.Favorite, error)
	AddFavorite(ctx context.Context, favorite models.Favorite) (models.Favorite, error)
	// RemoveFavorite deletes the first favorite matching filter and returns it.
	RemoveFavorite(ctx context.Context, filter models.FavoriteFilter) (models.Favorite, error)
}

// SeedService loads fixture records into the store.
type SeedService interface {
	Seed(ctx context.Context, fixtures models.Fixtures) (models.SeedReport, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
