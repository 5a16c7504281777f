package store

import (
	"context"

	"github.com/MKhiriev/go-starwars-favorites/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists and retrieves [models.User] rows.
type UserRepository interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	CreateUser(ctx context.Context, user models.User) (models.User, error)
}

// PeopleRepository persists and retrieves [models.People] rows.
type PeopleRepository interface {
	ListPeople(ctx context.Context) ([]models.People, error)
	FindPersonByID(ctx context.Context, peopleID int64) (models.People, error)
	CreatePerson(ctx context.Context, person models.People) (models.People, error)
}

// PlanetRepository persists and retrieves [models.Planet] rows.
type PlanetRepository interface {
	ListPlanets(ctx context.Context) ([]models.Planet, error)
	FindPlanetByID(ctx context.Context, planetID int64) (models.Planet, error)
	CreatePlanet(ctx context.Context, planet models.Planet) (models.Planet, error)
}

// FavoriteRepository persists, retrieves and deletes [models.Favorite] rows.
// Favorites are always returned with their relations resolved.
type FavoriteRepository interface {
	ListFavoritesByUser(ctx context.Context, userID int64) ([]models.Favorite, error)
	CreateFavorite(ctx context.Context, favorite models.Favorite) (models.Favorite, error)
	// DeleteFavorite removes the first favorite (lowest id) matching filter
	// and returns it.
	DeleteFavorite(ctx context.Context, filter models.FavoriteFilter) (models.Favorite, error)
}

// ErrorClassificator inspects driver errors of a particular database engine.
type ErrorClassificator interface {
	// Classify reports whether the failed operation may be retried.
	Classify(err error) ErrorClassification
	// IsUniqueViolation reports whether err is a unique constraint violation.
	IsUniqueViolation(err error) bool
}
