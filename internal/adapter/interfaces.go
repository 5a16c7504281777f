// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client-side view of the favorites HTTP API.
//
// The primary abstraction is [FavoritesAPI], which hides the REST routes
// behind typed methods. The package ships an HTTP implementation built on
// resty ([NewHTTPFavoritesAPI]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] instead of inspecting
// status codes (e.g. [ErrNotFound] for 404, [ErrBadRequest] for 400).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-starwars-favorites/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// FavoritesAPI is a typed client of the favorites server.
type FavoritesAPI interface {
	// ListUsers fetches GET /users.
	ListUsers(ctx context.Context) ([]models.User, error)
	// GetUser fetches GET /users/{id}. Returns [ErrNotFound] (wrapped) for an
	// unknown id.
	GetUser(ctx context.Context, userID int64) (models.User, error)

	// ListPeople fetches GET /people.
	ListPeople(ctx context.Context) ([]models.People, error)
	// GetPerson fetches GET /people/{id}.
	GetPerson(ctx context.Context, peopleID int64) (models.People, error)

	// ListPlanets fetches GET /planets.
	ListPlanets(ctx context.Context) ([]models.Planet, error)
	// GetPlanet fetches GET /planets/{id}.
	GetPlanet(ctx context.Context, planetID int64) (models.Planet, error)

	// ListFavorites fetches GET /favorites/{user_id}. A user without
	// favorites is reported by the server as 404 and surfaces as
	// [ErrNotFound].
	ListFavorites(ctx context.Context, userID int64) ([]models.Favorite, error)

	// AddFavorite posts to /favorite/{target}/{id} on behalf of userID and
	// returns the created favorite.
	AddFavorite(ctx context.Context, userID int64, target models.FavoriteTarget, targetID int64) (models.Favorite, error)

	// RemoveFavorite deletes /favorite/{target}/{id} on behalf of userID and
	// returns the confirmation message sent by the server.
	RemoveFavorite(ctx context.Context, userID int64, target models.FavoriteTarget, targetID int64) (string, error)

	// Routes fetches the route listing served at GET /.
	Routes(ctx context.Context) (models.Sitemap, error)
}
