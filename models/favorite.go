// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Favorite links a user to a character or a planet they marked as liked.
//
// Foreign keys are kept as plain fields and are not serialized; the transport
// representation carries the resolved relations instead. Note that the
// "user_id" JSON key holds the nested user object, not the scalar id.
// Relations that are not set serialize to null.
type Favorite struct {
	// FavoriteID is the unique identifier of the favorite row.
	FavoriteID int64 `json:"-"`

	// UserID is the owner of the favorite. Required.
	UserID int64 `json:"-"`

	// PeopleID references the liked character. Nil for planet favorites.
	PeopleID *int64 `json:"-"`

	// PlanetID references the liked planet. Nil for character favorites.
	PlanetID *int64 `json:"-"`

	User   *User   `json:"user_id"`
	People *People `json:"character"`
	Planet *Planet `json:"planet"`
}

// TableName returns the name of the database table
// associated with the Favorite model.
func (f Favorite) TableName() string {
	return "favorites"
}

// FavoriteTarget is the kind of entity a favorite points to.
type FavoriteTarget string

const (
	TargetPeople FavoriteTarget = "people"
	TargetPlanet FavoriteTarget = "planet"
)

// FavoriteFilter selects favorites of a user by target.
// Exactly one of PeopleID and PlanetID is expected to be set.
type FavoriteFilter struct {
	UserID   int64
	PeopleID *int64
	PlanetID *int64
}

// NewFavorite builds a favorite of userID pointing at the target entity id.
func NewFavorite(userID int64, target FavoriteTarget, targetID int64) Favorite {
	favorite := Favorite{UserID: userID}
	switch target {
	case TargetPeople:
		favorite.PeopleID = &targetID
	case TargetPlanet:
		favorite.PlanetID = &targetID
	}
	return favorite
}

// NewFavoriteFilter builds a filter matching favorites of userID pointing at
// the target entity id.
func NewFavoriteFilter(userID int64, target FavoriteTarget, targetID int64) FavoriteFilter {
	filter := FavoriteFilter{UserID: userID}
	switch target {
	case TargetPeople:
		filter.PeopleID = &targetID
	case TargetPlanet:
		filter.PlanetID = &targetID
	}
	return filter
}
