// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// favorites server handlers.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies to describe the outcome of an operation. Keeping them
// in one place ensures consistent wording throughout the API.
package app

const (
	// MsgUserNotFound is returned when no user has the requested id.
	MsgUserNotFound = "Usuario no encontrado"

	// MsgPeopleNotFound is returned when no character has the requested id.
	MsgPeopleNotFound = "Character no encontrado"

	// MsgPlanetNotFound is returned when no planet has the requested id.
	MsgPlanetNotFound = "Planeta no encontrado"

	// MsgNoFavoritesFound is returned when a user has no favorites at all.
	MsgNoFavoritesFound = "Favoritos no localizados"

	// MsgFavoriteNotFound is returned when a delete request matches no
	// favorite of the user.
	MsgFavoriteNotFound = "Favorito no encontrado"

	// MsgUserIDRequired is returned when a favorite request carries no
	// user_id (missing, null or zero).
	MsgUserIDRequired = "El id del usuario es obligatorio"

	// MsgInvalidTarget is returned when a favorite does not point at exactly
	// one character or planet.
	MsgInvalidTarget = "El favorito debe apuntar a un personaje o a un planeta"

	// MsgInvalidJSON is returned when the request body cannot be decoded.
	MsgInvalidJSON = "JSON inválido"

	// MsgRouteNotFound is returned for paths no route matches.
	MsgRouteNotFound = "Recurso no encontrado"

	// MsgMethodNotAllowed is returned when the path exists but the HTTP
	// method is not registered for it.
	MsgMethodNotAllowed = "Método no permitido"
)

// MsgFavoriteRemovedFormat is the confirmation sent after a favorite was
// deleted. The verb is the id of the character or planet from the path.
const MsgFavoriteRemovedFormat = "Favorito con ID %d ha sido eliminado"
