package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrNoFavoritesFound = errors.New("user has no favorites")

	ErrValidationNoUserID         = errors.New("no user ID for favorite was given")
	ErrValidationAmbiguousTarget  = errors.New("favorite target is invalid")
	ErrValidationInvalidSeedEntry = errors.New("invalid fixture entry")

	ErrHashingPassword = errors.New("error hashing password")
)
