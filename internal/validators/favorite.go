package validators

import (
	"context"

	"github.com/MKhiriev/go-starwars-favorites/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of fields (field-level scoping).
const (
	// FieldUserID targets the owner of a favorite or a favorite filter.
	FieldUserID = "user_id"

	// FieldTarget targets the character/planet reference of a favorite:
	// exactly one of them must be set. The id itself is left to the store.
	FieldTarget = "target"

	// FieldEmail targets the email of a seeded user.
	FieldEmail = "email"

	// FieldPassword targets the plain password of a seeded user.
	FieldPassword = "password"

	// FieldName targets the name of a seeded character or planet.
	FieldName = "name"
)

// FavoriteValidator validates favorites, favorite filters and the catalog
// records loaded from fixtures.
type FavoriteValidator struct {
}

func NewFavoriteValidator() Validator {
	return &FavoriteValidator{}
}

func (v *FavoriteValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Favorite:
		return v.validateFavorite(ctx, value, fields...)
	case *models.Favorite:
		return v.validateFavorite(ctx, *value, fields...)

	case models.FavoriteFilter:
		return v.validateFavoriteFilter(ctx, value, fields...)
	case *models.FavoriteFilter:
		return v.validateFavoriteFilter(ctx, *value, fields...)

	case models.User:
		return v.validateUser(ctx, value, fields...)
	case *models.User:
		return v.validateUser(ctx, *value, fields...)

	case models.People:
		return v.validateName(value.Name, fields...)
	case *models.People:
		return v.validateName(value.Name, fields...)

	case models.Planet:
		return v.validateName(value.Name, fields...)
	case *models.Planet:
		return v.validateName(value.Name, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *FavoriteValidator) validateFavorite(ctx context.Context, favorite models.Favorite, fields ...string) error {
	return v.validateFavoriteFilter(ctx, models.FavoriteFilter{
		UserID:   favorite.UserID,
		PeopleID: favorite.PeopleID,
		PlanetID: favorite.PlanetID,
	}, fields...)
}

func (v *FavoriteValidator) validateFavoriteFilter(ctx context.Context, filter models.FavoriteFilter, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldTarget}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			// only the zero value counts as missing
			if filter.UserID == 0 {
				return ErrInvalidUserID
			}
		case FieldTarget:
			if (filter.PeopleID == nil) == (filter.PlanetID == nil) {
				return ErrAmbiguousTarget
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *FavoriteValidator) validateUser(ctx context.Context, user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if user.Email == "" {
				return ErrEmptyEmail
			}
		case FieldPassword:
			if user.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *FavoriteValidator) validateName(name string, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if name == "" {
				return ErrEmptyName
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
