package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-starwars-favorites/internal/validators"
	"github.com/MKhiriev/go-starwars-favorites/models"
)

// FavoriteValidationService rejects favorites without an owner or without
// exactly one target before they reach the store.
type FavoriteValidationService struct {
	inner     FavoriteService
	validator validators.Validator
}

func NewFavoriteValidationService() FavoriteServiceWrapper {
	return &FavoriteValidationService{
		validator: validators.NewFavoriteValidator(),
	}
}

func (v *FavoriteValidationService) ListUserFavorites(ctx context.Context, userID int64) ([]models.Favorite, error) {
	return v.inner.ListUserFavorites(ctx, userID)
}

func (v *FavoriteValidationService) AddFavorite(ctx context.Context, favorite models.Favorite) (models.Favorite, error) {
	if err := v.validate(ctx, favorite); err != nil {
		return models.Favorite{}, fmt.Errorf("error during favorite validation before saving: %w", err)
	}

	return v.inner.AddFavorite(ctx, favorite)
}

func (v *FavoriteValidationService) RemoveFavorite(ctx context.Context, filter models.FavoriteFilter) (models.Favorite, error) {
	if err := v.validate(ctx, filter); err != nil {
		return models.Favorite{}, fmt.Errorf("error during favorite validation before deleting: %w", err)
	}

	return v.inner.RemoveFavorite(ctx, filter)
}

func (v *FavoriteValidationService) validate(ctx context.Context, obj any) error {
	if err := v.validator.Validate(ctx, obj, validators.FieldUserID); err != nil {
		return fmt.Errorf("%w: %w", ErrValidationNoUserID, err)
	}
	if err := v.validator.Validate(ctx, obj, validators.FieldTarget); err != nil {
		return fmt.Errorf("%w: %w", ErrValidationAmbiguousTarget, err)
	}
	return nil
}

func (v *FavoriteValidationService) Wrap(wrapper FavoriteService) FavoriteService {
	v.inner = wrapper
	return v
}
