// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-starwars-favorites/internal/logger"
	"github.com/MKhiriev/go-starwars-favorites/internal/store"
	"github.com/MKhiriev/go-starwars-favorites/models"
)

type favoriteService struct {
	favoriteRepository store.FavoriteRepository

	logger *logger.Logger
}

func NewFavoriteService(favoriteRepository store.FavoriteRepository, logger *logger.Logger) FavoriteService {
	return &favoriteService{
		favoriteRepository: favoriteRepository,
		logger:             logger,
	}
}

func (s *favoriteService) ListUserFavorites(ctx context.Context, userID int64) ([]models.Favorite, error) {
	favorites, err := s.favoriteRepository.ListFavoritesByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if len(favorites) == 0 {
		return nil, ErrNoFavoritesFound
	}

	return favorites, nil
}

func (s *favoriteService) AddFavorite(ctx context.Context, favorite models.Favorite) (models.Favorite, error) {
	created, err := s.favoriteRepository.CreateFavorite(ctx, favorite)
	if err != nil {
		return models.Favorite{}, err
	}

	logger.FromContext(ctx).Debug().
		Int64("favorite_id", created.FavoriteID).
		Int64("user_id", created.UserID).
		Msg("favorite added")

	return created, nil
}

func (s *favoriteService) RemoveFavorite(ctx context.Context, filter models.FavoriteFilter) (models.Favorite, error) {
	deleted, err := s.favoriteRepository.DeleteFavorite(ctx, filter)
	if err != nil {
		return models.Favorite{}, err
	}

	logger.FromContext(ctx).Debug().
		Int64("favorite_id", deleted.FavoriteID).
		Int64("user_id", deleted.UserID).
		Msg("favorite removed")

	return deleted, nil
}
