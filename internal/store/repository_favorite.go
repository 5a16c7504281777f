// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-starwars-favorites/internal/logger"
	"github.com/MKhiriev/go-starwars-favorites/models"
)

// favoriteRepository is the SQL implementation of [FavoriteRepository].
//
// Favorites are read through LEFT JOINs on users, people and planets, so every
// returned [models.Favorite] carries its resolved relations. Writes run in a
// single transaction: the statement and the read-back either both happen or
// neither does.
type favoriteRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewFavoriteRepository constructs a [FavoriteRepository] backed by db.
func NewFavoriteRepository(db *DB, logger *logger.Logger) FavoriteRepository {
	logger.Debug().Msg("creating favorite repository")
	return &favoriteRepository{
		db:     db,
		logger: logger,
	}
}

// ListFavoritesByUser returns the favorites of userID ordered by id.
func (r *favoriteRepository) ListFavoritesByUser(ctx context.Context, userID int64) ([]models.Favorite, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListFavoritesByUserQuery(r.db.builder, userID)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*favoriteRepository.ListFavoritesByUser").Int64("user_id", userID).Msg("failed to query favorites")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	favorites := make([]models.Favorite, 0)
	for rows.Next() {
		favorite, err := scanFavorite(rows)
		if err != nil {
			log.Err(err).Str("func", "*favoriteRepository.ListFavoritesByUser").Int64("user_id", userID).Msg("failed to scan favorite row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		favorites = append(favorites, favorite)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*favoriteRepository.ListFavoritesByUser").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return favorites, nil
}

// CreateFavorite inserts favorite and returns it with the generated id and
// resolved relations. Foreign key violations surface as a wrapped
// [ErrExecutingStatement] carrying the driver message.
func (r *favoriteRepository) CreateFavorite(ctx context.Context, favorite models.Favorite) (models.Favorite, error) {
	insertQuery, insertArgs, err := buildCreateFavoriteQuery(r.db.builder, favorite)
	if err != nil {
		return models.Favorite{}, err
	}

	var created models.Favorite
	err = r.db.inTx(ctx, func(tx *sql.Tx) error {
		var favoriteID int64
		if err := tx.QueryRowContext(ctx, insertQuery, insertArgs...).Scan(&favoriteID); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		selectQuery, selectArgs, err := buildFindFavoriteByIDQuery(r.db.builder, favoriteID)
		if err != nil {
			return err
		}

		created, err = scanFavorite(tx.QueryRowContext(ctx, selectQuery, selectArgs...))
		if err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRow, err)
		}

		return nil
	})
	if err != nil {
		r.db.logWriteError(ctx, err, "*favoriteRepository.CreateFavorite", "failed to insert favorite")
		return models.Favorite{}, err
	}

	return created, nil
}

// DeleteFavorite removes the first favorite (lowest id) matching filter and
// returns it. When nothing matches, [ErrFavoriteNotFound] is returned and the
// table is left untouched.
func (r *favoriteRepository) DeleteFavorite(ctx context.Context, filter models.FavoriteFilter) (models.Favorite, error) {
	selectQuery, selectArgs, err := buildFindFirstFavoriteQuery(r.db.builder, filter)
	if err != nil {
		return models.Favorite{}, err
	}

	var deleted models.Favorite
	err = r.db.inTx(ctx, func(tx *sql.Tx) error {
		found, err := scanFavorite(tx.QueryRowContext(ctx, selectQuery, selectArgs...))
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return ErrFavoriteNotFound
		case err != nil:
			return fmt.Errorf("%w: %w", ErrScanningRow, err)
		}

		deleteQuery, deleteArgs, err := buildDeleteFavoriteQuery(r.db.builder, found.FavoriteID)
		if err != nil {
			return err
		}

		if _, err = tx.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		deleted = found
		return nil
	})
	if errors.Is(err, ErrFavoriteNotFound) {
		return models.Favorite{}, err
	}
	if err != nil {
		r.db.logWriteError(ctx, err, "*favoriteRepository.DeleteFavorite", "failed to delete favorite")
		return models.Favorite{}, err
	}

	return deleted, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanFavorite scans one row selected with favoriteColumns.
func scanFavorite(row rowScanner) (models.Favorite, error) {
	var favorite models.Favorite
	var peopleID, planetID sql.NullInt64
	var userID sql.NullInt64
	var userEmail sql.NullString
	var personID sql.NullInt64
	var personName, personHomeworld sql.NullString
	var planetRowID sql.NullInt64
	var planetName, planetClimate, planetTerrain sql.NullString

	err := row.Scan(
		&favorite.FavoriteID, &favorite.UserID, &peopleID, &planetID,
		&userID, &userEmail,
		&personID, &personName, &personHomeworld,
		&planetRowID, &planetName, &planetClimate, &planetTerrain,
	)
	if err != nil {
		return models.Favorite{}, err
	}

	if peopleID.Valid {
		favorite.PeopleID = &peopleID.Int64
	}
	if planetID.Valid {
		favorite.PlanetID = &planetID.Int64
	}

	if userID.Valid {
		favorite.User = &models.User{UserID: userID.Int64, Email: userEmail.String}
	}
	if personID.Valid {
		favorite.People = &models.People{PeopleID: personID.Int64, Name: personName.String, Homeworld: personHomeworld.String}
	}
	if planetRowID.Valid {
		favorite.Planet = &models.Planet{PlanetID: planetRowID.Int64, Name: planetName.String, Climate: planetClimate.String, Terrain: planetTerrain.String}
	}

	return favorite, nil
}
