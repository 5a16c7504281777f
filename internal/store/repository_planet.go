package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-starwars-favorites/internal/logger"
	"github.com/MKhiriev/go-starwars-favorites/models"
)

type planetRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewPlanetRepository constructs a [PlanetRepository] backed by db.
func NewPlanetRepository(db *DB, logger *logger.Logger) PlanetRepository {
	logger.Debug().Msg("creating planet repository")
	return &planetRepository{
		db:     db,
		logger: logger,
	}
}

func (r *planetRepository) ListPlanets(ctx context.Context) ([]models.Planet, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListPlanetsQuery(r.db.builder)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*planetRepository.ListPlanets").Msg("failed to query planets")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	planets := make([]models.Planet, 0)
	for rows.Next() {
		var planet models.Planet
		if err = rows.Scan(&planet.PlanetID, &planet.Name, &planet.Climate, &planet.Terrain); err != nil {
			log.Err(err).Str("func", "*planetRepository.ListPlanets").Msg("failed to scan planet row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		planets = append(planets, planet)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*planetRepository.ListPlanets").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return planets, nil
}

func (r *planetRepository) FindPlanetByID(ctx context.Context, planetID int64) (models.Planet, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindPlanetByIDQuery(r.db.builder, planetID)
	if err != nil {
		return models.Planet{}, err
	}

	var planet models.Planet
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&planet.PlanetID, &planet.Name, &planet.Climate, &planet.Terrain)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Planet{}, ErrPlanetNotFound
	case err != nil:
		log.Err(err).Str("func", "*planetRepository.FindPlanetByID").Int64("planet_id", planetID).Msg("failed to scan planet row")
		return models.Planet{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return planet, nil
}

func (r *planetRepository) CreatePlanet(ctx context.Context, planet models.Planet) (models.Planet, error) {
	query, args, err := buildCreatePlanetQuery(r.db.builder, planet)
	if err != nil {
		return models.Planet{}, err
	}

	err = r.db.inTx(ctx, func(tx *sql.Tx) error {
		if err := tx.QueryRowContext(ctx, query, args...).Scan(&planet.PlanetID); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		return nil
	})
	if err != nil {
		r.db.logWriteError(ctx, err, "*planetRepository.CreatePlanet", "failed to insert planet")
		if r.db.isUniqueViolation(err) {
			return models.Planet{}, fmt.Errorf("%w: planet %s", ErrAlreadyExists, planet.Name)
		}
		return models.Planet{}, err
	}

	return planet, nil
}
