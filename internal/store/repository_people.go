package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-starwars-favorites/internal/logger"
	"github.com/MKhiriev/go-starwars-favorites/models"
)

type peopleRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewPeopleRepository constructs a [PeopleRepository] backed by db.
func NewPeopleRepository(db *DB, logger *logger.Logger) PeopleRepository {
	logger.Debug().Msg("creating people repository")
	return &peopleRepository{
		db:     db,
		logger: logger,
	}
}

func (r *peopleRepository) ListPeople(ctx context.Context) ([]models.People, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListPeopleQuery(r.db.builder)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*peopleRepository.ListPeople").Msg("failed to query people")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	people := make([]models.People, 0)
	for rows.Next() {
		var person models.People
		if err = rows.Scan(&person.PeopleID, &person.Name, &person.Homeworld); err != nil {
			log.Err(err).Str("func", "*peopleRepository.ListPeople").Msg("failed to scan people row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		people = append(people, person)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*peopleRepository.ListPeople").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return people, nil
}

func (r *peopleRepository) FindPersonByID(ctx context.Context, peopleID int64) (models.People, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindPersonByIDQuery(r.db.builder, peopleID)
	if err != nil {
		return models.People{}, err
	}

	var person models.People
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&person.PeopleID, &person.Name, &person.Homeworld)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.People{}, ErrPeopleNotFound
	case err != nil:
		log.Err(err).Str("func", "*peopleRepository.FindPersonByID").Int64("people_id", peopleID).Msg("failed to scan people row")
		return models.People{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return person, nil
}

func (r *peopleRepository) CreatePerson(ctx context.Context, person models.People) (models.People, error) {
	query, args, err := buildCreatePersonQuery(r.db.builder, person)
	if err != nil {
		return models.People{}, err
	}

	err = r.db.inTx(ctx, func(tx *sql.Tx) error {
		if err := tx.QueryRowContext(ctx, query, args...).Scan(&person.PeopleID); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		return nil
	})
	if err != nil {
		r.db.logWriteError(ctx, err, "*peopleRepository.CreatePerson", "failed to insert character")
		if r.db.isUniqueViolation(err) {
			return models.People{}, fmt.Errorf("%w: character %s", ErrAlreadyExists, person.Name)
		}
		return models.People{}, err
	}

	return person, nil
}
