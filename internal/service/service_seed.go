package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-starwars-favorites/internal/logger"
	"github.com/MKhiriev/go-starwars-favorites/internal/store"
	"github.com/MKhiriev/go-starwars-favorites/internal/utils"
	"github.com/MKhiriev/go-starwars-favorites/internal/validators"
	"github.com/MKhiriev/go-starwars-favorites/models"
)

// seedService creates fixture records that are not in the store yet.
// Records rejected with [store.ErrAlreadyExists] are counted as skipped, so
// seeding the same fixtures twice is harmless.
type seedService struct {
	userRepository   store.UserRepository
	peopleRepository store.PeopleRepository
	planetRepository store.PlanetRepository

	validator validators.Validator
	logger    *logger.Logger
}

func NewSeedService(storages *store.Storages, logger *logger.Logger) SeedService {
	return &seedService{
		userRepository:   storages.UserRepository,
		peopleRepository: storages.PeopleRepository,
		planetRepository: storages.PlanetRepository,
		validator:        validators.NewFavoriteValidator(),
		logger:           logger,
	}
}

func (s *seedService) Seed(ctx context.Context, fixtures models.Fixtures) (models.SeedReport, error) {
	var report models.SeedReport

	err := seedRecords(ctx, s.validator, fixtures.Users, &report, func(ctx context.Context, user models.User) error {
		hash, err := utils.HashPassword(user.Password)
		if err != nil {
			return fmt.Errorf("%w for %s: %w", ErrHashingPassword, user.Email, err)
		}
		user.Password = hash

		_, err = s.userRepository.CreateUser(ctx, user)
		return err
	})
	if err != nil {
		return report, err
	}

	err = seedRecords(ctx, s.validator, fixtures.People, &report, func(ctx context.Context, person models.People) error {
		_, err := s.peopleRepository.CreatePerson(ctx, person)
		return err
	})
	if err != nil {
		return report, err
	}

	err = seedRecords(ctx, s.validator, fixtures.Planets, &report, func(ctx context.Context, planet models.Planet) error {
		_, err := s.planetRepository.CreatePlanet(ctx, planet)
		return err
	})
	if err != nil {
		return report, err
	}

	s.logger.Info().
		Int("created", report.Created).
		Int("skipped", report.Skipped).
		Msg("fixtures seeded")

	return report, nil
}

func seedRecords[T any](ctx context.Context, validator validators.Validator, records []T, report *models.SeedReport, create func(context.Context, T) error) error {
	for i, record := range records {
		if err := validator.Validate(ctx, record); err != nil {
			return fmt.Errorf("%w at index %d: %w", ErrValidationInvalidSeedEntry, i, err)
		}

		err := create(ctx, record)
		switch {
		case errors.Is(err, store.ErrAlreadyExists):
			report.Skipped++
		case err != nil:
			return err
		default:
			report.Created++
		}
	}

	return nil
}
