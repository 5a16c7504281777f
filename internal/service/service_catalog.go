package service

import (
	"context"

	"github.com/MKhiriev/go-starwars-favorites/internal/logger"
	"github.com/MKhiriev/go-starwars-favorites/internal/store"
	"github.com/MKhiriev/go-starwars-favorites/models"
)

type userService struct {
	userRepository store.UserRepository

	logger *logger.Logger
}

func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		logger:         logger,
	}
}

func (s *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.userRepository.ListUsers(ctx)
}

func (s *userService) GetUser(ctx context.Context, userID int64) (models.User, error) {
	return s.userRepository.FindUserByID(ctx, userID)
}

type peopleService struct {
	peopleRepository store.PeopleRepository

	logger *logger.Logger
}

func NewPeopleService(peopleRepository store.PeopleRepository, logger *logger.Logger) PeopleService {
	return &peopleService{
		peopleRepository: peopleRepository,
		logger:           logger,
	}
}

func (s *peopleService) ListPeople(ctx context.Context) ([]models.People, error) {
	return s.peopleRepository.ListPeople(ctx)
}

func (s *peopleService) GetPerson(ctx context.Context, peopleID int64) (models.People, error) {
	return s.peopleRepository.FindPersonByID(ctx, peopleID)
}

type planetService struct {
	planetRepository store.PlanetRepository

	logger *logger.Logger
}

func NewPlanetService(planetRepository store.PlanetRepository, logger *logger.Logger) PlanetService {
	return &planetService{
		planetRepository: planetRepository,
		logger:           logger,
	}
}

func (s *planetService) ListPlanets(ctx context.Context) ([]models.Planet, error) {
	return s.planetRepository.ListPlanets(ctx)
}

func (s *planetService) GetPlanet(ctx context.Context, planetID int64) (models.Planet, error) {
	return s.planetRepository.FindPlanetByID(ctx, planetID)
}
