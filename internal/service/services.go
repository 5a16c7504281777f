package service

import (
	"fmt"

	"github.com/MKhiriev/go-starwars-favorites/internal/config"
	"github.com/MKhiriev/go-starwars-favorites/internal/logger"
	"github.com/MKhiriev/go-starwars-favorites/internal/store"
)

type Services struct {
	UserService     UserService
	PeopleService   PeopleService
	PlanetService   PlanetService
	FavoriteService FavoriteService
	SeedService     SeedService
	AppInfoService  AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	favoriteService := NewFavoriteValidationService().
		Wrap(NewFavoriteService(storages.FavoriteRepository, logger))

	return &Services{
		UserService:     NewUserService(storages.UserRepository, logger),
		PeopleService:   NewPeopleService(storages.PeopleRepository, logger),
		PlanetService:   NewPlanetService(storages.PlanetRepository, logger),
		FavoriteService: favoriteService,
		SeedService:     NewSeedService(storages, logger),
		AppInfoService:  appInfoService,
	}, nil
}
