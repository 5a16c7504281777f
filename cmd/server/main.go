package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-starwars-favorites/internal/config"
	"github.com/MKhiriev/go-starwars-favorites/internal/fixtures"
	"github.com/MKhiriev/go-starwars-favorites/internal/handler"
	"github.com/MKhiriev/go-starwars-favorites/internal/logger"
	"github.com/MKhiriev/go-starwars-favorites/internal/server"
	"github.com/MKhiriev/go-starwars-favorites/internal/service"
	"github.com/MKhiriev/go-starwars-favorites/internal/store"
	"github.com/MKhiriev/go-starwars-favorites/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := newBuildInfo()
	printBuildInfo(buildInfo)

	log := logger.NewLogger("starwars-favorites-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = log.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	log.Debug().Any("config", cfg).Any("build", buildInfo).Msg("received configs")

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	services, err := service.NewServices(storages, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	if cfg.Storage.SeedFile != "" {
		if err = seed(ctx, services.SeedService, cfg.Storage.SeedFile); err != nil {
			log.Fatal().Err(err).Str("seed_file", cfg.Storage.SeedFile).Msg("error seeding storage")
		}
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(ctx); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
	}
}

func seed(ctx context.Context, seedService service.SeedService, path string) error {
	data, err := fixtures.Load(path)
	if err != nil {
		return err
	}

	_, err = seedService.Seed(ctx, data)
	return err
}

func newBuildInfo() models.AppBuildInfo {
	info := models.AppBuildInfo{
		Version: buildVersion,
		Date:    buildDate,
		Commit:  buildCommit,
	}
	if info.Version == "" {
		info.Version = "N/A"
	}
	if info.Date == "" {
		info.Date = "N/A"
	}
	if info.Commit == "" {
		info.Commit = "N/A"
	}
	return info
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.Version)
	fmt.Printf("Build date: %s\n", info.Date)
	fmt.Printf("Build commit: %s\n", info.Commit)
}
