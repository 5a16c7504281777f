package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-starwars-favorites/internal/adapter"
	"github.com/MKhiriev/go-starwars-favorites/internal/client"
	"github.com/MKhiriev/go-starwars-favorites/internal/config"
	"github.com/MKhiriev/go-starwars-favorites/internal/logger"
	"github.com/MKhiriev/go-starwars-favorites/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

// clientLogLevel keeps diagnostics on stderr down to warnings.
const clientLogLevel = "warn"

func main() {
	log := logger.NewClientLogger("starwars-favorites-client")
	if err := log.SetLevel(clientLogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	var app client.Client = client.NewApp(cfg, adapter.NewHTTPFavoritesAPI, newBuildInfo(), os.Stdout, log)
	if err = app.Run(context.Background(), os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
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
