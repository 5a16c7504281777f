package client

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/go-starwars-favorites/internal/adapter"
	"github.com/MKhiriev/go-starwars-favorites/internal/config"
	"github.com/MKhiriev/go-starwars-favorites/internal/logger"
	"github.com/MKhiriev/go-starwars-favorites/models"
	"github.com/spf13/cobra"
)

// APIFactory builds the server adapter once the command line is parsed.
// [adapter.NewHTTPFavoritesAPI] satisfies it.
type APIFactory func(cfg config.ClientAdapter, logger *logger.Logger) (adapter.FavoritesAPI, error)

type App struct {
	cfg       *config.ClientConfig
	newAPI    APIFactory
	api       adapter.FavoritesAPI
	buildInfo models.AppBuildInfo

	// flags shared by all commands
	address string
	timeout string
	format  string

	out    io.Writer
	logger *logger.Logger
}

func NewApp(cfg *config.ClientConfig, newAPI APIFactory, buildInfo models.AppBuildInfo, out io.Writer, logger *logger.Logger) *App {
	return &App{
		cfg:       cfg,
		newAPI:    newAPI,
		buildInfo: buildInfo,
		format:    formatJSON,
		out:       out,
		logger:    logger,
	}
}

func (a *App) Run(ctx context.Context, args []string) error {
	root := a.rootCommand()
	root.SetArgs(args)
	root.SetOut(a.out)

	return root.ExecuteContext(ctx)
}

// connect applies the connection flags and builds the adapter.
func (a *App) connect(cmd *cobra.Command, _ []string) error {
	timeout, err := parseTimeout(a.timeout)
	if err != nil {
		return err
	}
	if err = a.cfg.Override(a.address, timeout); err != nil {
		return err
	}
	if a.format != formatJSON && a.format != formatYAML {
		return fmt.Errorf("%w, got %q", errUnknownFormat, a.format)
	}

	a.api, err = a.newAPI(a.cfg.Adapter, a.logger)
	if err != nil {
		return fmt.Errorf("error creating server adapter: %w", err)
	}

	a.logger.Debug().Str("address", a.cfg.Adapter.HTTPAddress).Str("command", cmd.Name()).Msg("client connected")
	return nil
}
