package client

import (
	"fmt"
	"strconv"
	"time"

	"github.com/MKhiriev/go-starwars-favorites/models"
	"github.com/spf13/cobra"
)

func (a *App) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "favorites-client",
		Short: "Star Wars favorites API client",
		Long: `favorites-client talks to the Star Wars favorites server.

It lists users, characters and planets, and manages the characters and
planets each user marked as favorite.`,
		Version:           a.buildInfo.Version,
		PersistentPreRunE: a.connect,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	root.PersistentFlags().StringVarP(&a.address, "address", "a", "", "server base URL (default from ADAPTER_ADDRESS)")
	root.PersistentFlags().StringVar(&a.timeout, "timeout", "", "request timeout, e.g. 5s (default from ADAPTER_REQUEST_TIMEOUT)")
	root.PersistentFlags().StringVarP(&a.format, "output", "o", formatJSON, "output format: json, yaml")

	root.AddCommand(
		a.usersCommand(),
		a.peopleCommand(),
		a.planetsCommand(),
		a.favoritesCommand(),
		a.favoriteCommand(),
		a.routesCommand(),
		a.versionCommand(),
	)

	return root
}

func (a *App) usersCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "users [id]",
		Short: "List users or show one user",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				users, err := a.api.ListUsers(cmd.Context())
				if err != nil {
					return err
				}
				return a.render(users)
			}

			userID, err := parseID(args[0])
			if err != nil {
				return err
			}
			user, err := a.api.GetUser(cmd.Context(), userID)
			if err != nil {
				return err
			}
			return a.render(user)
		},
	}
}

func (a *App) peopleCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "people [id]",
		Aliases: []string{"characters"},
		Short:   "List characters or show one character",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				people, err := a.api.ListPeople(cmd.Context())
				if err != nil {
					return err
				}
				return a.render(people)
			}

			peopleID, err := parseID(args[0])
			if err != nil {
				return err
			}
			person, err := a.api.GetPerson(cmd.Context(), peopleID)
			if err != nil {
				return err
			}
			return a.render(person)
		},
	}
}

func (a *App) planetsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "planets [id]",
		Short: "List planets or show one planet",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				planets, err := a.api.ListPlanets(cmd.Context())
				if err != nil {
					return err
				}
				return a.render(planets)
			}

			planetID, err := parseID(args[0])
			if err != nil {
				return err
			}
			planet, err := a.api.GetPlanet(cmd.Context(), planetID)
			if err != nil {
				return err
			}
			return a.render(planet)
		},
	}
}

func (a *App) favoritesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "favorites <user_id>",
		Short: "List the favorites of a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := parseID(args[0])
			if err != nil {
				return err
			}
			favorites, err := a.api.ListFavorites(cmd.Context(), userID)
			if err != nil {
				return err
			}
			return a.render(favorites)
		},
	}
}

func (a *App) favoriteCommand() *cobra.Command {
	var userID int64

	favorite := &cobra.Command{
		Use:   "favorite",
		Short: "Add or remove a favorite character or planet",
	}
	favorite.PersistentFlags().Int64VarP(&userID, "user", "u", 0, "id of the user owning the favorite")

	add := &cobra.Command{
		Use:       "add <people|planet> <id>",
		Short:     "Mark a character or planet as favorite",
		Args:      cobra.ExactArgs(2),
		ValidArgs: []string{string(models.TargetPeople), string(models.TargetPlanet)},
		RunE: func(cmd *cobra.Command, args []string) error {
			target, targetID, err := parseTarget(args)
			if err != nil {
				return err
			}
			if userID <= 0 {
				return errNoUser
			}

			created, err := a.api.AddFavorite(cmd.Context(), userID, target, targetID)
			if err != nil {
				return err
			}
			return a.render(created)
		},
	}

	remove := &cobra.Command{
		Use:       "remove <people|planet> <id>",
		Aliases:   []string{"rm"},
		Short:     "Remove a favorite character or planet",
		Args:      cobra.ExactArgs(2),
		ValidArgs: []string{string(models.TargetPeople), string(models.TargetPlanet)},
		RunE: func(cmd *cobra.Command, args []string) error {
			target, targetID, err := parseTarget(args)
			if err != nil {
				return err
			}
			if userID <= 0 {
				return errNoUser
			}

			msg, err := a.api.RemoveFavorite(cmd.Context(), userID, target, targetID)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(a.out, msg)
			return err
		},
	}

	favorite.AddCommand(add, remove)
	return favorite
}

func (a *App) routesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "Show the routes served by the server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sitemap, err := a.api.Routes(cmd.Context())
			if err != nil {
				return err
			}
			return a.render(sitemap)
		},
	}
}

func (a *App) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.render(a.buildInfo)
		},
	}
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w, got %q", errInvalidID, raw)
	}
	return id, nil
}

func parseTarget(args []string) (models.FavoriteTarget, int64, error) {
	target := models.FavoriteTarget(args[0])
	if target != models.TargetPeople && target != models.TargetPlanet {
		return "", 0, fmt.Errorf("%w, got %q", errUnknownTarget, args[0])
	}

	targetID, err := parseID(args[1])
	if err != nil {
		return "", 0, err
	}
	return target, targetID, nil
}

func parseTimeout(raw string) (time.Duration, error) {
	if raw == "" {
		return 0, nil
	}
	timeout, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid --timeout: %w", err)
	}
	return timeout, nil
}
