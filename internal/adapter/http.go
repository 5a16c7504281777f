package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-starwars-favorites/internal/config"
	"github.com/MKhiriev/go-starwars-favorites/internal/logger"
	"github.com/MKhiriev/go-starwars-favorites/internal/utils"
	"github.com/MKhiriev/go-starwars-favorites/models"
)

type httpFavoritesAPI struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPFavoritesAPI constructs an HTTP implementation of [FavoritesAPI].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with it and the request timeout.
//
// Returns an error wrapping [ErrInvalidAddress] if adapterCfg.HTTPAddress is
// empty or cannot be parsed as a valid URL.
func NewHTTPFavoritesAPI(adapterCfg config.ClientAdapter, logger *logger.Logger) (FavoritesAPI, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	return &httpFavoritesAPI{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpFavoritesAPI) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := h.get(ctx, "/users", &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (h *httpFavoritesAPI) GetUser(ctx context.Context, userID int64) (models.User, error) {
	var user models.User
	if err := h.get(ctx, "/users/"+formatID(userID), &user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (h *httpFavoritesAPI) ListPeople(ctx context.Context) ([]models.People, error) {
	var people []models.People
	if err := h.get(ctx, "/people", &people); err != nil {
		return nil, err
	}
	return people, nil
}

func (h *httpFavoritesAPI) GetPerson(ctx context.Context, peopleID int64) (models.People, error) {
	var person models.People
	if err := h.get(ctx, "/people/"+formatID(peopleID), &person); err != nil {
		return models.People{}, err
	}
	return person, nil
}

func (h *httpFavoritesAPI) ListPlanets(ctx context.Context) ([]models.Planet, error) {
	var planets []models.Planet
	if err := h.get(ctx, "/planets", &planets); err != nil {
		return nil, err
	}
	return planets, nil
}

func (h *httpFavoritesAPI) GetPlanet(ctx context.Context, planetID int64) (models.Planet, error) {
	var planet models.Planet
	if err := h.get(ctx, "/planets/"+formatID(planetID), &planet); err != nil {
		return models.Planet{}, err
	}
	return planet, nil
}

func (h *httpFavoritesAPI) ListFavorites(ctx context.Context, userID int64) ([]models.Favorite, error) {
	var favorites []models.Favorite
	if err := h.get(ctx, "/favorites/"+formatID(userID), &favorites); err != nil {
		return nil, err
	}
	return favorites, nil
}

func (h *httpFavoritesAPI) Routes(ctx context.Context) (models.Sitemap, error) {
	var sitemap models.Sitemap
	if err := h.get(ctx, "/", &sitemap); err != nil {
		return nil, err
	}
	return sitemap, nil
}

// AddFavorite implements [FavoritesAPI]. It POSTs {"user_id": userID} to
// /favorite/{target}/{targetID} and decodes the created favorite.
func (h *httpFavoritesAPI) AddFavorite(ctx context.Context, userID int64, target models.FavoriteTarget, targetID int64) (models.Favorite, error) {
	var favorite models.Favorite

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.FavoriteRequest{UserID: userID}).
		SetResult(&favorite).
		Post(favoritePath(target, targetID))
	if err != nil {
		return models.Favorite{}, fmt.Errorf("add favorite request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Favorite{}, err
	}

	return favorite, nil
}

// RemoveFavorite implements [FavoritesAPI]. It sends DELETE with
// {"user_id": userID} to /favorite/{target}/{targetID}.
func (h *httpFavoritesAPI) RemoveFavorite(ctx context.Context, userID int64, target models.FavoriteTarget, targetID int64) (string, error) {
	var message models.MessageResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.FavoriteRequest{UserID: userID}).
		SetResult(&message).
		Delete(favoritePath(target, targetID))
	if err != nil {
		return "", fmt.Errorf("remove favorite request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return message.Msg, nil
}

func (h *httpFavoritesAPI) get(ctx context.Context, path string, result any) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(result).
		Get(path)
	if err != nil {
		h.logger.Debug().Err(err).Str("path", path).Msg("request failed")
		return fmt.Errorf("get %s: %w", path, err)
	}

	return mapHTTPError(resp)
}

func favoritePath(target models.FavoriteTarget, targetID int64) string {
	return "/favorite/" + string(target) + "/" + formatID(targetID)
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
