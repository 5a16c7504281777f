package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-starwars-favorites/internal/app"
	"github.com/MKhiriev/go-starwars-favorites/internal/logger"
	"github.com/MKhiriev/go-starwars-favorites/internal/service"
	"github.com/MKhiriev/go-starwars-favorites/internal/store"
	"github.com/MKhiriev/go-starwars-favorites/internal/utils"
)

var errorStatusMap = map[error]int{
	errInvalidJSON:      http.StatusBadRequest,
	errRouteNotFound:    http.StatusNotFound,
	errMethodNotAllowed: http.StatusMethodNotAllowed,

	service.ErrValidationNoUserID:        http.StatusBadRequest,
	service.ErrValidationAmbiguousTarget: http.StatusBadRequest,
	service.ErrNoFavoritesFound:          http.StatusNotFound,

	store.ErrUserNotFound:     http.StatusNotFound,
	store.ErrPeopleNotFound:   http.StatusNotFound,
	store.ErrPlanetNotFound:   http.StatusNotFound,
	store.ErrFavoriteNotFound: http.StatusNotFound,
	store.ErrAlreadyExists:    http.StatusConflict,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

// errorMessageMap holds the client-facing messages of the well-known errors.
var errorMessageMap = map[error]string{
	errInvalidJSON:      app.MsgInvalidJSON,
	errRouteNotFound:    app.MsgRouteNotFound,
	errMethodNotAllowed: app.MsgMethodNotAllowed,

	service.ErrValidationNoUserID:        app.MsgUserIDRequired,
	service.ErrValidationAmbiguousTarget: app.MsgInvalidTarget,
	service.ErrNoFavoritesFound:          app.MsgNoFavoritesFound,

	store.ErrUserNotFound:     app.MsgUserNotFound,
	store.ErrPeopleNotFound:   app.MsgPeopleNotFound,
	store.ErrPlanetNotFound:   app.MsgPlanetNotFound,
	store.ErrFavoriteNotFound: app.MsgFavoriteNotFound,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func messageFromError(err error) string {
	for target, message := range errorMessageMap {
		if errors.Is(err, target) {
			return message
		}
	}
	return ""
}

// writeError logs err and renders it as the JSON error envelope.
func writeError(w http.ResponseWriter, r *http.Request, err error, funcName string) {
	log := logger.FromRequest(r)
	apiErr := newAPIError(err)

	event := log.Warn()
	if apiErr.Status >= http.StatusInternalServerError {
		event = log.Error()
	}
	event.Err(err).Str("func", funcName).Int("status", apiErr.Status).Msg("request failed")

	if _, writeErr := utils.WriteError(w, apiErr.Message, apiErr.Status); writeErr != nil {
		log.Err(writeErr).Str("func", funcName).Msg("error writing error response")
	}
}

// writeJSON renders data and logs encoding failures.
func writeJSON(w http.ResponseWriter, r *http.Request, data any, status int, funcName string) {
	if _, err := utils.WriteJSON(w, data, status); err != nil {
		logger.FromRequest(r).Err(err).Str("func", funcName).Msg("error writing response")
	}
}
