package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-starwars-favorites/internal/app"
	"github.com/MKhiriev/go-starwars-favorites/internal/logger"
	"github.com/MKhiriev/go-starwars-favorites/internal/service"
	"github.com/MKhiriev/go-starwars-favorites/internal/store"
	"github.com/MKhiriev/go-starwars-favorites/models"
)

// favoriteRoute describes the entity addressed by a /favorite/{kind}/{id} route.
type favoriteRoute struct {
	target   models.FavoriteTarget
	param    string
	notFound error
}

var (
	peopleFavoriteRoute = favoriteRoute{target: models.TargetPeople, param: "people_id", notFound: store.ErrPeopleNotFound}
	planetFavoriteRoute = favoriteRoute{target: models.TargetPlanet, param: "planet_id", notFound: store.ErrPlanetNotFound}
)

func (h *Handler) listUserFavorites(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "user_id", service.ErrNoFavoritesFound)
	if err != nil {
		writeError(w, r, err, "*Handler.listUserFavorites")
		return
	}

	favorites, err := h.services.FavoriteService.ListUserFavorites(r.Context(), userID)
	if err != nil {
		writeError(w, r, err, "*Handler.listUserFavorites")
		return
	}

	writeJSON(w, r, nonNil(favorites), http.StatusOK, "*Handler.listUserFavorites")
}

func (h *Handler) addPeopleFavorite(w http.ResponseWriter, r *http.Request) {
	h.addFavorite(w, r, peopleFavoriteRoute)
}

func (h *Handler) addPlanetFavorite(w http.ResponseWriter, r *http.Request) {
	h.addFavorite(w, r, planetFavoriteRoute)
}

func (h *Handler) removePeopleFavorite(w http.ResponseWriter, r *http.Request) {
	h.removeFavorite(w, r, peopleFavoriteRoute)
}

func (h *Handler) removePlanetFavorite(w http.ResponseWriter, r *http.Request) {
	h.removeFavorite(w, r, planetFavoriteRoute)
}

func (h *Handler) addFavorite(w http.ResponseWriter, r *http.Request, route favoriteRoute) {
	log := logger.FromRequest(r)

	targetID, err := pathID(r, route.param, route.notFound)
	if err != nil {
		writeError(w, r, err, "*Handler.addFavorite")
		return
	}

	request, err := decodeFavoriteRequest(r)
	if err != nil {
		writeError(w, r, err, "*Handler.addFavorite")
		return
	}

	created, err := h.services.FavoriteService.AddFavorite(r.Context(), models.NewFavorite(request.UserID, route.target, targetID))
	if err != nil {
		writeError(w, r, err, "*Handler.addFavorite")
		return
	}

	log.Debug().Str("func", "*Handler.addFavorite").
		Int64("favorite_id", created.FavoriteID).
		Str("target", string(route.target)).
		Int64("target_id", targetID).
		Msg("favorite created")

	writeJSON(w, r, created, http.StatusCreated, "*Handler.addFavorite")
}

func (h *Handler) removeFavorite(w http.ResponseWriter, r *http.Request, route favoriteRoute) {
	targetID, err := pathID(r, route.param, route.notFound)
	if err != nil {
		writeError(w, r, err, "*Handler.removeFavorite")
		return
	}

	request, err := decodeFavoriteRequest(r)
	if err != nil {
		writeError(w, r, err, "*Handler.removeFavorite")
		return
	}

	_, err = h.services.FavoriteService.RemoveFavorite(r.Context(), models.NewFavoriteFilter(request.UserID, route.target, targetID))
	if err != nil {
		writeError(w, r, err, "*Handler.removeFavorite")
		return
	}

	response := models.MessageResponse{Msg: fmt.Sprintf(app.MsgFavoriteRemovedFormat, targetID)}
	writeJSON(w, r, response, http.StatusOK, "*Handler.removeFavorite")
}
