package http

import (
	"net/http"

	"github.com/MKhiriev/go-starwars-favorites/internal/store"
)

func (h *Handler) listPlanets(w http.ResponseWriter, r *http.Request) {
	planets, err := h.services.PlanetService.ListPlanets(r.Context())
	if err != nil {
		writeError(w, r, err, "*Handler.listPlanets")
		return
	}

	writeJSON(w, r, nonNil(planets), http.StatusOK, "*Handler.listPlanets")
}

func (h *Handler) getPlanet(w http.ResponseWriter, r *http.Request) {
	planetID, err := pathID(r, "id", store.ErrPlanetNotFound)
	if err != nil {
		writeError(w, r, err, "*Handler.getPlanet")
		return
	}

	planet, err := h.services.PlanetService.GetPlanet(r.Context(), planetID)
	if err != nil {
		writeError(w, r, err, "*Handler.getPlanet")
		return
	}

	writeJSON(w, r, planet, http.StatusOK, "*Handler.getPlanet")
}
