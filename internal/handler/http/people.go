package http

import (
	"net/http"

	"github.com/MKhiriev/go-starwars-favorites/internal/store"
)

func (h *Handler) listPeople(w http.ResponseWriter, r *http.Request) {
	people, err := h.services.PeopleService.ListPeople(r.Context())
	if err != nil {
		writeError(w, r, err, "*Handler.listPeople")
		return
	}

	writeJSON(w, r, nonNil(people), http.StatusOK, "*Handler.listPeople")
}

func (h *Handler) getPerson(w http.ResponseWriter, r *http.Request) {
	peopleID, err := pathID(r, "id", store.ErrPeopleNotFound)
	if err != nil {
		writeError(w, r, err, "*Handler.getPerson")
		return
	}

	person, err := h.services.PeopleService.GetPerson(r.Context(), peopleID)
	if err != nil {
		writeError(w, r, err, "*Handler.getPerson")
		return
	}

	writeJSON(w, r, person, http.StatusOK, "*Handler.getPerson")
}
