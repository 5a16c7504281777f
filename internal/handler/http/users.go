package http

import (
	"net/http"

	"github.com/MKhiriev/go-starwars-favorites/internal/store"
)

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.services.UserService.ListUsers(r.Context())
	if err != nil {
		writeError(w, r, err, "*Handler.listUsers")
		return
	}

	writeJSON(w, r, nonNil(users), http.StatusOK, "*Handler.listUsers")
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "id", store.ErrUserNotFound)
	if err != nil {
		writeError(w, r, err, "*Handler.getUser")
		return
	}

	user, err := h.services.UserService.GetUser(r.Context(), userID)
	if err != nil {
		writeError(w, r, err, "*Handler.getUser")
		return
	}

	writeJSON(w, r, user, http.StatusOK, "*Handler.getUser")
}
