package http

import "net/http"

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, errRouteNotFound, "*Handler.notFound")
}

func (h *Handler) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, errMethodNotAllowed, "*Handler.methodNotAllowed")
}
