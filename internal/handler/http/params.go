package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-starwars-favorites/models"
	"github.com/go-chi/chi/v5"
)

// pathID parses the integer URL parameter name. The router only lets digits
// through, so a parse failure means the value overflows int64 and no entity
// can carry it: notFound is returned wrapped.
func pathID(r *http.Request, name string, notFound error) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", notFound, err)
	}
	return id, nil
}

// decodeFavoriteRequest reads the {"user_id": ...} body. An empty body yields
// a zero user id, which the service rejects as missing.
func decodeFavoriteRequest(r *http.Request) (models.FavoriteRequest, error) {
	var request models.FavoriteRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		if errors.Is(err, io.EOF) {
			return models.FavoriteRequest{}, nil
		}
		return models.FavoriteRequest{}, fmt.Errorf("%w: %w", errInvalidJSON, err)
	}
	return request, nil
}

// nonNil keeps empty lists serialized as [] instead of null.
func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
