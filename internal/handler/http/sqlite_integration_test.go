package http

import (
	"context"
	"encoding/json"
	"net/http"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-starwars-favorites/internal/config"
	"github.com/MKhiriev/go-starwars-favorites/internal/logger"
	"github.com/MKhiriev/go-starwars-favorites/internal/service"
	"github.com/MKhiriev/go-starwars-favorites/internal/store"
	"github.com/MKhiriev/go-starwars-favorites/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newSQLiteRouter wires the real stack on a temporary SQLite database seeded
// with one user, two characters and one planet.
func newSQLiteRouter(t *testing.T) http.Handler {
	t.Helper()
	ctx := context.Background()

	cfg := config.StructuredConfig{
		App:     config.App{Version: "1.0.0-test"},
		Storage: config.Storage{DB: config.DB{DSN: filepath.Join(t.TempDir(), "favorites.db")}},
		Server:  testServerConfig,
	}

	storages, err := store.NewStorages(ctx, cfg.Storage, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { storages.Close() })

	services, err := service.NewServices(storages, cfg, logger.Nop())
	require.NoError(t, err)

	report, err := services.SeedService.Seed(ctx, models.Fixtures{
		Users: []models.User{{Email: "luke@rebels.org", Password: "usetheforce", IsActive: true}},
		People: []models.People{
			{Name: "Luke Skywalker", Homeworld: "Tatooine"},
			{Name: "Leia Organa", Homeworld: "Alderaan"},
		},
		Planets: []models.Planet{{Name: "Hoth", Climate: "frozen", Terrain: "tundra"}},
	})
	require.NoError(t, err)
	require.Equal(t, 4, report.Created)

	return NewHandler(services, cfg.Server, logger.Nop()).Init()
}

func TestSQLite_FavoritesFlow(t *testing.T) {
	router := newSQLiteRouter(t)

	// users never expose their password hash
	rr := doRequest(router, http.MethodGet, "/users", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[{"id":1,"email":"luke@rebels.org"}]`, rr.Body.String())
	assert.Equal(t, "1.0.0-test", rr.Header().Get(appVersionHeader))

	rr = doRequest(router, http.MethodGet, "/favorites/1", "")
	require.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "Favoritos no localizados", decodeError(t, rr))

	// the same planet can be liked twice
	for range 2 {
		rr = doRequest(router, http.MethodPost, "/favorite/planet/1", `{"user_id":1}`)
		require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

		var created models.Favorite
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))
		require.NotNil(t, created.Planet)
		assert.Equal(t, int64(1), created.Planet.PlanetID)
		assert.Nil(t, created.People)
		require.NotNil(t, created.User)
		assert.Equal(t, "luke@rebels.org", created.User.Email)
	}

	rr = doRequest(router, http.MethodPost, "/favorite/people/2/", `{"user_id":1}`)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	rr = doRequest(router, http.MethodGet, "/favorites/1", "")
	require.Equal(t, http.StatusOK, rr.Code)
	var favorites []models.Favorite
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &favorites))
	require.Len(t, favorites, 3)
	require.NotNil(t, favorites[2].People)
	assert.Equal(t, "Leia Organa", favorites[2].People.Name)
	assert.NotContains(t, rr.Body.String(), "usetheforce")

	// delete removes one of the duplicates
	rr = doRequest(router, http.MethodDelete, "/favorite/planet/1", `{"user_id":1}`)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"msg":"Favorito con ID 1 ha sido eliminado"}`, rr.Body.String())

	rr = doRequest(router, http.MethodGet, "/favorites/1", "")
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &favorites))
	assert.Len(t, favorites, 2)

	rr = doRequest(router, http.MethodDelete, "/favorite/people/1", `{"user_id":1}`)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "Favorito no encontrado", decodeError(t, rr))
}

func TestSQLite_FavoriteErrors(t *testing.T) {
	router := newSQLiteRouter(t)

	rr := doRequest(router, http.MethodPost, "/favorite/people/1", `{}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "El id del usuario es obligatorio", decodeError(t, rr))

	rr = doRequest(router, http.MethodDelete, "/favorite/people/1", "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	// unknown planet violates the foreign key
	rr = doRequest(router, http.MethodPost, "/favorite/planet/99", `{"user_id":1}`)
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, "FOREIGN KEY constraint failed", decodeError(t, rr))

	// a zero target id is looked up, not rejected
	rr = doRequest(router, http.MethodDelete, "/favorite/planet/0", `{"user_id":1}`)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "Favorito no encontrado", decodeError(t, rr))

	rr = doRequest(router, http.MethodPost, "/favorite/people/0", `{"user_id":1}`)
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, "FOREIGN KEY constraint failed", decodeError(t, rr))

	// a negative user id is present, so it reaches the store
	rr = doRequest(router, http.MethodDelete, "/favorite/people/1", `{"user_id":-1}`)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "Favorito no encontrado", decodeError(t, rr))

	rr = doRequest(router, http.MethodPost, "/favorite/people/1", `{"user_id":-1}`)
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, "FOREIGN KEY constraint failed", decodeError(t, rr))

	rr = doRequest(router, http.MethodGet, "/people/3", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "Character no encontrado", decodeError(t, rr))

	rr = doRequest(router, http.MethodGet, "/planets", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[{"id":1,"name":"Hoth","climate":"frozen","terrain":"tundra"}]`, rr.Body.String())
}
