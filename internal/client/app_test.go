package client

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/MKhiriev/go-starwars-favorites/internal/adapter"
	"github.com/MKhiriev/go-starwars-favorites/internal/config"
	"github.com/MKhiriev/go-starwars-favorites/internal/logger"
	"github.com/MKhiriev/go-starwars-favorites/internal/mock"
	"github.com/MKhiriev/go-starwars-favorites/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ── helpers ───────────────────────────────────────────────────────────────────

type testApp struct {
	app     *App
	api     *mock.MockFavoritesAPI
	out     *bytes.Buffer
	adapter *config.ClientAdapter
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	ctrl := gomock.NewController(t)

	ta := &testApp{
		api: mock.NewMockFavoritesAPI(ctrl),
		out: &bytes.Buffer{},
	}

	cfg := &config.ClientConfig{Adapter: config.ClientAdapter{
		HTTPAddress:    "http://localhost:3000",
		RequestTimeout: 10 * time.Second,
	}}
	factory := func(adapterCfg config.ClientAdapter, _ *logger.Logger) (adapter.FavoritesAPI, error) {
		ta.adapter = &adapterCfg
		return ta.api, nil
	}

	buildInfo := models.AppBuildInfo{Version: "1.2.3", Date: "2026-10-19", Commit: "abc123"}
	ta.app = NewApp(cfg, factory, buildInfo, ta.out, logger.Nop())
	return ta
}

func (ta *testApp) run(args ...string) error {
	return ta.app.Run(context.Background(), args)
}

// ── catalog commands ─────────────────────────────────────────────────────────

func TestUsers_List(t *testing.T) {
	ta := newTestApp(t)
	ta.api.EXPECT().ListUsers(gomock.Any()).Return([]models.User{{UserID: 1, Email: "luke@rebels.org", Password: "hash"}}, nil)

	require.NoError(t, ta.run("users"))

	assert.JSONEq(t, `[{"id":1,"email":"luke@rebels.org"}]`, ta.out.String())
}

func TestUsers_ByID(t *testing.T) {
	ta := newTestApp(t)
	ta.api.EXPECT().GetUser(gomock.Any(), int64(2)).Return(models.User{UserID: 2, Email: "leia@rebels.org"}, nil)

	require.NoError(t, ta.run("users", "2"))

	assert.JSONEq(t, `{"id":2,"email":"leia@rebels.org"}`, ta.out.String())
}

func TestPeople_NotFound(t *testing.T) {
	ta := newTestApp(t)
	notFound := fmt.Errorf("%w: Character no encontrado", adapter.ErrNotFound)
	ta.api.EXPECT().GetPerson(gomock.Any(), int64(9)).Return(models.People{}, notFound)

	err := ta.run("people", "9")

	assert.ErrorIs(t, err, adapter.ErrNotFound)
	assert.Empty(t, ta.out.String())
}

func TestPlanets_YAMLOutput(t *testing.T) {
	ta := newTestApp(t)
	ta.api.EXPECT().ListPlanets(gomock.Any()).Return([]models.Planet{{PlanetID: 3, Name: "Hoth", Climate: "frozen", Terrain: "tundra"}}, nil)

	require.NoError(t, ta.run("planets", "-o", "yaml"))

	assert.Contains(t, ta.out.String(), "name: Hoth")
	assert.Contains(t, ta.out.String(), "id: 3")
}

func TestInvalidID(t *testing.T) {
	for _, args := range [][]string{
		{"users", "abc"},
		{"planets", "0"},
		{"favorites", "99999999999999999999"},
	} {
		ta := newTestApp(t)
		err := ta.run(args...)
		assert.ErrorIs(t, err, errInvalidID, "%v", args)
	}
}

// ── favorites ────────────────────────────────────────────────────────────────

func TestFavorites_List(t *testing.T) {
	ta := newTestApp(t)
	ta.api.EXPECT().ListFavorites(gomock.Any(), int64(1)).Return([]models.Favorite{{
		UserID: 1,
		User:   &models.User{UserID: 1, Email: "luke@rebels.org"},
		People: &models.People{PeopleID: 4, Name: "Yoda", Homeworld: "Dagobah"},
	}}, nil)

	require.NoError(t, ta.run("favorites", "1"))

	assert.JSONEq(t, `[{
		"user_id": {"id":1,"email":"luke@rebels.org"},
		"character": {"id":4,"name":"Yoda","homeworld":"Dagobah"},
		"planet": null
	}]`, ta.out.String())
}

func TestFavorite_Add(t *testing.T) {
	ta := newTestApp(t)
	ta.api.EXPECT().AddFavorite(gomock.Any(), int64(1), models.TargetPlanet, int64(3)).
		Return(models.Favorite{UserID: 1, Planet: &models.Planet{PlanetID: 3, Name: "Hoth"}}, nil)

	require.NoError(t, ta.run("favorite", "add", "planet", "3", "--user", "1"))

	assert.Contains(t, ta.out.String(), `"name": "Hoth"`)
}

func TestFavorite_Remove(t *testing.T) {
	ta := newTestApp(t)
	ta.api.EXPECT().RemoveFavorite(gomock.Any(), int64(1), models.TargetPeople, int64(4)).
		Return("Favorito con ID 4 ha sido eliminado", nil)

	require.NoError(t, ta.run("favorite", "rm", "people", "4", "-u", "1"))

	assert.Equal(t, "Favorito con ID 4 ha sido eliminado\n", ta.out.String())
}

func TestFavorite_ArgumentErrors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{name: "missing user", args: []string{"favorite", "add", "people", "1"}, wantErr: errNoUser},
		{name: "unknown target", args: []string{"favorite", "add", "starship", "1", "--user", "1"}, wantErr: errUnknownTarget},
		{name: "bad target id", args: []string{"favorite", "remove", "planet", "x", "--user", "1"}, wantErr: errInvalidID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ta := newTestApp(t)
			assert.ErrorIs(t, ta.run(tt.args...), tt.wantErr)
		})
	}
}

// ── root flags ───────────────────────────────────────────────────────────────

func TestRoutes_FlagsOverrideConfig(t *testing.T) {
	ta := newTestApp(t)
	ta.api.EXPECT().Routes(gomock.Any()).Return(models.Sitemap{"/users": {"GET"}}, nil)

	require.NoError(t, ta.run("routes", "--address", "http://swapi.local:8080", "--timeout", "2s"))

	require.NotNil(t, ta.adapter)
	assert.Equal(t, "http://swapi.local:8080", ta.adapter.HTTPAddress)
	assert.Equal(t, 2*time.Second, ta.adapter.RequestTimeout)
	assert.JSONEq(t, `{"/users":["GET"]}`, ta.out.String())
}

func TestRoot_InvalidFlags(t *testing.T) {
	ta := newTestApp(t)
	assert.ErrorIs(t, ta.run("users", "-o", "xml"), errUnknownFormat)

	ta = newTestApp(t)
	assert.Error(t, ta.run("users", "--timeout", "soon"))
}

func TestVersion(t *testing.T) {
	ta := newTestApp(t)

	require.NoError(t, ta.run("version"))

	assert.JSONEq(t, `{"version":"1.2.3","date":"2026-10-19","commit":"abc123"}`, ta.out.String())
}
