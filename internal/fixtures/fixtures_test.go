package fixtures

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-starwars-favorites/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
users:
  - email: luke@rebels.org
    password: use-the-force
    is_active: true
people:
  - name: Luke Skywalker
    homeworld: Tatooine
planets:
  - name: Hoth
    climate: frozen
    terrain: tundra
`

func TestParse(t *testing.T) {
	fixtures, err := Parse([]byte(sample))
	require.NoError(t, err)

	assert.Equal(t, []models.User{{Email: "luke@rebels.org", Password: "use-the-force", IsActive: true}}, fixtures.Users)
	assert.Equal(t, []models.People{{Name: "Luke Skywalker", Homeworld: "Tatooine"}}, fixtures.People)
	assert.Equal(t, []models.Planet{{Name: "Hoth", Climate: "frozen", Terrain: "tundra"}}, fixtures.Planets)
}

func TestParse_Empty(t *testing.T) {
	fixtures, err := Parse([]byte(""))
	require.NoError(t, err)
	assert.Empty(t, fixtures.Users)
	assert.Empty(t, fixtures.People)
	assert.Empty(t, fixtures.Planets)
}

func TestParse_UnknownField(t *testing.T) {
	_, err := Parse([]byte("people:\n  - name: Yoda\n    home_world: Dagobah\n"))
	assert.ErrorIs(t, err, ErrParsingFixtures)
}

func TestParse_Malformed(t *testing.T) {
	_, err := Parse([]byte("people: [name: Yoda"))
	assert.ErrorIs(t, err, ErrParsingFixtures)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fixtures.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))

	fixtures, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, fixtures.People, 1)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, ErrReadingFixtures)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_BundledFixtures(t *testing.T) {
	fixtures, err := Load(filepath.Join("..", "..", "fixtures", "starwars.yaml"))
	require.NoError(t, err)

	assert.NotEmpty(t, fixtures.Users)
	assert.NotEmpty(t, fixtures.People)
	assert.NotEmpty(t, fixtures.Planets)
	for _, u := range fixtures.Users {
		assert.NotEmpty(t, u.Email)
		assert.NotEmpty(t, u.Password)
	}
}
