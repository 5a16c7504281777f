// Package fixtures reads the YAML seed data used to populate an empty
// catalog of users, characters and planets.
//
// A fixtures file looks like:
//
//	users:
//	  - email: luke@rebels.org
//	    password: use-the-force
//	    is_active: true
//	people:
//	  - name: Luke Skywalker
//	    homeworld: Tatooine
//	planets:
//	  - name: Tatooine
//	    climate: arid
//	    terrain: desert
//
// Unknown keys are rejected so typos do not silently drop data.
package fixtures

import (
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/MKhiriev/go-starwars-favorites/models"
)

var (
	ErrReadingFixtures = errors.New("error reading fixtures file")
	ErrParsingFixtures = errors.New("error parsing fixtures")
)

// Load reads and parses the fixtures file at path.
func Load(path string) (models.Fixtures, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.Fixtures{}, fmt.Errorf("%w %s: %w", ErrReadingFixtures, path, err)
	}

	return Parse(data)
}

// Parse decodes fixtures from YAML data.
func Parse(data []byte) (models.Fixtures, error) {
	var fixtures models.Fixtures
	if err := yaml.UnmarshalWithOptions(data, &fixtures, yaml.Strict()); err != nil {
		return models.Fixtures{}, fmt.Errorf("%w: %w", ErrParsingFixtures, err)
	}

	return fixtures, nil
}
