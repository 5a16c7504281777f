package models

// Planet is a Star Wars planet.
type Planet struct {
	PlanetID int64  `json:"id" yaml:"-"`
	Name     string `json:"name" yaml:"name"`
	Climate  string `json:"climate" yaml:"climate"`
	Terrain  string `json:"terrain" yaml:"terrain"`
}

// TableName returns the name of the database table
// associated with the Planet model.
func (p Planet) TableName() string {
	return "planets"
}
