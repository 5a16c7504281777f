package models

// People is a Star Wars character.
type People struct {
	PeopleID  int64  `json:"id" yaml:"-"`
	Name      string `json:"name" yaml:"name"`
	Homeworld string `json:"homeworld" yaml:"homeworld"`
}

// TableName returns the name of the database table
// associated with the People model.
func (p People) TableName() string {
	return "people"
}
