package models

// Fixtures is the seed data set loaded into an empty store.
type Fixtures struct {
	Users   []User   `yaml:"users"`
	People  []People `yaml:"people"`
	Planets []Planet `yaml:"planets"`
}

// SeedReport counts rows created and skipped during seeding.
type SeedReport struct {
	Created int `json:"created"`
	Skipped int `json:"skipped"`
}
