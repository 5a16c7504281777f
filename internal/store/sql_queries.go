package store

import (
	"fmt"

	"github.com/MKhiriev/go-starwars-favorites/models"
	"github.com/Masterminds/squirrel"
)

var (
	userColumns   = []string{"id", "email", "password", "is_active"}
	peopleColumns = []string{"id", "name", "homeworld"}
	planetColumns = []string{"id", "name", "climate", "terrain"}

	// favoriteColumns follow the order expected by scanFavorite.
	favoriteColumns = []string{
		"f.id", "f.user_id", "f.people_id", "f.planet_id",
		"u.id", "u.email",
		"p.id", "p.name", "p.homeworld",
		"pl.id", "pl.name", "pl.climate", "pl.terrain",
	}
)

func buildQuery(sqlizer squirrel.Sqlizer) (string, []any, error) {
	query, args, err := sqlizer.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// ── users ─────────────────────────────────────────────────────────────────────

func buildListUsersQuery(b squirrel.StatementBuilderType) (string, []any, error) {
	return buildQuery(b.Select(userColumns...).From("users").OrderBy("id"))
}

func buildFindUserByIDQuery(b squirrel.StatementBuilderType, userID int64) (string, []any, error) {
	return buildQuery(b.Select(userColumns...).From("users").Where(squirrel.Eq{"id": userID}))
}

func buildCreateUserQuery(b squirrel.StatementBuilderType, user models.User) (string, []any, error) {
	return buildQuery(b.Insert("users").
		Columns("email", "password", "is_active").
		Values(user.Email, user.Password, user.IsActive).
		Suffix("RETURNING id"))
}

// ── people ────────────────────────────────────────────────────────────────────

func buildListPeopleQuery(b squirrel.StatementBuilderType) (string, []any, error) {
	return buildQuery(b.Select(peopleColumns...).From("people").OrderBy("id"))
}

func buildFindPersonByIDQuery(b squirrel.StatementBuilderType, peopleID int64) (string, []any, error) {
	return buildQuery(b.Select(peopleColumns...).From("people").Where(squirrel.Eq{"id": peopleID}))
}

func buildCreatePersonQuery(b squirrel.StatementBuilderType, person models.People) (string, []any, error) {
	return buildQuery(b.Insert("people").
		Columns("name", "homeworld").
		Values(person.Name, person.Homeworld).
		Suffix("RETURNING id"))
}

// ── planets ───────────────────────────────────────────────────────────────────

func buildListPlanetsQuery(b squirrel.StatementBuilderType) (string, []any, error) {
	return buildQuery(b.Select(planetColumns...).From("planets").OrderBy("id"))
}

func buildFindPlanetByIDQuery(b squirrel.StatementBuilderType, planetID int64) (string, []any, error) {
	return buildQuery(b.Select(planetColumns...).From("planets").Where(squirrel.Eq{"id": planetID}))
}

func buildCreatePlanetQuery(b squirrel.StatementBuilderType, planet models.Planet) (string, []any, error) {
	return buildQuery(b.Insert("planets").
		Columns("name", "climate", "terrain").
		Values(planet.Name, planet.Climate, planet.Terrain).
		Suffix("RETURNING id"))
}

// ── favorites ─────────────────────────────────────────────────────────────────

// selectFavorites selects favorites with their user, character and planet
// resolved through LEFT JOINs; missing relations come back as NULL columns.
func selectFavorites(b squirrel.StatementBuilderType) squirrel.SelectBuilder {
	return b.Select(favoriteColumns...).
		From("favorites f").
		LeftJoin("users u ON u.id = f.user_id").
		LeftJoin("people p ON p.id = f.people_id").
		LeftJoin("planets pl ON pl.id = f.planet_id")
}

func buildListFavoritesByUserQuery(b squirrel.StatementBuilderType, userID int64) (string, []any, error) {
	return buildQuery(selectFavorites(b).
		Where(squirrel.Eq{"f.user_id": userID}).
		OrderBy("f.id"))
}

func buildFindFavoriteByIDQuery(b squirrel.StatementBuilderType, favoriteID int64) (string, []any, error) {
	return buildQuery(selectFavorites(b).Where(squirrel.Eq{"f.id": favoriteID}))
}

// buildFindFirstFavoriteQuery selects the favorite with the lowest id among
// those matching filter.
func buildFindFirstFavoriteQuery(b squirrel.StatementBuilderType, filter models.FavoriteFilter) (string, []any, error) {
	where := squirrel.And{squirrel.Eq{"f.user_id": filter.UserID}}
	if filter.PeopleID != nil {
		where = append(where, squirrel.Eq{"f.people_id": *filter.PeopleID})
	}
	if filter.PlanetID != nil {
		where = append(where, squirrel.Eq{"f.planet_id": *filter.PlanetID})
	}

	return buildQuery(selectFavorites(b).
		Where(where).
		OrderBy("f.id").
		Limit(1))
}

func buildCreateFavoriteQuery(b squirrel.StatementBuilderType, favorite models.Favorite) (string, []any, error) {
	return buildQuery(b.Insert("favorites").
		Columns("user_id", "people_id", "planet_id").
		Values(favorite.UserID, favorite.PeopleID, favorite.PlanetID).
		Suffix("RETURNING id"))
}

func buildDeleteFavoriteQuery(b squirrel.StatementBuilderType, favoriteID int64) (string, []any, error) {
	return buildQuery(b.Delete("favorites").Where(squirrel.Eq{"id": favoriteID}))
}
