package store

import (
	"testing"

	"github.com/MKhiriev/go-starwars-favorites/models"
	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	dollar   = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	question = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)
)

func TestBuildListUsersQuery(t *testing.T) {
	query, args, err := buildListUsersQuery(dollar)
	require.NoError(t, err)
	assert.Equal(t, "SELECT id, email, password, is_active FROM users ORDER BY id", query)
	assert.Empty(t, args)
}

func TestBuildFindByIDQueries_Placeholders(t *testing.T) {
	tests := []struct {
		name  string
		build func(b squirrel.StatementBuilderType) (string, []any, error)
		want  string
	}{
		{
			name:  "users dollar",
			build: func(b squirrel.StatementBuilderType) (string, []any, error) { return buildFindUserByIDQuery(dollar, 4) },
			want:  "SELECT id, email, password, is_active FROM users WHERE id = $1",
		},
		{
			name:  "people question",
			build: func(b squirrel.StatementBuilderType) (string, []any, error) { return buildFindPersonByIDQuery(question, 4) },
			want:  "SELECT id, name, homeworld FROM people WHERE id = ?",
		},
		{
			name:  "planets question",
			build: func(b squirrel.StatementBuilderType) (string, []any, error) { return buildFindPlanetByIDQuery(question, 4) },
			want:  "SELECT id, name, climate, terrain FROM planets WHERE id = ?",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := tt.build(squirrel.StatementBuilder)
			require.NoError(t, err)
			assert.Equal(t, tt.want, query)
			assert.Equal(t, []any{int64(4)}, args)
		})
	}
}

func TestBuildCreateFavoriteQuery(t *testing.T) {
	query, args, err := buildCreateFavoriteQuery(dollar, models.NewFavorite(2, models.TargetPeople, 9))
	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO favorites (user_id,people_id,planet_id) VALUES ($1,$2,$3) RETURNING id", query)
	require.Len(t, args, 3)
	assert.Equal(t, int64(2), args[0])
	assert.Equal(t, int64(9), *args[1].(*int64))
	assert.Nil(t, args[2].(*int64))
}

func TestBuildFindFirstFavoriteQuery(t *testing.T) {
	tests := []struct {
		name      string
		filter    models.FavoriteFilter
		wantWhere string
		wantArgs  []any
	}{
		{
			name:      "by character",
			filter:    models.NewFavoriteFilter(1, models.TargetPeople, 5),
			wantWhere: "WHERE (f.user_id = ? AND f.people_id = ?) ORDER BY f.id LIMIT 1",
			wantArgs:  []any{int64(1), int64(5)},
		},
		{
			name:      "by planet",
			filter:    models.NewFavoriteFilter(1, models.TargetPlanet, 3),
			wantWhere: "WHERE (f.user_id = ? AND f.planet_id = ?) ORDER BY f.id LIMIT 1",
			wantArgs:  []any{int64(1), int64(3)},
		},
		{
			name:      "user only",
			filter:    models.FavoriteFilter{UserID: 7},
			wantWhere: "WHERE (f.user_id = ?) ORDER BY f.id LIMIT 1",
			wantArgs:  []any{int64(7)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildFindFirstFavoriteQuery(question, tt.filter)
			require.NoError(t, err)
			assert.Contains(t, query, "FROM favorites f LEFT JOIN users u ON u.id = f.user_id LEFT JOIN people p ON p.id = f.people_id LEFT JOIN planets pl ON pl.id = f.planet_id")
			assert.Contains(t, query, tt.wantWhere)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestBuildDeleteFavoriteQuery(t *testing.T) {
	query, args, err := buildDeleteFavoriteQuery(dollar, 15)
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM favorites WHERE id = $1", query)
	assert.Equal(t, []any{int64(15)}, args)
}
