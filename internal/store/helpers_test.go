package store

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-starwars-favorites/internal/logger"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

// newTestDB returns a PostgreSQL-flavoured DB backed by sqlmock.
func newTestDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err, "failed to create sqlmock")
	t.Cleanup(func() { conn.Close() })

	return newPostgresDB(conn, logger.Nop()), mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code, Message: "pg error " + code}
}

func int64Ptr(v int64) *int64 {
	return &v
}

var favoriteRowColumns = []string{
	"id", "user_id", "people_id", "planet_id",
	"id", "email",
	"id", "name", "homeworld",
	"id", "name", "climate", "terrain",
}
