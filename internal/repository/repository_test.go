package repository

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"churchapi/internal/database"
)

// newMockDB wires sqlmock behind the postgres dialect so tests also see the
// placeholder rewriting
func newMockDB(t *testing.T) (*database.DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
		conn.Close()
	})

	return database.Wrap(conn, database.NewPostgresDialect()), mock
}
