package database

import (
	"context"
	"errors"
	"testing"
	"testing/fstest"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })
	return sqlx.NewDb(mockDB, "sqlmock"), mock
}

func testMigrations() fstest.MapFS {
	return fstest.MapFS{
		"000002_index.up.sql": {Data: []byte("CREATE INDEX idx_x ON t (a)\n")},
		"000001_table.up.sql": {Data: []byte("CREATE TABLE t (a NUMBER);")},
		"README.md":           {Data: []byte("not a migration")},
	}
}

func TestRunMigrations_AppliesInOrder(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectExec(`CREATE TABLE schema_migrations`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT version FROM schema_migrations`).
		WillReturnRows(sqlmock.NewRows([]string{"version"}))
	mock.ExpectExec(`^CREATE TABLE t \(a NUMBER\)$`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`INSERT INTO schema_migrations`).WithArgs("000001_table").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`^CREATE INDEX idx_x ON t \(a\)$`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`INSERT INTO schema_migrations`).WithArgs("000002_index").WillReturnResult(sqlmock.NewResult(0, 1))

	ran, err := RunMigrations(context.Background(), db, testMigrations())

	require.NoError(t, err)
	assert.Equal(t, []string{"000001_table", "000002_index"}, ran)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRunMigrations_SkipsApplied(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectExec(`CREATE TABLE schema_migrations`).
		WillReturnError(errors.New("ORA-00955: name is already used by an existing object"))
	mock.ExpectQuery(`SELECT version FROM schema_migrations`).
		WillReturnRows(sqlmock.NewRows([]string{"version"}).AddRow("000001_table"))
	mock.ExpectExec(`^CREATE INDEX idx_x ON t \(a\)$`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`INSERT INTO schema_migrations`).WithArgs("000002_index").WillReturnResult(sqlmock.NewResult(0, 1))

	ran, err := RunMigrations(context.Background(), db, testMigrations())

	require.NoError(t, err)
	assert.Equal(t, []string{"000002_index"}, ran)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRunMigrations_StopsOnFailure(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectExec(`CREATE TABLE schema_migrations`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT version FROM schema_migrations`).
		WillReturnRows(sqlmock.NewRows([]string{"version"}))
	mock.ExpectExec(`^CREATE TABLE t`).WillReturnError(errors.New("ORA-01031: insufficient privileges"))

	ran, err := RunMigrations(context.Background(), db, testMigrations())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "000001_table.up.sql")
	assert.Empty(t, ran)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRunMigrations_VersionTableFailure(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectExec(`CREATE TABLE schema_migrations`).WillReturnError(errors.New("ORA-12541: TNS:no listener"))

	_, err := RunMigrations(context.Background(), db, testMigrations())

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
