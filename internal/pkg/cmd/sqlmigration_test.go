package cmd_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcodiri/micros-chess/internal/pkg/cmd"
	"github.com/marcodiri/micros-chess/pkg/log"
	"github.com/marcodiri/micros-chess/pkg/sql"
)

func TestSQLMigrations_MustRegisterExecutesOnce(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("select pg_advisory_xact_lock($1)")).
		WithArgs(sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("create table if not exists migration")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta("select id from migration")).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectExec(regexp.QuoteMeta("insert into migration (id) values ($1)")).
		WithArgs("001-games").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("create table games (id uuid)")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	db := sql.WrapDatabase(sqlx.NewDb(sqlDB, "sqlmock"), log.NewStub())
	migrations := cmd.NewSQLMigrations(context.Background(), db, log.NewStub())
	source := []sql.Migration{{ID: "001-games", SQL: "create table games (id uuid)"}}

	migrations.MustRegister(source)
	migrations.MustRegister(source)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLMigrations_MustRegisterPanicsOnFailure(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	mock.ExpectBegin().WillReturnError(assert.AnError)

	db := sql.WrapDatabase(sqlx.NewDb(sqlDB, "sqlmock"), log.NewStub())
	migrations := cmd.NewSQLMigrations(context.Background(), db, log.NewStub())

	assert.Panics(t, func() {
		migrations.MustRegister([]sql.Migration{{ID: "001-games", SQL: "create table games (id uuid)"}})
	})
}
