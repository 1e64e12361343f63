package database

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestEnsureDatabaseCreatesWhenAbsent(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	mock.ExpectQuery(`SELECT 1 FROM pg_database WHERE datname = \$1`).
		WithArgs("form").
		WillReturnRows(sqlmock.NewRows([]string{"?column?"}))
	mock.ExpectExec(`CREATE DATABASE "form"`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := ensureDatabase(db, "form"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestEnsureDatabaseNoOpWhenPresent(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	mock.ExpectQuery(`SELECT 1 FROM pg_database WHERE datname = \$1`).
		WithArgs("form").
		WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(1))

	// No CREATE DATABASE expected; re-running bootstrap is a no-op
	if err := ensureDatabase(db, "form"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}
