// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"database/sql"
	"errors"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestMigrate_DBError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	_ = mock // no expectations: the first statement goose issues fails

	err = Migrate(db, "sqlite3")
	if err == nil {
		t.Fatal("expected error from Migrate, got nil")
	}

	if !strings.Contains(err.Error(), "migration error") {
		t.Errorf("expected wrapped migration error, got: %v", err)
	}
}

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB

	err := Migrate(db, "pgx")
	if err == nil {
		t.Fatal("expected error when db is nil, got nil")
	}

	if !errors.Is(err, errNilDB) {
		t.Errorf("expected 'db is nil' error, got: %v", err)
	}
}

func TestDialect(t *testing.T) {
	cases := map[string]string{
		"pgx":      "postgres",
		"postgres": "postgres",
		"sqlite3":  "sqlite3",
		"":         "sqlite3",
	}
	for driver, want := range cases {
		if got := dialect(driver); got != want {
			t.Errorf("dialect(%q) = %q, want %q", driver, got, want)
		}
	}
}
