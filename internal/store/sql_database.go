package store

import (
	"database/sql"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/work-notes/internal/logger"
	"github.com/MKhiriev/work-notes/migrations"
)

// Supported values of config.DB.Driver.
const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "pgx"
)

// DB wraps a *sql.DB together with the dialect details the blob store needs.
type DB struct {
	*sql.DB
	driver             string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// ErrorClassificator tells transient driver errors from permanent ones so
// they can be reported with the right severity.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

func newDB(conn *sql.DB, driver string, classificator ErrorClassificator, log *logger.Logger) *DB {
	var placeholder sq.PlaceholderFormat = sq.Question
	if driver == DriverPostgres {
		placeholder = sq.Dollar
	}

	return &DB{
		DB:                 conn,
		driver:             driver,
		builder:            sq.StatementBuilder.PlaceholderFormat(placeholder),
		errorClassificator: classificator,
		logger:             log,
	}
}

// Migrate brings the schema up to date.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}
