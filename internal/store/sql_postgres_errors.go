package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification says whether a failed statement might succeed later.
// Nothing in the store retries; the class only changes how failures are logged.
type ErrorClassification int

const (
	// Permanent failures are schema, constraint or data problems.
	Permanent ErrorClassification = iota

	// Transient failures are connection losses, deadlocks and server restarts.
	Transient
)

// String returns the lowercase class name used in log fields.
func (c ErrorClassification) String() string {
	if c == Transient {
		return "transient"
	}
	return "permanent"
}

// PostgresErrorClassifier implements [ErrorClassificator] for PostgreSQL.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier].
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify unwraps err to a *pgconn.PgError and inspects its SQLSTATE class.
// Errors that are not postgres errors are [Permanent].
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	var pgErr *pgconn.PgError
	if err == nil || !errors.As(err, &pgErr) {
		return Permanent
	}

	switch {
	case pgerrcode.IsConnectionException(pgErr.Code),
		pgerrcode.IsTransactionRollback(pgErr.Code),
		pgErr.Code == pgerrcode.CannotConnectNow,
		pgErr.Code == pgerrcode.AdminShutdown:
		return Transient
	}

	return Permanent
}
