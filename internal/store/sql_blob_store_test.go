package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/work-notes/internal/logger"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)

func newTestSQLStore(t *testing.T, driver string) (*sqlBlobStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	l := logger.Nop()
	s := &sqlBlobStore{
		DB:     newDB(db, driver, NewPostgresErrorClassifier(), l),
		now:    func() time.Time { return fixedNow },
		logger: l,
	}
	return s, mock
}

func TestSQLBlobStore_List(t *testing.T) {
	s, mock := newTestSQLStore(t, DriverSQLite)

	rows := sqlmock.NewRows([]string{"name", "modified_at"}).
		AddRow("2025-01-15.txt", fixedNow).
		AddRow("groceries.txt", fixedNow.Add(-time.Hour))

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT name, modified_at FROM note_blobs WHERE LOWER(name) LIKE ? ESCAPE '\'`)).
		WithArgs("%.txt").
		WillReturnRows(rows)

	items, err := s.List(context.Background(), ".TXT")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, BlobInfo{Name: "2025-01-15.txt", ModifiedAt: fixedNow}, items[0])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLBlobStore_List_PostgresPlaceholders(t *testing.T) {
	s, mock := newTestSQLStore(t, DriverPostgres)

	mock.ExpectQuery(regexp.QuoteMeta(`LIKE $1 ESCAPE`)).
		WithArgs("%.txt").
		WillReturnRows(sqlmock.NewRows([]string{"name", "modified_at"}))

	items, err := s.List(context.Background(), ".txt")
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLBlobStore_List_QueryError(t *testing.T) {
	s, mock := newTestSQLStore(t, DriverPostgres)

	mock.ExpectQuery("SELECT name, modified_at").
		WillReturnError(&pgconn.PgError{Code: pgerrcode.ConnectionFailure})

	_, err := s.List(context.Background(), ".txt")
	assert.ErrorIs(t, err, ErrBlobIO)
}

func TestSQLBlobStore_List_ScanError(t *testing.T) {
	s, mock := newTestSQLStore(t, DriverSQLite)

	mock.ExpectQuery("SELECT name, modified_at").
		WillReturnRows(sqlmock.NewRows([]string{"name"}).AddRow("a.txt"))

	_, err := s.List(context.Background(), ".txt")
	assert.ErrorIs(t, err, ErrBlobIO)
}

func TestSQLBlobStore_Read(t *testing.T) {
	s, mock := newTestSQLStore(t, DriverSQLite)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT body FROM note_blobs WHERE name = ?`)).
		WithArgs("2025-01-15.txt").
		WillReturnRows(sqlmock.NewRows([]string{"body"}).AddRow("retro meeting"))

	got, err := s.Read(context.Background(), "2025-01-15.txt")
	require.NoError(t, err)
	assert.Equal(t, "retro meeting", string(got))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLBlobStore_Read_NotFound(t *testing.T) {
	s, mock := newTestSQLStore(t, DriverSQLite)

	mock.ExpectQuery("SELECT body FROM note_blobs").
		WillReturnError(sql.ErrNoRows)

	_, err := s.Read(context.Background(), "missing.txt")
	assert.ErrorIs(t, err, ErrBlobNotFound)
}

func TestSQLBlobStore_Read_UnsafeName(t *testing.T) {
	s, mock := newTestSQLStore(t, DriverSQLite)

	_, err := s.Read(context.Background(), "../etc/passwd")
	assert.ErrorIs(t, err, ErrUnsafeName)
	assert.NoError(t, mock.ExpectationsWereMet(), "no statement is issued")
}

func TestSQLBlobStore_Write(t *testing.T) {
	s, mock := newTestSQLStore(t, DriverSQLite)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO note_blobs (name,body,modified_at) VALUES (?,?,?) ON CONFLICT (name) DO UPDATE`)).
		WithArgs("2025-01-15.txt", "new body", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := s.Write(context.Background(), "2025-01-15.txt", []byte("new body"))
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLBlobStore_Write_Error(t *testing.T) {
	s, mock := newTestSQLStore(t, DriverPostgres)

	mock.ExpectExec("INSERT INTO note_blobs").
		WillReturnError(errors.New("disk full"))

	err := s.Write(context.Background(), "a.txt", []byte("x"))
	assert.ErrorIs(t, err, ErrBlobIO)
	assert.Contains(t, err.Error(), "disk full")
}

func TestSQLBlobStore_Delete(t *testing.T) {
	s, mock := newTestSQLStore(t, DriverSQLite)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM note_blobs WHERE name = ?`)).
		WithArgs("2025-01-15.txt").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, s.Delete(context.Background(), "2025-01-15.txt"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLBlobStore_Delete_NotFound(t *testing.T) {
	s, mock := newTestSQLStore(t, DriverSQLite)

	mock.ExpectExec("DELETE FROM note_blobs").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := s.Delete(context.Background(), "2025-01-15.txt")
	assert.ErrorIs(t, err, ErrBlobNotFound)
}

func TestSQLBlobStore_Exists(t *testing.T) {
	s, mock := newTestSQLStore(t, DriverSQLite)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(1) FROM note_blobs WHERE name = ?`)).
		WithArgs("a.txt").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(1) FROM note_blobs WHERE name = ?`)).
		WithArgs("b.txt").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	ok, err := s.Exists(context.Background(), "a.txt")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.Exists(context.Background(), "b.txt")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `\%a\_b\\`, escapeLike(`%a_b\`))
	assert.Equal(t, ".txt", escapeLike(".txt"))
}

func TestPostgresErrorClassifier(t *testing.T) {
	c := NewPostgresErrorClassifier()

	assert.Equal(t, Transient, c.Classify(&pgconn.PgError{Code: pgerrcode.ConnectionFailure}))
	assert.Equal(t, Transient, c.Classify(&pgconn.PgError{Code: pgerrcode.DeadlockDetected}))
	assert.Equal(t, Transient, c.Classify(&pgconn.PgError{Code: pgerrcode.CannotConnectNow}))
	assert.Equal(t, Permanent, c.Classify(&pgconn.PgError{Code: pgerrcode.UndefinedTable}))
	assert.Equal(t, Permanent, c.Classify(errors.New("plain")))
	assert.Equal(t, Permanent, c.Classify(nil))
	assert.Equal(t, "transient", Transient.String())
}

func TestPostgresError(t *testing.T) {
	assert.Equal(t, pgerrcode.UniqueViolation, postgresError(&pgconn.PgError{Code: pgerrcode.UniqueViolation}))
	assert.Equal(t, "", postgresError(errors.New("x")))
}
