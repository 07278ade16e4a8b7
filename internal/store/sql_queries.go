package store

import (
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
)

const blobsTable = "note_blobs"

const upsertSuffix = "ON CONFLICT (name) DO UPDATE SET body = EXCLUDED.body, modified_at = EXCLUDED.modified_at"

// escapeLike escapes LIKE wildcards so a suffix is matched literally.
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

func buildListQuery(b sq.StatementBuilderType, suffix string) (string, []any, error) {
	return b.Select("name", "modified_at").
		From(blobsTable).
		Where(sq.Expr(`LOWER(name) LIKE ? ESCAPE '\'`, "%"+escapeLike(strings.ToLower(suffix)))).
		ToSql()
}

func buildReadQuery(b sq.StatementBuilderType, name string) (string, []any, error) {
	return b.Select("body").
		From(blobsTable).
		Where(sq.Eq{"name": name}).
		ToSql()
}

func buildWriteQuery(b sq.StatementBuilderType, name string, data []byte, now time.Time) (string, []any, error) {
	return b.Insert(blobsTable).
		Columns("name", "body", "modified_at").
		Values(name, string(data), now.UTC()).
		Suffix(upsertSuffix).
		ToSql()
}

func buildDeleteQuery(b sq.StatementBuilderType, name string) (string, []any, error) {
	return b.Delete(blobsTable).
		Where(sq.Eq{"name": name}).
		ToSql()
}

func buildExistsQuery(b sq.StatementBuilderType, name string) (string, []any, error) {
	return b.Select("COUNT(1)").
		From(blobsTable).
		Where(sq.Eq{"name": name}).
		ToSql()
}
