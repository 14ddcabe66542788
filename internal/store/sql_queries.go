package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

const (
	filesTable      = "files"
	changesTable    = "changes"
	syncpointsTable = "syncpoints"
)

var (
	fileColumns   = []string{"id", "extension", "creation_date", "tags", "removed"}
	changeColumns = []string{"id", "changed_at", "affected_file", "change_type"}
)

// sqlQueries builds catalog statements for a single placeholder dialect.
type sqlQueries struct {
	builder sq.StatementBuilderType
}

func newSQLQueries(format sq.PlaceholderFormat) sqlQueries {
	return sqlQueries{builder: sq.StatementBuilder.PlaceholderFormat(format)}
}

func (q sqlQueries) selectSyncpoints() (string, []any, error) {
	return q.builder.
		Select("last_change").
		From(syncpointsTable).
		OrderBy("last_change ASC").
		ToSql()
}

func (q sqlQueries) insertSyncpoint(lastChange time.Time) (string, []any, error) {
	return q.builder.
		Insert(syncpointsTable).
		Columns("last_change").
		Values(lastChange.UnixNano()).
		Suffix("ON CONFLICT (last_change) DO NOTHING").
		ToSql()
}

// selectChanges selects the changelog, restricted to changes strictly newer
// than after when it is set.
func (q sqlQueries) selectChanges(after *time.Time) (string, []any, error) {
	query := q.builder.
		Select(changeColumns...).
		From(changesTable)

	if after != nil {
		query = query.Where(sq.Gt{"changed_at": after.UnixNano()})
	}

	return query.OrderBy("changed_at ASC").ToSql()
}

func (q sqlQueries) selectChangeExists(id uint32) (string, []any, error) {
	return q.builder.
		Select("1").
		From(changesTable).
		Where(sq.Eq{"id": int64(id)}).
		Limit(1).
		ToSql()
}

func (q sqlQueries) insertChange(row changeRow) (string, []any, error) {
	return q.builder.
		Insert(changesTable).
		Columns(changeColumns...).
		Values(row.id, row.changedAt, row.affectedFile, row.changeType).
		ToSql()
}

func (q sqlQueries) selectFile(id int64) (string, []any, error) {
	return q.builder.
		Select(fileColumns...).
		From(filesTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func (q sqlQueries) insertFile(row fileRow) (string, []any, error) {
	return q.builder.
		Insert(filesTable).
		Columns(fileColumns...).
		Values(row.id, row.extension, row.creationDate, row.tags, row.removed).
		ToSql()
}

func (q sqlQueries) updateFile(row fileRow) (string, []any, error) {
	return q.builder.
		Update(filesTable).
		Set("extension", row.extension).
		Set("creation_date", row.creationDate).
		Set("tags", row.tags).
		Set("removed", row.removed).
		Where(sq.Eq{"id": row.id}).
		ToSql()
}
