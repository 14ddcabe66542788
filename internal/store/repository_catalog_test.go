package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-photo-catalog/internal/config"
	"github.com/MKhiriev/go-photo-catalog/internal/logger"
	"github.com/MKhiriev/go-photo-catalog/migrations"
	"github.com/MKhiriev/go-photo-catalog/models"
)

var baseTime = time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

func newSQLiteRepo(t *testing.T) CatalogRepository {
	t.Helper()
	db, err := NewConnectSQLite(context.Background(), config.DB{DSN: ":memory:"}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.Migrate())
	return NewCatalogRepository(db, logger.Nop())
}

// newMockRepo wraps a sqlmock connection with the sqlite dialect.
func newMockRepo(t *testing.T) (CatalogRepository, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	db := &DB{
		DB:                 conn,
		dialect:            migrations.DialectSQLite,
		queries:            newSQLQueries(sq.Question),
		errorClassificator: NewSQLiteErrorClassifier(),
		logger:             logger.Nop(),
	}
	return NewCatalogRepository(db, logger.Nop()), mock
}

func testFile(id int64, tags ...string) models.File {
	return models.File{
		ID:           id,
		Extension:    "jpg",
		CreationDate: baseTime,
		Tags:         tags,
	}
}

// ── Syncpoints ───────────────────────────────────────────────────────────────

func TestCatalogRepository_Syncpoints_OrderedAndDeduplicated(t *testing.T) {
	repo := newSQLiteRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.AddSyncpoint(ctx, models.NewSyncPoint(baseTime.Add(2*time.Hour))))
	require.NoError(t, repo.AddSyncpoint(ctx, models.NewSyncPoint(baseTime)))
	require.NoError(t, repo.AddSyncpoint(ctx, models.NewSyncPoint(baseTime.Add(time.Hour))))
	require.NoError(t, repo.AddSyncpoint(ctx, models.NewSyncPoint(baseTime)))

	got, err := repo.GetSyncpoints(ctx)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.True(t, got[0].LastChange.Equal(baseTime))
	assert.True(t, got[1].LastChange.Equal(baseTime.Add(time.Hour)))
	assert.True(t, got[2].LastChange.Equal(baseTime.Add(2*time.Hour)))
}

func TestCatalogRepository_Syncpoints_Empty(t *testing.T) {
	repo := newSQLiteRepo(t)

	got, err := repo.GetSyncpoints(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}

// ── Changes ──────────────────────────────────────────────────────────────────

func TestCatalogRepository_Changes_AfterTimestampIsStrict(t *testing.T) {
	repo := newSQLiteRepo(t)
	ctx := context.Background()

	first := models.NewTagAdded(baseTime, 1, "a")
	second := models.NewTagAdded(baseTime.Add(time.Minute), 1, "b")
	third := models.NewCreationDateChanged(baseTime.Add(2*time.Minute), 1, baseTime.Add(-time.Hour))

	for _, c := range []models.Change{third, first, second} {
		require.NoError(t, repo.AddChange(ctx, c))
	}

	all, err := repo.GetAllChanges(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, first.ID, all[0].ID)
	assert.Equal(t, third.ID, all[2].ID)

	after, err := repo.GetChangesAfterTimestamp(ctx, second.Timestamp)
	require.NoError(t, err)
	require.Len(t, after, 1)
	assert.Equal(t, third.ID, after[0].ID)
	assert.NoError(t, after[0].Verify())
	require.NotNil(t, after[0].ChangeType.Update)
	require.NotNil(t, after[0].ChangeType.Update.Date)
	assert.True(t, after[0].ChangeType.Update.Date.Equal(baseTime.Add(-time.Hour)))
}

func TestCatalogRepository_AddChange_Duplicate(t *testing.T) {
	repo := newSQLiteRepo(t)
	ctx := context.Background()
	change := models.NewFileAdded(baseTime, 9)

	require.NoError(t, repo.AddChange(ctx, change))
	err := repo.AddChange(ctx, change)
	assert.ErrorIs(t, err, ErrChangeAlreadyExists)
}

func TestCatalogRepository_HasChange(t *testing.T) {
	repo := newSQLiteRepo(t)
	ctx := context.Background()
	change := models.NewTagRemoved(baseTime, 4, "x")

	has, err := repo.HasChange(ctx, change.ID)
	require.NoError(t, err)
	assert.False(t, has)

	require.NoError(t, repo.AddChange(ctx, change))

	has, err = repo.HasChange(ctx, change.ID)
	require.NoError(t, err)
	assert.True(t, has)
}

// ── Files ────────────────────────────────────────────────────────────────────

func TestCatalogRepository_AddFile_RoundTrip(t *testing.T) {
	repo := newSQLiteRepo(t)
	ctx := context.Background()
	file := testFile(1, "sea", "sea", "summer")

	require.NoError(t, repo.AddFile(ctx, file, models.NewFileAdded(baseTime, 1)))

	got, err := repo.GetFileWithID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, file.ID, got.ID)
	assert.Equal(t, "jpg", got.Extension)
	assert.Equal(t, []string{"sea", "sea", "summer"}, got.Tags)
	assert.True(t, got.CreationDate.Equal(baseTime))
	assert.False(t, got.Removed)

	changes, err := repo.GetAllChanges(ctx)
	require.NoError(t, err)
	assert.Len(t, changes, 1)
}

func TestCatalogRepository_AddFile_DuplicateRollsBackChange(t *testing.T) {
	repo := newSQLiteRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.AddFile(ctx, testFile(1), models.NewFileAdded(baseTime, 1)))

	second := models.NewFileAdded(baseTime.Add(time.Second), 1)
	err := repo.AddFile(ctx, testFile(1), second)
	require.ErrorIs(t, err, ErrFileAlreadyExists)

	has, err := repo.HasChange(ctx, second.ID)
	require.NoError(t, err)
	assert.False(t, has)
}

func TestCatalogRepository_GetFileWithID_Missing(t *testing.T) {
	repo := newSQLiteRepo(t)

	_, err := repo.GetFileWithID(context.Background(), 404)
	assert.ErrorIs(t, err, ErrNoSuchFileInDatabase)
}

func TestCatalogRepository_UpdateFileWithoutCreatingChange(t *testing.T) {
	repo := newSQLiteRepo(t)
	ctx := context.Background()
	require.NoError(t, repo.AddFile(ctx, testFile(1), models.NewFileAdded(baseTime, 1)))

	file := testFile(1, "edited")
	file.Removed = true
	require.NoError(t, repo.UpdateFileWithoutCreatingChange(ctx, file))

	got, err := repo.GetFileWithID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"edited"}, got.Tags)
	assert.True(t, got.Removed)

	changes, err := repo.GetAllChanges(ctx)
	require.NoError(t, err)
	assert.Len(t, changes, 1)

	err = repo.UpdateFileWithoutCreatingChange(ctx, testFile(2))
	assert.ErrorIs(t, err, ErrNoSuchFileInDatabase)
}

// ── MutateFile ───────────────────────────────────────────────────────────────

func TestCatalogRepository_MutateFile(t *testing.T) {
	repo := newSQLiteRepo(t)
	ctx := context.Background()
	require.NoError(t, repo.AddFile(ctx, testFile(1, "a"), models.NewFileAdded(baseTime, 1)))

	change := models.NewTagAdded(baseTime.Add(time.Minute), 1, "b")
	err := repo.MutateFile(ctx, 1, change, func(f *models.File) error {
		f.AddTag("b")
		return nil
	})
	require.NoError(t, err)

	got, err := repo.GetFileWithID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, got.Tags)

	has, err := repo.HasChange(ctx, change.ID)
	require.NoError(t, err)
	assert.True(t, has)
}

func TestCatalogRepository_MutateFile_ErrorRollsBack(t *testing.T) {
	repo := newSQLiteRepo(t)
	ctx := context.Background()
	require.NoError(t, repo.AddFile(ctx, testFile(1, "a"), models.NewFileAdded(baseTime, 1)))

	change := models.NewTagRemoved(baseTime.Add(time.Minute), 1, "a")
	mutateErr := errors.New("refused")
	err := repo.MutateFile(ctx, 1, change, func(f *models.File) error {
		f.RemoveTag("a")
		return mutateErr
	})
	require.ErrorIs(t, err, mutateErr)

	got, err := repo.GetFileWithID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, got.Tags)

	has, err := repo.HasChange(ctx, change.ID)
	require.NoError(t, err)
	assert.False(t, has)
}

func TestCatalogRepository_MutateFile_MissingFile(t *testing.T) {
	repo := newSQLiteRepo(t)
	ctx := context.Background()
	change := models.NewTagAdded(baseTime, 77, "x")

	err := repo.MutateFile(ctx, 77, change, func(*models.File) error { return nil })
	require.ErrorIs(t, err, ErrNoSuchFileInDatabase)

	has, err := repo.HasChange(ctx, change.ID)
	require.NoError(t, err)
	assert.False(t, has)
}

func TestCatalogRepository_MutateFile_DuplicateChange(t *testing.T) {
	repo := newSQLiteRepo(t)
	ctx := context.Background()
	require.NoError(t, repo.AddFile(ctx, testFile(1), models.NewFileAdded(baseTime, 1)))

	change := models.NewTagAdded(baseTime.Add(time.Minute), 1, "x")
	add := func(f *models.File) error { f.AddTag("x"); return nil }

	require.NoError(t, repo.MutateFile(ctx, 1, change, add))
	err := repo.MutateFile(ctx, 1, change, add)
	require.ErrorIs(t, err, ErrChangeAlreadyExists)

	got, err := repo.GetFileWithID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"x"}, got.Tags)
}

// ── sqlmock failure paths ────────────────────────────────────────────────────

func TestCatalogRepository_GetSyncpoints_QueryError(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT last_change FROM syncpoints")).
		WillReturnError(sql.ErrConnDone)

	_, err := repo.GetSyncpoints(context.Background())
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCatalogRepository_GetAllChanges_BadChangeType(t *testing.T) {
	repo, mock := newMockRepo(t)
	rows := sqlmock.NewRows(changeColumns).AddRow(int64(1), baseTime.UnixNano(), int64(2), "{not json")
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, changed_at, affected_file, change_type FROM changes")).
		WillReturnRows(rows)

	_, err := repo.GetAllChanges(context.Background())
	assert.ErrorIs(t, err, ErrEncodingColumn)
}

func TestCatalogRepository_GetChangesAfterTimestamp_PassesNanos(t *testing.T) {
	repo, mock := newMockRepo(t)
	ts := baseTime.Add(123 * time.Nanosecond)
	mock.ExpectQuery(regexp.QuoteMeta("WHERE changed_at > ?")).
		WithArgs(ts.UnixNano()).
		WillReturnRows(sqlmock.NewRows(changeColumns))

	got, err := repo.GetChangesAfterTimestamp(context.Background(), ts)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCatalogRepository_AddChange_ExecError(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO changes")).
		WillReturnError(errors.New("disk full"))

	err := repo.AddChange(context.Background(), models.NewFileAdded(baseTime, 1))
	assert.ErrorIs(t, err, ErrExecutingStatement)
}

func TestCatalogRepository_MutateFile_BeginError(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectBegin().WillReturnError(errors.New("no connection"))

	err := repo.MutateFile(context.Background(), 1, models.NewFileRemoved(baseTime, 1), func(*models.File) error { return nil })
	assert.ErrorIs(t, err, ErrBeginningTransaction)
}

func TestCatalogRepository_AddSyncpoint_ExecError(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO syncpoints (last_change) VALUES (?) ON CONFLICT (last_change) DO NOTHING")).
		WithArgs(baseTime.UnixNano()).
		WillReturnError(errors.New("readonly"))

	err := repo.AddSyncpoint(context.Background(), models.NewSyncPoint(baseTime))
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NoError(t, mock.ExpectationsWereMet())
}
