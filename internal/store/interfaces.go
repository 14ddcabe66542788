package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-photo-catalog/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// CatalogRepository persists catalog entries, the changelog and sync points.
//
// Changes are append-only: there is no method that edits a stored change.
// Every method that creates a change together with a file mutation does so in
// a single transaction.
type CatalogRepository interface {
	// GetSyncpoints returns all recorded sync points, oldest first.
	GetSyncpoints(ctx context.Context) ([]models.SyncPoint, error)
	// AddSyncpoint records a sync point. Recording an existing one is a no-op.
	AddSyncpoint(ctx context.Context, syncpoint models.SyncPoint) error

	// GetAllChanges returns the whole changelog ordered by timestamp.
	GetAllChanges(ctx context.Context) ([]models.Change, error)
	// GetChangesAfterTimestamp returns changes strictly newer than ts.
	GetChangesAfterTimestamp(ctx context.Context, ts time.Time) ([]models.Change, error)
	// AddChange appends a change. Returns ErrChangeAlreadyExists on a duplicate id.
	AddChange(ctx context.Context, change models.Change) error
	// HasChange reports whether a change with id is in the changelog.
	HasChange(ctx context.Context, id uint32) (bool, error)

	// GetFileWithID returns the entry or ErrNoSuchFileInDatabase.
	GetFileWithID(ctx context.Context, id int64) (models.File, error)
	// AddFile inserts a new entry and the change that created it.
	AddFile(ctx context.Context, file models.File, change models.Change) error
	// UpdateFileWithoutCreatingChange overwrites an entry and leaves the
	// changelog untouched.
	UpdateFileWithoutCreatingChange(ctx context.Context, file models.File) error
	// MutateFile appends change, loads the entry, applies mutate and stores the
	// result atomically. A mutate error rolls everything back.
	MutateFile(ctx context.Context, id int64, change models.Change, mutate func(*models.File) error) error
}

// FileStorage keeps file bytes and thumbnails outside the database.
type FileStorage interface {
	GetFileSavePath(id int64, extension string) string
	SaveFile(ctx context.Context, id int64, extension string, data []byte) error
	ReadFile(ctx context.Context, id int64, extension string) ([]byte, error)
	SaveThumbnail(ctx context.Context, id int64, data []byte) error
	// ReadThumbnail returns false when no thumbnail is stored.
	ReadThumbnail(ctx context.Context, id int64) ([]byte, bool, error)
}

// ErrorClassificator inspects driver errors.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
	IsUniqueViolation(err error) bool
}
