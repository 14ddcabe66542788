package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-photo-catalog/internal/logger"
	"github.com/MKhiriev/go-photo-catalog/models"
)

// queryer is satisfied by both *sql.DB and *sql.Tx.
type queryer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type changeRow struct {
	id           int64
	changedAt    int64
	affectedFile int64
	changeType   string
}

type fileRow struct {
	id           int64
	extension    string
	creationDate int64
	tags         string
	removed      bool
}

// catalogRepository is the SQL implementation of [CatalogRepository].
//
// Timestamps are stored as unix nanoseconds so that ordering and strict
// comparisons behave the same on SQLite and PostgreSQL. Tags and change types
// are stored as JSON text.
type catalogRepository struct {
	*DB
	logger *logger.Logger
}

// NewCatalogRepository constructs a [CatalogRepository] on top of db.
func NewCatalogRepository(db *DB, logger *logger.Logger) CatalogRepository {
	return &catalogRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *catalogRepository) GetSyncpoints(ctx context.Context) ([]models.SyncPoint, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.queries.selectSyncpoints()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "catalogRepository.GetSyncpoints").Msg("failed to query syncpoints")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	syncpoints := make([]models.SyncPoint, 0)
	for rows.Next() {
		var lastChange int64
		if err := rows.Scan(&lastChange); err != nil {
			log.Err(err).Str("func", "catalogRepository.GetSyncpoints").Msg("failed to scan syncpoint row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		syncpoints = append(syncpoints, models.NewSyncPoint(fromUnixNano(lastChange)))
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "catalogRepository.GetSyncpoints").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return syncpoints, nil
}

func (r *catalogRepository) AddSyncpoint(ctx context.Context, syncpoint models.SyncPoint) error {
	log := logger.FromContext(ctx)

	query, args, err := r.queries.insertSyncpoint(syncpoint.LastChange)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "catalogRepository.AddSyncpoint").
			Time("last_change", syncpoint.LastChange).
			Msg("failed to insert syncpoint")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *catalogRepository) GetAllChanges(ctx context.Context) ([]models.Change, error) {
	return r.getChanges(ctx, nil)
}

func (r *catalogRepository) GetChangesAfterTimestamp(ctx context.Context, ts time.Time) ([]models.Change, error) {
	return r.getChanges(ctx, &ts)
}

func (r *catalogRepository) getChanges(ctx context.Context, after *time.Time) ([]models.Change, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.queries.selectChanges(after)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "catalogRepository.getChanges").Msg("failed to query changes")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	changes := make([]models.Change, 0, 64)
	for rows.Next() {
		var row changeRow
		if err := rows.Scan(&row.id, &row.changedAt, &row.affectedFile, &row.changeType); err != nil {
			log.Err(err).Str("func", "catalogRepository.getChanges").Msg("failed to scan change row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}

		change, err := decodeChange(row)
		if err != nil {
			log.Err(err).
				Str("func", "catalogRepository.getChanges").
				Int64("change_id", row.id).
				Msg("failed to decode change type")
			return nil, err
		}
		changes = append(changes, change)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "catalogRepository.getChanges").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return changes, nil
}

func (r *catalogRepository) AddChange(ctx context.Context, change models.Change) error {
	return r.addChange(ctx, r.DB.DB, change)
}

func (r *catalogRepository) addChange(ctx context.Context, q queryer, change models.Change) error {
	log := logger.FromContext(ctx)

	row, err := encodeChange(change)
	if err != nil {
		return err
	}

	query, args, err := r.queries.insertChange(row)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := q.ExecContext(ctx, query, args...); err != nil {
		if r.errorClassificator.IsUniqueViolation(err) {
			return fmt.Errorf("%w: %d", ErrChangeAlreadyExists, change.ID)
		}
		log.Err(err).
			Str("func", "catalogRepository.addChange").
			Uint32("change_id", change.ID).
			Msg("failed to insert change")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *catalogRepository) HasChange(ctx context.Context, id uint32) (bool, error) {
	query, args, err := r.queries.selectChangeExists(id)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var one int
	err = r.DB.QueryRowContext(ctx, query, args...).Scan(&one)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return false, nil
	case err != nil:
		logger.FromContext(ctx).Err(err).
			Str("func", "catalogRepository.HasChange").
			Uint32("change_id", id).
			Msg("failed to check change")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return true, nil
}

func (r *catalogRepository) GetFileWithID(ctx context.Context, id int64) (models.File, error) {
	return r.getFile(ctx, r.DB.DB, id)
}

func (r *catalogRepository) getFile(ctx context.Context, q queryer, id int64) (models.File, error) {
	query, args, err := r.queries.selectFile(id)
	if err != nil {
		return models.File{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var row fileRow
	err = q.QueryRowContext(ctx, query, args...).Scan(&row.id, &row.extension, &row.creationDate, &row.tags, &row.removed)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.File{}, fmt.Errorf("%w: %d", ErrNoSuchFileInDatabase, id)
	case err != nil:
		logger.FromContext(ctx).Err(err).
			Str("func", "catalogRepository.getFile").
			Int64("file_id", id).
			Msg("failed to select file")
		return models.File{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return decodeFile(row)
}

func (r *catalogRepository) AddFile(ctx context.Context, file models.File, change models.Change) error {
	log := logger.FromContext(ctx)

	row, err := encodeFile(file)
	if err != nil {
		return err
	}

	query, args, err := r.queries.insertFile(row)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	r.writeMu.Lock()
	defer r.writeMu.Unlock()

	return r.inTx(ctx, func(tx *sql.Tx) error {
		if err := r.addChange(ctx, tx, change); err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			if r.errorClassificator.IsUniqueViolation(err) {
				return fmt.Errorf("%w: %d", ErrFileAlreadyExists, file.ID)
			}
			log.Err(err).
				Str("func", "catalogRepository.AddFile").
				Int64("file_id", file.ID).
				Msg("failed to insert file")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		return nil
	})
}

func (r *catalogRepository) UpdateFileWithoutCreatingChange(ctx context.Context, file models.File) error {
	r.writeMu.Lock()
	defer r.writeMu.Unlock()

	return r.updateFile(ctx, r.DB.DB, file)
}

func (r *catalogRepository) updateFile(ctx context.Context, q queryer, file models.File) error {
	log := logger.FromContext(ctx)

	row, err := encodeFile(file)
	if err != nil {
		return err
	}

	query, args, err := r.queries.updateFile(row)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "catalogRepository.updateFile").
			Int64("file_id", file.ID).
			Msg("failed to update file")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %d", ErrNoSuchFileInDatabase, file.ID)
	}

	return nil
}

func (r *catalogRepository) MutateFile(ctx context.Context, id int64, change models.Change, mutate func(*models.File) error) error {
	r.writeMu.Lock()
	defer r.writeMu.Unlock()

	return r.inTx(ctx, func(tx *sql.Tx) error {
		if err := r.addChange(ctx, tx, change); err != nil {
			return err
		}

		file, err := r.getFile(ctx, tx, id)
		if err != nil {
			return err
		}

		if err := mutate(&file); err != nil {
			return err
		}

		return r.updateFile(ctx, tx, file)
	})
}

func encodeChange(change models.Change) (changeRow, error) {
	changeType, err := json.Marshal(change.ChangeType)
	if err != nil {
		return changeRow{}, fmt.Errorf("%w: %w", ErrEncodingColumn, err)
	}

	return changeRow{
		id:           int64(change.ID),
		changedAt:    change.Timestamp.UnixNano(),
		affectedFile: change.AffectedFile,
		changeType:   string(changeType),
	}, nil
}

func decodeChange(row changeRow) (models.Change, error) {
	var changeType models.ChangeType
	if err := json.Unmarshal([]byte(row.changeType), &changeType); err != nil {
		return models.Change{}, fmt.Errorf("%w: %w", ErrEncodingColumn, err)
	}

	return models.Change{
		ID:           uint32(row.id),
		Timestamp:    fromUnixNano(row.changedAt),
		AffectedFile: row.affectedFile,
		ChangeType:   changeType,
	}, nil
}

func encodeFile(file models.File) (fileRow, error) {
	tags := file.Tags
	if tags == nil {
		tags = []string{}
	}

	encoded, err := json.Marshal(tags)
	if err != nil {
		return fileRow{}, fmt.Errorf("%w: %w", ErrEncodingColumn, err)
	}

	return fileRow{
		id:           file.ID,
		extension:    file.Extension,
		creationDate: file.CreationDate.UnixNano(),
		tags:         string(encoded),
		removed:      file.Removed,
	}, nil
}

func decodeFile(row fileRow) (models.File, error) {
	tags := make([]string, 0)
	if err := json.Unmarshal([]byte(row.tags), &tags); err != nil {
		return models.File{}, fmt.Errorf("%w: %w", ErrEncodingColumn, err)
	}

	return models.File{
		ID:           row.id,
		Extension:    row.extension,
		CreationDate: fromUnixNano(row.creationDate),
		Tags:         tags,
		Removed:      row.removed,
	}, nil
}

func fromUnixNano(n int64) time.Time {
	return time.Unix(0, n).UTC()
}
