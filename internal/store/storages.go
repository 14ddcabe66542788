package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-photo-catalog/internal/config"
	"github.com/MKhiriev/go-photo-catalog/internal/logger"
)

// Storages aggregates the persistence backends used by services.
type Storages struct {
	Catalog CatalogRepository
	Files   FileStorage

	db *DB
}

// NewStorages connects to the catalog database, applies migrations and opens
// the file storage directory.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnect(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to catalog database: %w", err)
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("error migrating catalog database: %w", err)
	}

	files, err := NewFileStorage(cfg.Files.Dir, log)
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Storages{
		Catalog: NewCatalogRepository(db, log),
		Files:   files,
		db:      db,
	}, nil
}

// Close releases the database connection.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
