package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-photo-catalog/internal/adapter"
	"github.com/MKhiriev/go-photo-catalog/internal/logger"
	"github.com/MKhiriev/go-photo-catalog/internal/store"
	"github.com/MKhiriev/go-photo-catalog/internal/validators"
	"github.com/MKhiriev/go-photo-catalog/internal/workers"
	"github.com/MKhiriev/go-photo-catalog/models"
)

type changeApplier struct {
	catalog   store.CatalogRepository
	files     store.FileStorage
	validator validators.Validator

	logger *logger.Logger
}

func NewChangeApplier(catalog store.CatalogRepository, files store.FileStorage, logger *logger.Logger) ChangeApplier {
	return &changeApplier{
		catalog:   catalog,
		files:     files,
		validator: validators.NewCatalogValidator(),
		logger:    logger,
	}
}

// ApplyChanges implements ChangeApplier.
//
// Replaying changes already in the changelog is a no-op, so a pass that
// failed halfway can simply be repeated.
func (a *changeApplier) ApplyChanges(ctx context.Context, changes []models.Change, locallyRemovedFiles []int64, source adapter.FileSource, report workers.Reporter) error {
	removed := make(map[int64]struct{}, len(locallyRemovedFiles))
	for _, id := range locallyRemovedFiles {
		removed[id] = struct{}{}
	}

	toApply := make([]models.Change, 0, len(changes))
	for _, change := range models.SortChanges(changes) {
		if _, ok := removed[change.AffectedFile]; ok {
			continue
		}
		toApply = append(toApply, change)
	}

	report(models.StartingToApply(len(toApply)))

	applied := 0
	for i, change := range toApply {
		if err := ctx.Err(); err != nil {
			return err
		}

		remaining := len(toApply) - i - 1
		if change.IsFileRemoved() {
			report(models.RemovingFile(remaining))
		} else {
			report(models.AddingToDB(remaining))
		}

		ok, err := a.apply(ctx, change, source)
		if err != nil {
			return fmt.Errorf("error applying change %d to file %d: %w", change.ID, change.AffectedFile, err)
		}
		if ok {
			applied++
		}
	}

	a.logger.Debug().Str("func", "*changeApplier.ApplyChanges").
		Int("received", len(changes)).
		Int("suppressed", len(changes)-len(toApply)).
		Int("applied", applied).
		Msg("changes applied")

	return nil
}

// apply reports false when the change was already known.
func (a *changeApplier) apply(ctx context.Context, change models.Change, source adapter.FileSource) (bool, error) {
	known, err := a.catalog.HasChange(ctx, change.ID)
	if err != nil {
		return false, err
	}
	if known {
		return false, nil
	}

	switch change.ChangeType.Kind {
	case models.ChangeKindFileAdded:
		err = a.applyFileAdded(ctx, change, source)
	case models.ChangeKindFileRemoved:
		err = a.applyFileRemoved(ctx, change)
	case models.ChangeKindUpdate:
		err = a.catalog.MutateFile(ctx, change.AffectedFile, change, func(file *models.File) error {
			return applyUpdate(file, change.ChangeType.Update)
		})
	default:
		err = fmt.Errorf("%w: unknown change kind %q", ErrInvalidDataProvided, change.ChangeType.Kind)
	}

	// a concurrent pass stored the same change first
	if errors.Is(err, store.ErrChangeAlreadyExists) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return true, nil
}

func applyUpdate(file *models.File, update *models.UpdateType) error {
	if update == nil {
		return fmt.Errorf("%w: update change without payload", ErrInvalidDataProvided)
	}

	switch update.Kind {
	case models.UpdateKindTagAdded:
		file.AddTag(update.Tag)
	case models.UpdateKindTagRemoved:
		file.RemoveTag(update.Tag)
	case models.UpdateKindCreationDateChanged:
		if update.Date == nil {
			return fmt.Errorf("%w: creation date change without date", ErrInvalidDataProvided)
		}
		file.CreationDate = update.Date.UTC()
	default:
		return fmt.Errorf("%w: unknown update kind %q", ErrInvalidDataProvided, update.Kind)
	}

	return nil
}

// applyFileAdded records the change for an entry that already exists, live or
// removed. Otherwise the file is downloaded from source before the entry is
// created, so no transaction is held across the network call.
func (a *changeApplier) applyFileAdded(ctx context.Context, change models.Change, source adapter.FileSource) error {
	_, err := a.catalog.GetFileWithID(ctx, change.AffectedFile)
	switch {
	case err == nil:
		return a.catalog.AddChange(ctx, change)
	case !errors.Is(err, store.ErrNoSuchFileInDatabase):
		return err
	}

	if source == nil {
		return ErrFileContentUnavailable
	}

	details, err := source.GetFileDetails(ctx, change.AffectedFile)
	if err != nil {
		return fmt.Errorf("error getting file details: %w", err)
	}
	// the extension becomes part of a path on this machine
	details.Extension = strings.ToLower(details.Extension)
	if err = a.validator.Validate(ctx, details, validators.FieldExtension); err != nil {
		return fmt.Errorf("peer sent invalid details for file %d: %w", change.AffectedFile, err)
	}
	data, err := source.GetFile(ctx, change.AffectedFile)
	if err != nil {
		return fmt.Errorf("error downloading file: %w", err)
	}
	thumbnail, hasThumbnail, err := source.GetThumbnail(ctx, change.AffectedFile)
	if err != nil {
		return fmt.Errorf("error downloading thumbnail: %w", err)
	}

	if err = a.files.SaveFile(ctx, change.AffectedFile, details.Extension, data); err != nil {
		return err
	}
	if hasThumbnail {
		if err = a.files.SaveThumbnail(ctx, change.AffectedFile, thumbnail); err != nil {
			return err
		}
	}

	file := models.File{
		ID:           change.AffectedFile,
		Extension:    details.Extension,
		CreationDate: details.Timestamp.UTC(),
		Tags:         []string{},
	}

	err = a.catalog.AddFile(ctx, file, change)
	if errors.Is(err, store.ErrFileAlreadyExists) {
		return a.catalog.AddChange(ctx, change)
	}

	return err
}

func (a *changeApplier) applyFileRemoved(ctx context.Context, change models.Change) error {
	err := a.catalog.MutateFile(ctx, change.AffectedFile, change, func(file *models.File) error {
		file.Removed = true
		return nil
	})
	if errors.Is(err, store.ErrNoSuchFileInDatabase) {
		return a.catalog.AddChange(ctx, change)
	}

	return err
}
