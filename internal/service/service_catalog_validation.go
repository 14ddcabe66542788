package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-photo-catalog/internal/validators"
	"github.com/MKhiriev/go-photo-catalog/models"
)

type CatalogValidationService struct {
	inner     CatalogService
	validator validators.Validator
}

func NewCatalogValidationService() CatalogServiceWrapper {
	return &CatalogValidationService{
		validator: validators.NewCatalogValidator(),
	}
}

func (v *CatalogValidationService) AddFile(ctx context.Context, upload models.UploadRequest) (models.File, error) {
	if err := v.validator.Validate(ctx, upload); err != nil {
		return models.File{}, fmt.Errorf("error during upload validation: %w", err)
	}

	return v.inner.AddFile(ctx, upload)
}

func (v *CatalogValidationService) GetFile(ctx context.Context, fileID int64) (models.File, error) {
	if err := validateFileID(fileID); err != nil {
		return models.File{}, err
	}

	return v.inner.GetFile(ctx, fileID)
}

func (v *CatalogValidationService) RemoveFile(ctx context.Context, fileID int64) error {
	if err := validateFileID(fileID); err != nil {
		return err
	}

	return v.inner.RemoveFile(ctx, fileID)
}

func (v *CatalogValidationService) AddTag(ctx context.Context, fileID int64, request models.TagRequest) error {
	if err := validateFileID(fileID); err != nil {
		return err
	}
	if err := v.validator.Validate(ctx, request); err != nil {
		return fmt.Errorf("error during tag validation: %w", err)
	}

	return v.inner.AddTag(ctx, fileID, request)
}

func (v *CatalogValidationService) RemoveTag(ctx context.Context, fileID int64, request models.TagRequest) error {
	if err := validateFileID(fileID); err != nil {
		return err
	}
	if err := v.validator.Validate(ctx, request); err != nil {
		return fmt.Errorf("error during tag validation: %w", err)
	}

	return v.inner.RemoveTag(ctx, fileID, request)
}

func (v *CatalogValidationService) SetCreationDate(ctx context.Context, fileID int64, request models.CreationDateRequest) error {
	if err := validateFileID(fileID); err != nil {
		return err
	}
	if err := v.validator.Validate(ctx, request); err != nil {
		return fmt.Errorf("error during creation date validation: %w", err)
	}

	return v.inner.SetCreationDate(ctx, fileID, request)
}

func (v *CatalogValidationService) Wrap(wrapped CatalogService) CatalogService {
	v.inner = wrapped
	return v
}

func validateFileID(fileID int64) error {
	if fileID <= 0 {
		return fmt.Errorf("%w: %d", validators.ErrInvalidFileID, fileID)
	}
	return nil
}
