package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-photo-catalog/internal/adapter"
	"github.com/MKhiriev/go-photo-catalog/internal/validators"
	"github.com/MKhiriev/go-photo-catalog/models"
)

// PeerValidationService rejects malformed peer input before it reaches the
// changelog. Pushed changes whose id does not match their content never get
// an apply job.
type PeerValidationService struct {
	inner     PeerService
	validator validators.Validator
}

func NewPeerValidationService() PeerServiceWrapper {
	return &PeerValidationService{
		validator: validators.NewCatalogValidator(),
	}
}

func (v *PeerValidationService) GetSyncpoints(ctx context.Context) ([]models.SyncPoint, error) {
	return v.inner.GetSyncpoints(ctx)
}

func (v *PeerValidationService) GetChanges(ctx context.Context, since *models.SyncPoint) ([]models.Change, error) {
	return v.inner.GetChanges(ctx, since)
}

func (v *PeerValidationService) GetFileDetails(ctx context.Context, fileID int64) (models.FileDetails, error) {
	if err := validateFileID(fileID); err != nil {
		return models.FileDetails{}, err
	}

	return v.inner.GetFileDetails(ctx, fileID)
}

func (v *PeerValidationService) GetFile(ctx context.Context, fileID int64) ([]byte, error) {
	if err := validateFileID(fileID); err != nil {
		return nil, err
	}

	return v.inner.GetFile(ctx, fileID)
}

func (v *PeerValidationService) GetThumbnail(ctx context.Context, fileID int64) ([]byte, bool, error) {
	if err := validateFileID(fileID); err != nil {
		return nil, false, err
	}

	return v.inner.GetThumbnail(ctx, fileID)
}

func (v *PeerValidationService) ReceiveChanges(ctx context.Context, req models.ChangesRequest, origin adapter.FileSource) (string, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return "", fmt.Errorf("error during pushed changes validation: %w", err)
	}

	return v.inner.ReceiveChanges(ctx, req, origin)
}

func (v *PeerValidationService) Wrap(wrapped PeerService) PeerService {
	v.inner = wrapped
	return v
}
