package service

import (
	"context"

	"github.com/MKhiriev/go-photo-catalog/internal/adapter"
	"github.com/MKhiriev/go-photo-catalog/internal/logger"
	"github.com/MKhiriev/go-photo-catalog/internal/store"
	"github.com/MKhiriev/go-photo-catalog/internal/workers"
	"github.com/MKhiriev/go-photo-catalog/models"
)

type peerService struct {
	catalog store.CatalogRepository
	files   store.FileStorage
	applier ChangeApplier
	tracker workers.JobTracker

	logger *logger.Logger
}

func NewPeerService(catalog store.CatalogRepository, files store.FileStorage, applier ChangeApplier, tracker workers.JobTracker, logger *logger.Logger) PeerService {
	return &peerService{
		catalog: catalog,
		files:   files,
		applier: applier,
		tracker: tracker,
		logger:  logger,
	}
}

func (p *peerService) GetSyncpoints(ctx context.Context) ([]models.SyncPoint, error) {
	return p.catalog.GetSyncpoints(ctx)
}

// GetChanges returns changes after since in canonical order, or the whole
// changelog when since is nil.
func (p *peerService) GetChanges(ctx context.Context, since *models.SyncPoint) ([]models.Change, error) {
	var (
		changes []models.Change
		err     error
	)
	if since == nil {
		changes, err = p.catalog.GetAllChanges(ctx)
	} else {
		changes, err = p.catalog.GetChangesAfterTimestamp(ctx, since.LastChange)
	}
	if err != nil {
		return nil, err
	}

	return models.SortChanges(changes), nil
}

func (p *peerService) GetFileDetails(ctx context.Context, fileID int64) (models.FileDetails, error) {
	file, err := p.catalog.GetFileWithID(ctx, fileID)
	if err != nil {
		return models.FileDetails{}, err
	}

	return file.Details(), nil
}

func (p *peerService) GetFile(ctx context.Context, fileID int64) ([]byte, error) {
	file, err := p.catalog.GetFileWithID(ctx, fileID)
	if err != nil {
		return nil, err
	}

	return p.files.ReadFile(ctx, fileID, file.Extension)
}

func (p *peerService) GetThumbnail(ctx context.Context, fileID int64) ([]byte, bool, error) {
	if _, err := p.catalog.GetFileWithID(ctx, fileID); err != nil {
		return nil, false, err
	}

	return p.files.ReadThumbnail(ctx, fileID)
}

// ReceiveChanges submits a job that applies the pushed changes and then
// records the sync point chosen by the initiator, so both sides end the pass
// with the same checkpoint.
func (p *peerService) ReceiveChanges(ctx context.Context, req models.ChangesRequest, origin adapter.FileSource) (string, error) {
	jobID, err := p.tracker.Submit(func(ctx context.Context, report workers.Reporter) error {
		if err := p.applier.ApplyChanges(ctx, req.Changes, req.RemovedFiles, origin, report); err != nil {
			return err
		}

		report(models.AddingSyncpoint())
		return p.catalog.AddSyncpoint(ctx, req.NewSyncpoint)
	})
	if err != nil {
		return "", err
	}

	logger.FromContext(ctx).Info().
		Str("func", "*peerService.ReceiveChanges").
		Str("job_id", jobID).
		Int("changes", len(req.Changes)).
		Str("origin", req.Origin).
		Msg("apply job submitted")

	return jobID, nil
}
