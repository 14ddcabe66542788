package adapter

import (
	"context"
	"slices"

	"github.com/MKhiriev/go-photo-catalog/models"
)

type inProcessForeignServer struct {
	remote PeerEndpoint
	origin FileSource
}

// NewInProcessForeignServer exposes remote as a [ForeignServer] without a
// network hop. Pushed changes reach remote with origin as the source of
// added files, the way an HTTP push carries the sender's advertised URL.
func NewInProcessForeignServer(remote PeerEndpoint, origin FileSource) ForeignServer {
	return &inProcessForeignServer{remote: remote, origin: origin}
}

func (s *inProcessForeignServer) GetSyncpoints(ctx context.Context) ([]models.SyncPoint, error) {
	return s.remote.GetSyncpoints(ctx)
}

func (s *inProcessForeignServer) GetChanges(ctx context.Context, since *models.SyncPoint) ([]models.Change, error) {
	return s.remote.GetChanges(ctx, since)
}

// SendChanges hands copies of the slices to the remote so neither side can
// observe the other mutating them.
func (s *inProcessForeignServer) SendChanges(ctx context.Context, changes []models.Change, removedFiles []int64, newSyncpoint models.SyncPoint) (string, error) {
	jobID, err := s.remote.ReceiveChanges(ctx, models.ChangesRequest{
		Changes:      slices.Clone(changes),
		RemovedFiles: slices.Clone(removedFiles),
		NewSyncpoint: newSyncpoint,
	}, s.origin)
	if err != nil {
		return "", err
	}
	if jobID == "" {
		return "", ErrEmptyJobID
	}

	return jobID, nil
}

func (s *inProcessForeignServer) GetFileDetails(ctx context.Context, fileID int64) (models.FileDetails, error) {
	return s.remote.GetFileDetails(ctx, fileID)
}

func (s *inProcessForeignServer) GetFile(ctx context.Context, fileID int64) ([]byte, error) {
	return s.remote.GetFile(ctx, fileID)
}

func (s *inProcessForeignServer) GetThumbnail(ctx context.Context, fileID int64) ([]byte, bool, error) {
	return s.remote.GetThumbnail(ctx, fileID)
}
