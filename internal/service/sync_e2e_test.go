package service_test

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-photo-catalog/internal/adapter"
	"github.com/MKhiriev/go-photo-catalog/internal/logger"
	"github.com/MKhiriev/go-photo-catalog/internal/service"
	"github.com/MKhiriev/go-photo-catalog/internal/store"
	"github.com/MKhiriev/go-photo-catalog/internal/workers"
	"github.com/MKhiriev/go-photo-catalog/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// instance is one catalog with its own database, file directory and tracker.
type instance struct {
	storages *store.Storages
	tracker  workers.JobTracker
	catalog  service.CatalogService
	peer     service.PeerService
	sync     service.SyncService
}

func newInstance(t *testing.T) *instance {
	t.Helper()
	storages := newTestStorages(t)
	tracker := newTestTracker(t)

	services, err := service.NewServices(storages, tracker, nil, testConfig("test"), logger.Nop())
	require.NoError(t, err)

	return &instance{
		storages: storages,
		tracker:  tracker,
		catalog:  services.CatalogService,
		peer:     services.PeerService,
		sync:     services.SyncService,
	}
}

// syncWith runs a pass from i to other over the in-process transport and
// waits for the other side to finish applying the push.
func (i *instance) syncWith(t *testing.T, other *instance) *recorder {
	t.Helper()
	foreign := adapter.NewInProcessForeignServer(other.peer, i.peer)

	rec := &recorder{}
	require.NoError(t, i.sync.Sync(context.Background(), foreign, rec.report))

	foreignJobID := rec.foreignJobID()
	require.NotEmpty(t, foreignJobID)
	status := waitJob(t, other.tracker, foreignJobID)
	require.Equal(t, models.SyncPhaseDone, status.LastUpdate.Phase, status.LastUpdate.Message)

	return rec
}

func (i *instance) file(t *testing.T, id int64) models.File {
	t.Helper()
	file, err := i.catalog.GetFile(context.Background(), id)
	require.NoError(t, err)
	return file
}

func (i *instance) changeIDs(t *testing.T) []uint32 {
	t.Helper()
	changes, err := i.storages.Catalog.GetAllChanges(context.Background())
	require.NoError(t, err)
	ids := make([]uint32, 0, len(changes))
	for _, c := range changes {
		ids = append(ids, c.ID)
	}
	return ids
}

func (i *instance) syncpoints(t *testing.T) []models.SyncPoint {
	t.Helper()
	sps, err := i.storages.Catalog.GetSyncpoints(context.Background())
	require.NoError(t, err)
	return sps
}

func TestSync_TwoInstancesConverge(t *testing.T) {
	a, b := newInstance(t), newInstance(t)
	ctx := context.Background()

	imageBytes := pngBytes(t, 40, 30)
	fileA, err := a.catalog.AddFile(ctx, models.UploadRequest{Extension: "png", Data: imageBytes})
	require.NoError(t, err)
	require.NoError(t, a.catalog.AddTag(ctx, fileA.ID, models.TagRequest{Tag: "sea"}))

	fileB, err := b.catalog.AddFile(ctx, models.UploadRequest{Extension: "txt", Data: []byte("notes")})
	require.NoError(t, err)
	require.NoError(t, b.catalog.AddTag(ctx, fileB.ID, models.TagRequest{Tag: "work"}))

	a.syncWith(t, b)

	for _, inst := range []*instance{a, b} {
		assert.Equal(t, []string{"sea"}, inst.file(t, fileA.ID).Tags)
		assert.Equal(t, []string{"work"}, inst.file(t, fileB.ID).Tags)
	}
	assert.ElementsMatch(t, a.changeIDs(t), b.changeIDs(t))
	assert.Equal(t, a.syncpoints(t), b.syncpoints(t))
	require.Len(t, a.syncpoints(t), 1)

	// bytes and thumbnails travelled with the added files
	gotImage, err := b.peer.GetFile(ctx, fileA.ID)
	require.NoError(t, err)
	assert.Equal(t, imageBytes, gotImage)
	_, hasThumb, err := b.peer.GetThumbnail(ctx, fileA.ID)
	require.NoError(t, err)
	assert.True(t, hasThumb)

	gotNotes, err := a.peer.GetFile(ctx, fileB.ID)
	require.NoError(t, err)
	assert.Equal(t, []byte("notes"), gotNotes)
}

func TestSync_ReplayIsNoOp(t *testing.T) {
	a, b := newInstance(t), newInstance(t)
	ctx := context.Background()

	file, err := a.catalog.AddFile(ctx, models.UploadRequest{Extension: "bin", Data: []byte{1, 2, 3}})
	require.NoError(t, err)
	require.NoError(t, a.catalog.AddTag(ctx, file.ID, models.TagRequest{Tag: "once"}))

	a.syncWith(t, b)
	changesA, changesB := a.changeIDs(t), b.changeIDs(t)

	rec := a.syncWith(t, b)
	assert.Equal(t, changesA, a.changeIDs(t))
	assert.Equal(t, changesB, b.changeIDs(t))
	assert.Equal(t, []string{"once"}, b.file(t, file.ID).Tags)

	// the second pass starts from the first checkpoint and carries nothing
	for _, u := range rec.updates {
		if u.Phase == models.SyncPhaseStartingToApply {
			assert.Zero(t, u.Remaining)
		}
	}
	assert.Len(t, a.syncpoints(t), 2)
	assert.Equal(t, a.syncpoints(t), b.syncpoints(t))
}

func TestSync_BothDirectionsConverge(t *testing.T) {
	a, b := newInstance(t), newInstance(t)
	ctx := context.Background()

	file, err := a.catalog.AddFile(ctx, models.UploadRequest{Extension: "bin", Data: []byte{9}})
	require.NoError(t, err)
	a.syncWith(t, b)

	// concurrent edits on both sides, then a pass initiated by the other peer
	require.NoError(t, a.catalog.AddTag(ctx, file.ID, models.TagRequest{Tag: "from-a"}))
	require.NoError(t, b.catalog.AddTag(ctx, file.ID, models.TagRequest{Tag: "from-b"}))
	b.syncWith(t, a)

	assert.ElementsMatch(t, []string{"from-a", "from-b"}, a.file(t, file.ID).Tags)
	assert.ElementsMatch(t, []string{"from-a", "from-b"}, b.file(t, file.ID).Tags)
	assert.ElementsMatch(t, a.changeIDs(t), b.changeIDs(t))
}

func TestSync_LocalRemovalSuppressesRemoteUpdate(t *testing.T) {
	a, b := newInstance(t), newInstance(t)
	ctx := context.Background()

	file, err := a.catalog.AddFile(ctx, models.UploadRequest{Extension: "bin", Data: []byte{7}})
	require.NoError(t, err)
	a.syncWith(t, b)

	require.NoError(t, a.catalog.RemoveFile(ctx, file.ID))
	require.NoError(t, b.catalog.AddTag(ctx, file.ID, models.TagRequest{Tag: "late"}))

	b.syncWith(t, a)

	onA := a.file(t, file.ID)
	assert.True(t, onA.Removed)
	assert.Empty(t, onA.Tags, "the tag added remotely after the removal is dropped")

	onB := b.file(t, file.ID)
	assert.True(t, onB.Removed)
}
