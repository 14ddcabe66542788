package http

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-photo-catalog/internal/config"
	"github.com/MKhiriev/go-photo-catalog/internal/service"
	"github.com/MKhiriev/go-photo-catalog/internal/workers"
	"github.com/MKhiriev/go-photo-catalog/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestStartSync(t *testing.T) {
	f := newHandlerFixture(t, config.App{})
	f.sync.EXPECT().StartSync(gomock.Any(), "http://peer:8080").Return("job-42", nil)

	rec := f.do(http.MethodGet, "/sync?foreign_url=http%3A%2F%2Fpeer%3A8080", nil)
	require.Equal(t, http.StatusAccepted, rec.Code)

	var job models.JobResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &job))
	assert.Equal(t, "job-42", job.JobID)
}

func TestStartSync_Errors(t *testing.T) {
	t.Run("missing foreign_url", func(t *testing.T) {
		f := newHandlerFixture(t, config.App{})
		rec := f.do(http.MethodGet, "/sync", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("invalid foreign_url", func(t *testing.T) {
		f := newHandlerFixture(t, config.App{})
		f.sync.EXPECT().StartSync(gomock.Any(), "ftp://peer").Return("", service.ErrInvalidForeignURL)

		rec := f.do(http.MethodGet, "/sync?foreign_url=ftp://peer", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("tracker stopped", func(t *testing.T) {
		f := newHandlerFixture(t, config.App{})
		f.sync.EXPECT().StartSync(gomock.Any(), "peer").Return("", workers.ErrTrackerStopped)

		rec := f.do(http.MethodGet, "/sync?foreign_url=peer", nil)
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}

func TestGetSyncProgress(t *testing.T) {
	f := newHandlerFixture(t, config.App{})
	status := models.SyncStatus{
		LastUpdate:   models.SyncUpdate{Phase: models.SyncPhaseAddingToDB, Remaining: 3},
		ForeignJobID: "remote-1",
		UpdatedAt:    baseTime,
	}
	f.sync.EXPECT().Progress(gomock.Any(), "job-1").Return(status, nil)

	rec := f.do(http.MethodGet, "/sync_progress?job_id=job-1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var got models.SyncStatus
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, status.LastUpdate, got.LastUpdate)
	assert.Equal(t, "remote-1", got.ForeignJobID)
}

func TestGetSyncProgress_Errors(t *testing.T) {
	t.Run("unknown job", func(t *testing.T) {
		f := newHandlerFixture(t, config.App{})
		f.sync.EXPECT().Progress(gomock.Any(), "nope").Return(models.SyncStatus{}, workers.ErrNoSuchJobID)

		rec := f.do(http.MethodGet, "/sync_progress?job_id=nope", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("missing job_id", func(t *testing.T) {
		f := newHandlerFixture(t, config.App{})
		rec := f.do(http.MethodGet, "/sync_progress", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
