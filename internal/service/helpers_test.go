package service_test

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-photo-catalog/internal/config"
	"github.com/MKhiriev/go-photo-catalog/internal/logger"
	"github.com/MKhiriev/go-photo-catalog/internal/store"
	"github.com/MKhiriev/go-photo-catalog/internal/workers"
	"github.com/MKhiriev/go-photo-catalog/models"
	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)

func newTestStorages(t *testing.T) *store.Storages {
	t.Helper()
	storages, err := store.NewStorages(context.Background(), config.Storage{
		DB:    config.DB{DSN: ":memory:"},
		Files: config.Files{Dir: t.TempDir()},
	}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { storages.Close() })
	return storages
}

func newTestTracker(t *testing.T) workers.JobTracker {
	t.Helper()
	tracker := workers.NewJobTracker(config.Workers{
		ProgressBufferSize: 16,
		JobTimeout:         time.Minute,
		StatusTTL:          time.Hour,
		MaxTrackedJobs:     100,
		SweepInterval:      time.Hour,
	}, logger.Nop())
	tracker.Run()
	t.Cleanup(tracker.Shutdown)
	return tracker
}

// recorder collects progress updates of a job running on one goroutine.
type recorder struct {
	mu      sync.Mutex
	updates []models.SyncUpdate
}

func (r *recorder) report(update models.SyncUpdate) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.updates = append(r.updates, update)
}

func (r *recorder) phases() []models.SyncPhase {
	r.mu.Lock()
	defer r.mu.Unlock()
	phases := make([]models.SyncPhase, 0, len(r.updates))
	for _, u := range r.updates {
		phases = append(phases, u.Phase)
	}
	return phases
}

func (r *recorder) foreignJobID() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.updates {
		if u.Phase == models.SyncPhaseSentToForeign {
			return u.ForeignJobID
		}
	}
	return ""
}

// waitJob polls tracker until jobID reaches a terminal update. A job that has
// not reported yet is unknown to the tracker, so query errors mean "not yet".
func waitJob(t *testing.T, tracker workers.JobTracker, jobID string) models.SyncStatus {
	t.Helper()
	var status models.SyncStatus
	require.Eventually(t, func() bool {
		s, err := tracker.Query(jobID)
		if err != nil {
			return false
		}
		status = s
		return s.LastUpdate.IsTerminal()
	}, 10*time.Second, 5*time.Millisecond)
	return status
}

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := range w {
		for y := range h {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 200, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func testConfig(version string) config.StructuredConfig {
	return config.StructuredConfig{
		App: config.App{Version: version, ThumbnailSize: 32},
	}
}
