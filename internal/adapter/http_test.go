// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-photo-catalog/internal/config"
	"github.com/MKhiriev/go-photo-catalog/internal/logger"
	"github.com/MKhiriev/go-photo-catalog/internal/utils"
	"github.com/MKhiriev/go-photo-catalog/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testTime = time.Date(2026, 3, 1, 10, 0, 0, 123, time.UTC)

// newTestForeignServer creates an httpForeignServer pointed at the test server.
func newTestForeignServer(t *testing.T, serverURL string, appCfg config.App) *httpForeignServer {
	t.Helper()
	adapterCfg := config.Adapter{RequestTimeout: 5 * time.Second}

	fs, err := NewHTTPForeignServer(serverURL, adapterCfg, appCfg, logger.Nop())
	require.NoError(t, err)
	return fs.(*httpForeignServer)
}

func TestNewHTTPForeignServer_LeavesReceiverHasherAlone(t *testing.T) {
	utils.InitHasherPool("receiver-key")
	payload := []byte(`{"changes":[]}`)
	want := utils.HashString(string(payload), "receiver-key")

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, err := NewHTTPForeignServer("peer:8080", config.Adapter{RequestTimeout: time.Second},
				config.App{HashKey: fmt.Sprintf("peer-key-%d", i)}, logger.Nop())
			assert.NoError(t, err)
		}()
		go func() {
			defer wg.Done()
			assert.Equal(t, want, utils.HashHex(payload))
		}()
	}
	wg.Wait()

	assert.Equal(t, want, utils.HashHex(payload))
}

// ── NormalizeBaseURL ─────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "host and port", raw: "localhost:8080", want: "http://localhost:8080"},
		{name: "with scheme", raw: "https://peer.local", want: "https://peer.local"},
		{name: "trailing slash", raw: "http://10.0.0.3:8080/", want: "http://10.0.0.3:8080"},
		{name: "surrounding spaces", raw: "  http://peer  ", want: "http://peer"},
		{name: "empty", raw: "", wantErr: true},
		{name: "unsupported scheme", raw: "ftp://peer", wantErr: true},
		{name: "no host", raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHTTPForeignServer_InvalidAddress(t *testing.T) {
	_, err := NewHTTPForeignServer("", config.Adapter{}, config.App{}, logger.Nop())
	assert.ErrorIs(t, err, ErrInvalidAddress)
}

// ── GetSyncpoints ────────────────────────────────────────────────────────────

func TestGetSyncpoints_Success(t *testing.T) {
	want := []models.SyncPoint{models.NewSyncPoint(testTime), models.NewSyncPoint(testTime.Add(time.Hour))}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/syncpoints", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()

	fs := newTestForeignServer(t, srv.URL, config.App{})
	got, err := fs.GetSyncpoints(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.True(t, want[0].LastChange.Equal(got[0].LastChange))
	assert.True(t, want[1].LastChange.Equal(got[1].LastChange))
}

func TestGetSyncpoints_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte("invalid peer token"))
	}))
	defer srv.Close()

	fs := newTestForeignServer(t, srv.URL, config.App{})
	_, err := fs.GetSyncpoints(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestGetSyncpoints_InvalidJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("{not json"))
	}))
	defer srv.Close()

	fs := newTestForeignServer(t, srv.URL, config.App{})
	_, err := fs.GetSyncpoints(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode syncpoints response")
}

// ── GetChanges ───────────────────────────────────────────────────────────────

func TestGetChanges_SinceNone(t *testing.T) {
	want := []models.Change{models.NewFileAdded(testTime, 7)}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/changes", r.URL.Path)
		assert.Equal(t, "none", r.URL.Query().Get("since"))
		_ = json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()

	fs := newTestForeignServer(t, srv.URL, config.App{})
	got, err := fs.GetChanges(context.Background(), nil)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, want[0].ID, got[0].ID)
	assert.NoError(t, got[0].Verify())
}

func TestGetChanges_SinceTimestamp(t *testing.T) {
	since := models.NewSyncPoint(testTime)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		parsed, err := time.Parse(time.RFC3339Nano, r.URL.Query().Get("since"))
		assert.NoError(t, err)
		assert.True(t, parsed.Equal(testTime), "since must keep nanoseconds")
		_, _ = w.Write([]byte("[]"))
	}))
	defer srv.Close()

	fs := newTestForeignServer(t, srv.URL, config.App{})
	got, err := fs.GetChanges(context.Background(), &since)

	require.NoError(t, err)
	assert.Empty(t, got)
}

// ── SendChanges ──────────────────────────────────────────────────────────────

func TestSendChanges_Success(t *testing.T) {
	changes := []models.Change{models.NewFileAdded(testTime, 7), models.NewTagAdded(testTime, 7, "sea")}
	newSP := models.NewSyncPoint(testTime.Add(time.Minute))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/changes", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req models.ChangesRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Len(t, req.Changes, 2)
		assert.Equal(t, []int64{3}, req.RemovedFiles)
		assert.True(t, newSP.LastChange.Equal(req.NewSyncpoint.LastChange))
		assert.Equal(t, "http://10.0.0.2:8080", req.Origin)
		assert.Empty(t, req.Hash)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		_ = json.NewEncoder(w).Encode(models.JobResponse{JobID: "foreign-job"})
	}))
	defer srv.Close()

	fs := newTestForeignServer(t, srv.URL, config.App{AdvertisedURL: "http://10.0.0.2:8080"})
	jobID, err := fs.SendChanges(context.Background(), changes, []int64{3}, newSP)

	require.NoError(t, err)
	assert.Equal(t, "foreign-job", jobID)
}

func TestSendChanges_EmptySlicesAreSentAsArrays(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var raw map[string]json.RawMessage
		require.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
		assert.Equal(t, "[]", string(raw["changes"]))
		assert.Equal(t, "[]", string(raw["removed_files"]))

		w.WriteHeader(http.StatusAccepted)
		_ = json.NewEncoder(w).Encode(models.JobResponse{JobID: "j"})
	}))
	defer srv.Close()

	fs := newTestForeignServer(t, srv.URL, config.App{})
	_, err := fs.SendChanges(context.Background(), nil, nil, models.NewSyncPoint(testTime))
	require.NoError(t, err)
}

func TestSendChanges_SignsPayloadAndAuthenticates(t *testing.T) {
	appCfg := config.App{
		HashKey:           "hash-key",
		PeerSecret:        "peer-secret",
		PeerTokenIssuer:   "go-photo-catalog",
		PeerTokenDuration: time.Minute,
		AdvertisedURL:     "http://10.0.0.2:8080",
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
		require.NoError(t, err)
		token, err := utils.ValidatePeerToken(raw, appCfg.PeerSecret, appCfg.PeerTokenIssuer)
		require.NoError(t, err)
		assert.Equal(t, appCfg.AdvertisedURL, token.Peer)

		var req models.ChangesRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		payload, err := req.HashPayload()
		require.NoError(t, err)
		assert.Equal(t, utils.HashString(string(payload), appCfg.HashKey), req.Hash)

		w.WriteHeader(http.StatusAccepted)
		_ = json.NewEncoder(w).Encode(models.JobResponse{JobID: "signed"})
	}))
	defer srv.Close()

	fs := newTestForeignServer(t, srv.URL, appCfg)
	jobID, err := fs.SendChanges(context.Background(),
		[]models.Change{models.NewFileRemoved(testTime, 9)}, []int64{}, models.NewSyncPoint(testTime))

	require.NoError(t, err)
	assert.Equal(t, "signed", jobID)
}

func TestSendChanges_EmptyJobID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	fs := newTestForeignServer(t, srv.URL, config.App{})
	_, err := fs.SendChanges(context.Background(), nil, nil, models.NewSyncPoint(testTime))

	assert.ErrorIs(t, err, ErrEmptyJobID)
}

func TestSendChanges_BadRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Integrity check failed", http.StatusBadRequest)
	}))
	defer srv.Close()

	fs := newTestForeignServer(t, srv.URL, config.App{})
	_, err := fs.SendChanges(context.Background(), nil, nil, models.NewSyncPoint(testTime))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadRequest)
	assert.Contains(t, err.Error(), "Integrity check failed")
}

// ── FileSource ───────────────────────────────────────────────────────────────

func TestGetFileDetails_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/file_detail", r.URL.Path)
		assert.Equal(t, "42", r.URL.Query().Get("file_id"))
		_ = json.NewEncoder(w).Encode(models.FileDetails{Extension: "jpg", Timestamp: testTime})
	}))
	defer srv.Close()

	fs := newTestForeignServer(t, srv.URL, config.App{})
	got, err := fs.GetFileDetails(context.Background(), 42)

	require.NoError(t, err)
	assert.Equal(t, "jpg", got.Extension)
	assert.True(t, testTime.Equal(got.Timestamp))
}

func TestGetFile_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/file", r.URL.Path)
		_, _ = w.Write([]byte("raw-bytes"))
	}))
	defer srv.Close()

	fs := newTestForeignServer(t, srv.URL, config.App{})
	got, err := fs.GetFile(context.Background(), 42)

	require.NoError(t, err)
	assert.Equal(t, []byte("raw-bytes"), got)
}

func TestGetFile_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no such file", http.StatusNotFound)
	}))
	defer srv.Close()

	fs := newTestForeignServer(t, srv.URL, config.App{})
	_, err := fs.GetFile(context.Background(), 42)

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetThumbnail(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		wantOK bool
	}{
		{name: "present", body: "thumb", wantOK: true},
		{name: "absent", body: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/thumbnail", r.URL.Path)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			fs := newTestForeignServer(t, srv.URL, config.App{})
			got, ok, err := fs.GetThumbnail(context.Background(), 42)

			require.NoError(t, err)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, []byte(tt.body), got)
			} else {
				assert.Empty(t, got)
			}
		})
	}
}

func TestGetFile_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte("ok"))
	}))
	defer srv.Close()

	fs := newTestForeignServer(t, srv.URL, config.App{})
	got, err := fs.GetFile(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, []byte("ok"), got)
	assert.Equal(t, int32(2), calls.Load())
}

// ── Factory ──────────────────────────────────────────────────────────────────

func TestHTTPForeignServerFactory(t *testing.T) {
	f := NewHTTPForeignServerFactory(config.Adapter{RequestTimeout: time.Second}, config.App{}, logger.Nop())

	fs, err := f.NewForeignServer("10.0.0.3:8080/")
	require.NoError(t, err)
	assert.Equal(t, "http://10.0.0.3:8080", fs.(*httpForeignServer).baseURL)

	_, err = f.NewForeignServer("  ")
	assert.ErrorIs(t, err, ErrInvalidAddress)
}

// ── CatalogAdapter ───────────────────────────────────────────────────────────

func newTestCatalogAdapter(t *testing.T, serverURL string) CatalogAdapter {
	t.Helper()
	a, err := NewHTTPCatalogAdapter(config.ClientAdapter{HTTPAddress: serverURL, RequestTimeout: 5 * time.Second}, logger.Nop())
	require.NoError(t, err)
	return a
}

func TestTriggerSync_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/sync", r.URL.Path)
		assert.Equal(t, "http://10.0.0.3:8080", r.URL.Query().Get("foreign_url"))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		_ = json.NewEncoder(w).Encode(models.JobResponse{JobID: "job-1"})
	}))
	defer srv.Close()

	jobID, err := newTestCatalogAdapter(t, srv.URL).TriggerSync(context.Background(), "http://10.0.0.3:8080")

	require.NoError(t, err)
	assert.Equal(t, "job-1", jobID)
}

func TestSyncProgress_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/sync_progress", r.URL.Path)
		assert.Equal(t, "job-1", r.URL.Query().Get("job_id"))
		_ = json.NewEncoder(w).Encode(models.SyncStatus{
			LastUpdate:   models.AddingToDB(3),
			ForeignJobID: "foreign",
			UpdatedAt:    testTime,
		})
	}))
	defer srv.Close()

	status, err := newTestCatalogAdapter(t, srv.URL).SyncProgress(context.Background(), "job-1")

	require.NoError(t, err)
	assert.Equal(t, models.SyncPhaseAddingToDB, status.LastUpdate.Phase)
	assert.Equal(t, 3, status.LastUpdate.Remaining)
	assert.Equal(t, "foreign", status.ForeignJobID)
}

func TestSyncProgress_UnknownJob(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no such job id", http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := newTestCatalogAdapter(t, srv.URL).SyncProgress(context.Background(), "nope")

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestVersion_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/version", r.URL.Path)
		_, _ = w.Write([]byte("1.2.3\n"))
	}))
	defer srv.Close()

	v, err := newTestCatalogAdapter(t, srv.URL).Version(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "1.2.3", v)
}

func TestMapHTTPError_UnknownStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer srv.Close()

	_, err := newTestCatalogAdapter(t, srv.URL).Version(context.Background())

	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "http 418"), err.Error())
}
