// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-photo-catalog/internal/config"
	"github.com/MKhiriev/go-photo-catalog/internal/utils"
	"github.com/MKhiriev/go-photo-catalog/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testHashKey = "hash-key"

// --- Helpers ---

func sampleChangesRequest() models.ChangesRequest {
	return models.ChangesRequest{
		Changes:      []models.Change{models.NewTagAdded(baseTime, 1, "a"), models.NewFileRemoved(baseTime, 2)},
		RemovedFiles: []int64{2},
		NewSyncpoint: models.NewSyncPoint(baseTime.Add(time.Hour)),
		Origin:       "",
	}
}

func signedBody(t *testing.T, req models.ChangesRequest) []byte {
	t.Helper()
	payload, err := req.HashPayload()
	require.NoError(t, err)
	req.Hash = utils.HashString(string(payload), testHashKey)

	body, err := json.Marshal(req)
	require.NoError(t, err)
	return body
}

// --- Tests ---

func TestChangesHashing_TableTest(t *testing.T) {
	utils.InitHasherPool(testHashKey)

	tests := []struct {
		name       string
		body       func(t *testing.T) []byte
		wantStatus int
		wantNext   bool
	}{
		{
			name:       "valid hash",
			body:       func(t *testing.T) []byte { return signedBody(t, sampleChangesRequest()) },
			wantStatus: http.StatusAccepted,
			wantNext:   true,
		},
		{
			name: "missing hash",
			body: func(t *testing.T) []byte {
				body, err := json.Marshal(sampleChangesRequest())
				require.NoError(t, err)
				return body
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "payload changed after signing",
			body: func(t *testing.T) []byte {
				var req models.ChangesRequest
				require.NoError(t, json.Unmarshal(signedBody(t, sampleChangesRequest()), &req))
				req.RemovedFiles = []int64{2, 3}
				body, err := json.Marshal(req)
				require.NoError(t, err)
				return body
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "not JSON",
			body:       func(*testing.T) []byte { return []byte("{{{") },
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newHandlerFixture(t, config.App{HashKey: testHashKey})
			if tt.wantNext {
				f.peer.EXPECT().ReceiveChanges(gomock.Any(), gomock.Any(), nil).Return("job-1", nil)
			}

			rec := f.do(http.MethodPost, "/changes", tt.body(t))
			assert.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
		})
	}
}

func TestChangesHashing_DisabledWithoutKey(t *testing.T) {
	f := newHandlerFixture(t, config.App{})
	f.peer.EXPECT().ReceiveChanges(gomock.Any(), gomock.Any(), nil).Return("job-1", nil)

	body, err := json.Marshal(sampleChangesRequest())
	require.NoError(t, err)

	rec := f.do(http.MethodPost, "/changes", body)
	assert.Equal(t, http.StatusAccepted, rec.Code)
}
