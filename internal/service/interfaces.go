// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-photo-catalog/internal/adapter"
	"github.com/MKhiriev/go-photo-catalog/internal/workers"
	"github.com/MKhiriev/go-photo-catalog/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// CatalogService mutates the local catalog. Every mutation appends the
// matching change to the changelog in the same transaction.
type CatalogService interface {
	AddFile(ctx context.Context, upload models.UploadRequest) (models.File, error)
	GetFile(ctx context.Context, fileID int64) (models.File, error)
	RemoveFile(ctx context.Context, fileID int64) error
	AddTag(ctx context.Context, fileID int64, request models.TagRequest) error
	RemoveTag(ctx context.Context, fileID int64, request models.TagRequest) error
	SetCreationDate(ctx context.Context, fileID int64, request models.CreationDateRequest) error
}

// PeerService answers the peer protocol: it serves this instance's history
// and file bytes and accepts changes pushed by a syncing peer.
type PeerService interface {
	adapter.PeerEndpoint
}

// ChangeApplier merges changes received from a peer into the local catalog.
type ChangeApplier interface {
	// ApplyChanges applies changes in canonical order. Changes for files in
	// locallyRemovedFiles are dropped. source serves the bytes of added files
	// and may be nil when no file is expected to be added.
	ApplyChanges(ctx context.Context, changes []models.Change, locallyRemovedFiles []int64, source adapter.FileSource, report workers.Reporter) error
}

// SyncService runs sync passes against foreign servers.
type SyncService interface {
	// StartSync submits a sync pass with foreignURL and returns its job id.
	StartSync(ctx context.Context, foreignURL string) (string, error)

	// Sync runs one pass against foreign on the calling goroutine.
	Sync(ctx context.Context, foreign adapter.ForeignServer, report workers.Reporter) error

	// Progress returns the latest status of a sync or apply job.
	Progress(ctx context.Context, jobID string) (models.SyncStatus, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// CatalogServiceWrapper defines middleware composition for CatalogService.
// Implementations wrap an existing CatalogService to add behavior such as
// logging or validating.
type CatalogServiceWrapper interface {
	Wrap(CatalogService) CatalogService
}

// PeerServiceWrapper defines middleware composition for PeerService.
type PeerServiceWrapper interface {
	Wrap(PeerService) PeerService
}
