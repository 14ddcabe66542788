// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for talking to other
// catalog instances.
//
// [ForeignServer] is what the sync orchestrator sees of a peer. It is served
// over HTTP/JSON by [NewHTTPForeignServer] and in memory by
// [NewInProcessForeignServer], which wires two instances in one process.
// [CatalogAdapter] is the sync client's view of its own local instance.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-photo-catalog/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// FileSource serves the content of catalog files. The change applier pulls
// added files through it.
type FileSource interface {
	// GetFileDetails returns the extension and creation timestamp of a file.
	GetFileDetails(ctx context.Context, fileID int64) (models.FileDetails, error)

	// GetFile returns the raw bytes of a file.
	GetFile(ctx context.Context, fileID int64) ([]byte, error)

	// GetThumbnail returns the thumbnail bytes and true, or false when the
	// file has no thumbnail.
	GetThumbnail(ctx context.Context, fileID int64) ([]byte, bool, error)
}

// ForeignServer is a remote catalog instance as seen by the sync
// orchestrator.
type ForeignServer interface {
	FileSource

	// GetSyncpoints returns the peer's sync points, oldest first.
	GetSyncpoints(ctx context.Context) ([]models.SyncPoint, error)

	// GetChanges returns the peer's changes strictly after since, or all of
	// them when since is nil.
	GetChanges(ctx context.Context, since *models.SyncPoint) ([]models.Change, error)

	// SendChanges pushes changes to the peer, which applies them
	// asynchronously. removedFiles are the files the peer removed itself
	// since the common sync point. Returns the peer's job id.
	SendChanges(ctx context.Context, changes []models.Change, removedFiles []int64, newSyncpoint models.SyncPoint) (string, error)
}

// PeerEndpoint is the receiving side of the peer protocol, implemented by the
// service layer and exposed over HTTP by the handler.
type PeerEndpoint interface {
	FileSource

	GetSyncpoints(ctx context.Context) ([]models.SyncPoint, error)
	GetChanges(ctx context.Context, since *models.SyncPoint) ([]models.Change, error)

	// ReceiveChanges submits an apply job for req. origin serves the bytes of
	// files added by the pushed changes; it may be nil. Returns the job id.
	ReceiveChanges(ctx context.Context, req models.ChangesRequest, origin FileSource) (string, error)
}

// ForeignServerFactory builds a ForeignServer for a peer base URL.
type ForeignServerFactory interface {
	NewForeignServer(peerURL string) (ForeignServer, error)
}

// CatalogAdapter drives the local instance from the sync client.
type CatalogAdapter interface {
	// TriggerSync asks the local instance to sync with foreignURL and returns
	// the job id.
	TriggerSync(ctx context.Context, foreignURL string) (string, error)

	// SyncProgress returns the latest status of a job.
	SyncProgress(ctx context.Context, jobID string) (models.SyncStatus, error)

	// Version returns the build version of the local instance.
	Version(ctx context.Context) (string, error)
}
