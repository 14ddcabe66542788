// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-photo-catalog/models"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run() error
}

// SyncUI runs the interactive part of a sync pass.
type SyncUI interface {
	// SyncFlow blocks until the pass is terminal or the user leaves.
	SyncFlow(ctx context.Context) (models.SyncStatus, error)
}
