// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-photo-catalog/internal/adapter"
	"github.com/MKhiriev/go-photo-catalog/internal/app"
)

var (
	// ErrUserQuit is returned when the user leaves before the sync finished.
	ErrUserQuit = errors.New("user quit")

	// ErrSyncFailed wraps the message of a job that ended in the error phase.
	ErrSyncFailed = errors.New("sync failed")
)

// humanizeError turns transport errors from the local instance into a short
// message for the status area.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, adapter.ErrConflict):
		return app.MsgSyncAlreadyRunning
	case errors.Is(err, adapter.ErrBadRequest):
		return app.MsgInvalidPeerURL
	case errors.Is(err, adapter.ErrNotFound):
		return app.MsgUnknownJob
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return app.MsgLocalInstanceUnavailable
	}

	return err.Error()
}

// humanizeJobError maps the message of a failed job.
func humanizeJobError(message string) string {
	if strings.Contains(message, adapter.ErrUnauthorized.Error()) {
		return app.MsgPeerUnauthorized + ": " + message
	}
	return message
}
