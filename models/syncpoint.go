// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// SyncPoint marks that every change with a timestamp at or before LastChange
// has been exchanged between two peers.
type SyncPoint struct {
	LastChange time.Time `json:"last_change"`
}

// NewSyncPoint returns a SyncPoint for the given timestamp.
func NewSyncPoint(lastChange time.Time) SyncPoint {
	return SyncPoint{LastChange: lastChange}
}

// IsZero reports whether the sync point has no timestamp.
func (s SyncPoint) IsZero() bool {
	return s.LastChange.IsZero()
}

// LastCommonSyncpoint returns the newest sync point present in both lists.
//
// Sync points are matched by value, not by position, so histories of
// different length or with diverging tails still find the newest checkpoint
// both peers recorded. The second return value is false when the lists share
// no sync point.
func LastCommonSyncpoint(local, remote []SyncPoint) (SyncPoint, bool) {
	if len(local) == 0 || len(remote) == 0 {
		return SyncPoint{}, false
	}

	remoteSet := make(map[int64]struct{}, len(remote))
	for _, sp := range remote {
		remoteSet[sp.LastChange.UnixNano()] = struct{}{}
	}

	var (
		common SyncPoint
		found  bool
	)
	for _, sp := range local {
		if _, ok := remoteSet[sp.LastChange.UnixNano()]; !ok {
			continue
		}
		if !found || sp.LastChange.After(common.LastChange) {
			common = sp
			found = true
		}
	}

	return common, found
}
