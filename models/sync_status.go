// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// SyncPhase names a step of a sync or change application job.
type SyncPhase string

const (
	SyncPhaseGatheringData   SyncPhase = "gathering_data"
	SyncPhaseSentToForeign   SyncPhase = "sent_to_foreign"
	SyncPhaseStartingToApply SyncPhase = "starting_to_apply"
	SyncPhaseAddingToDB      SyncPhase = "adding_to_db"
	SyncPhaseRemovingFile    SyncPhase = "removing_file"
	SyncPhaseAddingSyncpoint SyncPhase = "adding_syncpoint"
	SyncPhaseDone            SyncPhase = "done"
	SyncPhaseError           SyncPhase = "error"
)

// SyncUpdate is a single progress event emitted by a job.
//
// ForeignJobID is set only for SyncPhaseSentToForeign, Remaining only for the
// apply phases and Message only for SyncPhaseError.
type SyncUpdate struct {
	Phase        SyncPhase `json:"phase"`
	ForeignJobID string    `json:"foreign_job_id,omitempty"`
	Remaining    int       `json:"remaining,omitempty"`
	Message      string    `json:"message,omitempty"`
}

func GatheringData() SyncUpdate {
	return SyncUpdate{Phase: SyncPhaseGatheringData}
}

func SentToForeign(foreignJobID string) SyncUpdate {
	return SyncUpdate{Phase: SyncPhaseSentToForeign, ForeignJobID: foreignJobID}
}

func StartingToApply(remaining int) SyncUpdate {
	return SyncUpdate{Phase: SyncPhaseStartingToApply, Remaining: remaining}
}

func AddingToDB(remaining int) SyncUpdate {
	return SyncUpdate{Phase: SyncPhaseAddingToDB, Remaining: remaining}
}

func RemovingFile(remaining int) SyncUpdate {
	return SyncUpdate{Phase: SyncPhaseRemovingFile, Remaining: remaining}
}

func AddingSyncpoint() SyncUpdate {
	return SyncUpdate{Phase: SyncPhaseAddingSyncpoint}
}

func SyncDone() SyncUpdate {
	return SyncUpdate{Phase: SyncPhaseDone}
}

func SyncFailed(err error) SyncUpdate {
	return SyncUpdate{Phase: SyncPhaseError, Message: err.Error()}
}

// IsTerminal reports whether no further updates follow this one.
func (u SyncUpdate) IsTerminal() bool {
	return u.Phase == SyncPhaseDone || u.Phase == SyncPhaseError
}

// SyncStatus is the latest known state of a job.
//
// ForeignJobID is the id of the matching job on the peer. It is kept once
// observed, so a client can follow the remote side after the local job moved
// past SyncPhaseSentToForeign.
type SyncStatus struct {
	LastUpdate   SyncUpdate `json:"last_update"`
	ForeignJobID string     `json:"foreign_job_id,omitempty"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// JobResponse is returned by endpoints that start a background job.
type JobResponse struct {
	JobID string `json:"job_id"`
}
