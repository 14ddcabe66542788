// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/binary"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"golang.org/x/crypto/blake2b"
)

// ChangeKind is the top-level kind of a [Change].
type ChangeKind string

const (
	ChangeKindFileAdded   ChangeKind = "file_added"
	ChangeKindUpdate      ChangeKind = "update"
	ChangeKindFileRemoved ChangeKind = "file_removed"
)

// UpdateKind is the kind of metadata update carried by a [ChangeKindUpdate] change.
type UpdateKind string

const (
	UpdateKindTagAdded            UpdateKind = "tag_added"
	UpdateKindTagRemoved          UpdateKind = "tag_removed"
	UpdateKindCreationDateChanged UpdateKind = "creation_date_changed"
)

// ErrChangeIDMismatch is returned by [Change.Verify] when the stored id does
// not match the id recomputed from the change content.
var ErrChangeIDMismatch = errors.New("change id does not match its content")

// UpdateType describes a single metadata update. Tag is set for tag updates,
// Date for creation date updates.
type UpdateType struct {
	Kind UpdateKind `json:"kind"`
	Tag  string     `json:"tag,omitempty"`
	Date *time.Time `json:"date,omitempty"`
}

// ChangeType is a tagged variant: FileAdded, FileRemoved or Update(UpdateType).
type ChangeType struct {
	Kind   ChangeKind  `json:"kind"`
	Update *UpdateType `json:"update,omitempty"`
}

// Change is an immutable record of one metadata mutation to a catalog entry.
//
// ID is content-addressed: it is derived from Timestamp, AffectedFile and
// ChangeType, so two peers constructing the same fact independently agree on
// the id. Changes are never edited; new facts are expressed by appending new
// changes.
type Change struct {
	ID           uint32     `json:"id"`
	Timestamp    time.Time  `json:"timestamp"`
	AffectedFile int64      `json:"affected_file"`
	ChangeType   ChangeType `json:"change_type"`
}

// NewChange builds a Change and computes its content-addressed id.
func NewChange(timestamp time.Time, fileID int64, changeType ChangeType) Change {
	return Change{
		ID:           changeID(timestamp, fileID, changeType),
		Timestamp:    timestamp,
		AffectedFile: fileID,
		ChangeType:   changeType,
	}
}

func NewFileAdded(timestamp time.Time, fileID int64) Change {
	return NewChange(timestamp, fileID, ChangeType{Kind: ChangeKindFileAdded})
}

func NewFileRemoved(timestamp time.Time, fileID int64) Change {
	return NewChange(timestamp, fileID, ChangeType{Kind: ChangeKindFileRemoved})
}

func NewTagAdded(timestamp time.Time, fileID int64, tag string) Change {
	return NewChange(timestamp, fileID, ChangeType{
		Kind:   ChangeKindUpdate,
		Update: &UpdateType{Kind: UpdateKindTagAdded, Tag: tag},
	})
}

func NewTagRemoved(timestamp time.Time, fileID int64, tag string) Change {
	return NewChange(timestamp, fileID, ChangeType{
		Kind:   ChangeKindUpdate,
		Update: &UpdateType{Kind: UpdateKindTagRemoved, Tag: tag},
	})
}

func NewCreationDateChanged(timestamp time.Time, fileID int64, date time.Time) Change {
	return NewChange(timestamp, fileID, ChangeType{
		Kind:   ChangeKindUpdate,
		Update: &UpdateType{Kind: UpdateKindCreationDateChanged, Date: &date},
	})
}

// Verify recomputes the content-addressed id and compares it to c.ID.
func (c Change) Verify() error {
	if expected := changeID(c.Timestamp, c.AffectedFile, c.ChangeType); expected != c.ID {
		return fmt.Errorf("%w: got %d, expected %d", ErrChangeIDMismatch, c.ID, expected)
	}
	return nil
}

// IsFileAdded, IsFileRemoved and IsUpdate report the top-level kind.
func (c Change) IsFileAdded() bool   { return c.ChangeType.Kind == ChangeKindFileAdded }
func (c Change) IsFileRemoved() bool { return c.ChangeType.Kind == ChangeKindFileRemoved }
func (c Change) IsUpdate() bool      { return c.ChangeType.Kind == ChangeKindUpdate }

// rank is the tie-break order for changes sharing a timestamp.
func (ct ChangeType) rank() int {
	switch ct.Kind {
	case ChangeKindFileAdded:
		return 0
	case ChangeKindUpdate:
		return 1
	case ChangeKindFileRemoved:
		return 2
	default:
		return 3
	}
}

// canonical is the stable textual form of a change type fed into the id hash.
func (ct ChangeType) canonical() string {
	if ct.Kind != ChangeKindUpdate || ct.Update == nil {
		return string(ct.Kind)
	}

	var b strings.Builder
	b.WriteString(string(ct.Kind))
	b.WriteByte(':')
	b.WriteString(string(ct.Update.Kind))
	b.WriteByte(':')
	switch ct.Update.Kind {
	case UpdateKindCreationDateChanged:
		if ct.Update.Date != nil {
			b.WriteString(ct.Update.Date.UTC().Format(time.RFC3339Nano))
		}
	default:
		b.WriteString(strconv.Quote(ct.Update.Tag))
	}
	return b.String()
}

func changeID(timestamp time.Time, fileID int64, changeType ChangeType) uint32 {
	canonical := timestamp.UTC().Format(time.RFC3339Nano) + "|" +
		strconv.FormatInt(fileID, 10) + "|" +
		changeType.canonical()

	sum := blake2b.Sum256([]byte(canonical))
	return binary.BigEndian.Uint32(sum[:4])
}

// SortChanges returns a copy of changes ordered by timestamp ascending.
// Changes sharing a timestamp are ordered FileAdded, Update, FileRemoved;
// otherwise the input order is kept.
func SortChanges(changes []Change) []Change {
	sorted := slices.Clone(changes)
	slices.SortStableFunc(sorted, func(a, b Change) int {
		if c := a.Timestamp.Compare(b.Timestamp); c != 0 {
			return c
		}
		return a.ChangeType.rank() - b.ChangeType.rank()
	})
	return sorted
}

// RemovedFiles returns the distinct ids of files removed by changes, in order
// of first appearance.
func RemovedFiles(changes []Change) []int64 {
	seen := make(map[int64]struct{})
	removed := make([]int64, 0)
	for _, change := range changes {
		if !change.IsFileRemoved() {
			continue
		}
		if _, ok := seen[change.AffectedFile]; ok {
			continue
		}
		seen[change.AffectedFile] = struct{}{}
		removed = append(removed, change.AffectedFile)
	}
	return removed
}
