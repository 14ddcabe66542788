// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"slices"
	"time"
)

// File is a catalog entry. Tags may contain duplicates. Removed is the
// soft-delete flag; removed entries keep their row so that late remote
// changes for them can still be recognized.
type File struct {
	ID           int64     `json:"id"`
	Extension    string    `json:"extension"`
	CreationDate time.Time `json:"creation_date"`
	Tags         []string  `json:"tags"`
	Removed      bool      `json:"removed"`
}

// AddTag appends tag to the file's tags.
func (f *File) AddTag(tag string) {
	f.Tags = append(f.Tags, tag)
}

// RemoveTag drops every occurrence of tag.
func (f *File) RemoveTag(tag string) {
	f.Tags = slices.DeleteFunc(f.Tags, func(t string) bool { return t == tag })
}

// HasTag reports whether the file carries tag.
func (f *File) HasTag(tag string) bool {
	return slices.Contains(f.Tags, tag)
}

// Details projects the file onto the fields a peer needs to recreate it.
func (f *File) Details() FileDetails {
	return FileDetails{Extension: f.Extension, Timestamp: f.CreationDate}
}

// FileDetails answers peer queries about a file without shipping its bytes.
type FileDetails struct {
	Extension string    `json:"extension"`
	Timestamp time.Time `json:"timestamp"`
}

// ChangesRequest is the body of a change push from a peer.
//
// RemovedFiles lists files the receiver itself removed since the last common
// sync point; the receiver uses it to drop pushed changes for those files.
// Origin is the sender's advertised base URL, used by the receiver to fetch
// bytes of added files. Hash is an optional HMAC over [ChangesRequest.HashPayload].
type ChangesRequest struct {
	Changes      []Change  `json:"changes"`
	RemovedFiles []int64   `json:"removed_files"`
	NewSyncpoint SyncPoint `json:"new_syncpoint"`
	Origin       string    `json:"origin,omitempty"`
	Hash         string    `json:"hash,omitempty"`
}

// HashPayload returns the bytes covered by Hash: the JSON encoding of the
// changes, removed files and new sync point. Origin is not covered.
func (r ChangesRequest) HashPayload() ([]byte, error) {
	return json.Marshal(struct {
		Changes      []Change  `json:"changes"`
		RemovedFiles []int64   `json:"removed_files"`
		NewSyncpoint SyncPoint `json:"new_syncpoint"`
	}{r.Changes, r.RemovedFiles, r.NewSyncpoint})
}

// TagRequest is the body of a tag addition.
type TagRequest struct {
	Tag string `json:"tag"`
}

// CreationDateRequest is the body of a creation date update.
type CreationDateRequest struct {
	Date time.Time `json:"date"`
}

// UploadRequest carries the bytes of a file added to the local catalog.
type UploadRequest struct {
	Extension string
	Data      []byte
}
