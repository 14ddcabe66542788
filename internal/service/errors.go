package service

import "errors"

var (
	ErrInvalidDataProvided   = errors.New("invalid data provided")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	// ErrFileContentUnavailable is returned when a pushed FileAdded change
	// cannot be materialized because no source for the file bytes is known.
	ErrFileContentUnavailable = errors.New("file content unavailable: no file source")

	// ErrSyncAlreadyRunning is returned when a sync with the same peer is
	// still in progress.
	ErrSyncAlreadyRunning = errors.New("sync with this peer is already running")

	ErrInvalidForeignURL = errors.New("invalid foreign server url")
	ErrFileIsRemoved     = errors.New("file is removed")
	ErrNoSuchTag         = errors.New("file has no such tag")
)
