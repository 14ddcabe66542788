package tui

import (
	"github.com/MKhiriev/go-photo-catalog/models"
)

type syncStartedMsg struct {
	jobID string
	err   error
}

type progressMsg struct {
	status models.SyncStatus
	err    error
}

type pollMsg struct{}

type copiedMsg struct{}

type copyFailedMsg struct {
	err error
}

type clearStatusMsg struct{}
