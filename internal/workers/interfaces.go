// Package workers provides abstractions for managing and running
// background workers in the application.
//
// It defines the Worker interface, a Workers aggregate that starts and stops
// several workers together, and the JobTracker that runs sync jobs in the
// background and keeps their latest progress for polling.
package workers

import (
	"context"

	"github.com/MKhiriev/go-photo-catalog/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/workers_mock.go -package=mock

// Worker is the interface that must be implemented by any background worker.
//
// Run starts the worker and returns without blocking; the work itself runs on
// goroutines owned by the worker. Shutdown stops it and waits for those
// goroutines to exit.
type Worker interface {
	Run()
	Shutdown()
}

// Reporter publishes a progress update of the job it was handed to. Calls
// must come from the job's own goroutine, which keeps per-job order.
type Reporter func(update models.SyncUpdate)

// Job is a unit of background work. The tracker reports the terminal update
// itself from the returned error, so jobs only report intermediate phases.
type Job func(ctx context.Context, report Reporter) error

// JobTracker runs jobs asynchronously and answers progress queries.
type JobTracker interface {
	Worker

	// Submit starts job on its own goroutine and returns its id at once.
	Submit(job Job) (string, error)

	// Query returns the latest status of a job, or ErrNoSuchJobID when no
	// update for it has been observed.
	Query(jobID string) (models.SyncStatus, error)
}
