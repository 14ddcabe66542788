// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/go-photo-catalog/internal/config"
	"github.com/MKhiriev/go-photo-catalog/internal/logger"
	"github.com/MKhiriev/go-photo-catalog/internal/utils"
	"github.com/MKhiriev/go-photo-catalog/models"
)

const defaultSweepInterval = time.Minute

type jobEvent struct {
	jobID  string
	update models.SyncUpdate
}

// jobTracker runs every job on its own goroutine. Jobs publish their updates
// onto a bounded channel; a single tracking goroutine drains it and
// overwrites the per-job status, so the map only ever has one writer.
type jobTracker struct {
	cfg    config.Workers
	ids    utils.IDGenerator
	clock  utils.Clock
	logger *logger.Logger

	events chan jobEvent

	mu       sync.RWMutex
	statuses map[string]models.SyncStatus
	stopped  bool

	baseCtx context.Context
	cancel  context.CancelFunc
	jobs    sync.WaitGroup

	startOnce sync.Once
	stopOnce  sync.Once
	stop      chan struct{}
	done      chan struct{}
}

// NewJobTracker creates a JobTracker with UUIDv7 job ids.
func NewJobTracker(cfg config.Workers, logger *logger.Logger) JobTracker {
	return newJobTracker(cfg, utils.NewUUIDGenerator(), utils.RealClock{}, logger)
}

func newJobTracker(cfg config.Workers, ids utils.IDGenerator, clock utils.Clock, logger *logger.Logger) *jobTracker {
	if cfg.ProgressBufferSize < 0 {
		cfg.ProgressBufferSize = 0
	}
	if cfg.SweepInterval <= 0 {
		cfg.SweepInterval = defaultSweepInterval
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &jobTracker{
		cfg:      cfg,
		ids:      ids,
		clock:    clock,
		logger:   logger,
		events:   make(chan jobEvent, cfg.ProgressBufferSize),
		statuses: make(map[string]models.SyncStatus),
		baseCtx:  ctx,
		cancel:   cancel,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Run starts the tracking goroutine. Repeated calls are no-ops.
func (t *jobTracker) Run() {
	t.startOnce.Do(func() {
		go t.track()
	})
}

// Submit implements [JobTracker].
func (t *jobTracker) Submit(job Job) (string, error) {
	t.Run()

	t.mu.Lock()
	if t.stopped {
		t.mu.Unlock()
		return "", ErrTrackerStopped
	}
	t.jobs.Add(1)
	t.mu.Unlock()

	jobID := t.ids.Generate()
	go t.runJob(jobID, job)

	return jobID, nil
}

// Query implements [JobTracker].
func (t *jobTracker) Query(jobID string) (models.SyncStatus, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	status, ok := t.statuses[jobID]
	if !ok {
		return models.SyncStatus{}, fmt.Errorf("%w: %s", ErrNoSuchJobID, jobID)
	}

	return status, nil
}

// Shutdown cancels running jobs, waits for them to report their terminal
// update, then stops the tracking goroutine after it drained the queue.
func (t *jobTracker) Shutdown() {
	t.stopOnce.Do(func() {
		t.mu.Lock()
		t.stopped = true
		t.mu.Unlock()

		t.cancel()
		t.jobs.Wait()

		t.Run()
		close(t.stop)
		<-t.done
	})
}

func (t *jobTracker) runJob(jobID string, job Job) {
	defer t.jobs.Done()

	ctx, cancel := t.jobContext()
	defer cancel()

	log := t.logger.WithJob(jobID)
	report := func(update models.SyncUpdate) {
		t.publish(jobID, update)
	}

	err := safeRun(ctx, job, report)
	if err != nil {
		log.Err(err).Str("func", "*jobTracker.runJob").Msg("job failed")
		report(models.SyncFailed(err))
		return
	}

	log.Info().Str("func", "*jobTracker.runJob").Msg("job done")
	report(models.SyncDone())
}

func (t *jobTracker) jobContext() (context.Context, context.CancelFunc) {
	if t.cfg.JobTimeout > 0 {
		return context.WithTimeout(t.baseCtx, t.cfg.JobTimeout)
	}
	return context.WithCancel(t.baseCtx)
}

func safeRun(ctx context.Context, job Job, report Reporter) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrJobPanicked, r)
		}
	}()

	return job(ctx, report)
}

// publish blocks while the queue is full. It gives up only once the tracking
// goroutine is gone.
func (t *jobTracker) publish(jobID string, update models.SyncUpdate) {
	select {
	case t.events <- jobEvent{jobID: jobID, update: update}:
	case <-t.done:
	}
}

func (t *jobTracker) track() {
	defer close(t.done)

	ticker := time.NewTicker(t.cfg.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case ev := <-t.events:
			t.apply(ev)
		case <-ticker.C:
			t.sweep()
		case <-t.stop:
			for {
				select {
				case ev := <-t.events:
					t.apply(ev)
				default:
					return
				}
			}
		}
	}
}

func (t *jobTracker) apply(ev jobEvent) {
	t.mu.Lock()
	defer t.mu.Unlock()

	prev := t.statuses[ev.jobID]
	status := models.SyncStatus{
		LastUpdate:   ev.update,
		ForeignJobID: prev.ForeignJobID,
		UpdatedAt:    t.clock.Now(),
	}
	if ev.update.ForeignJobID != "" {
		status.ForeignJobID = ev.update.ForeignJobID
	}
	t.statuses[ev.jobID] = status

	if t.cfg.MaxTrackedJobs > 0 && len(t.statuses) > t.cfg.MaxTrackedJobs {
		t.evictOverflowLocked()
	}
}

// sweep drops terminal statuses not updated within StatusTTL. A running job
// stays queryable however long it goes without reporting.
func (t *jobTracker) sweep() {
	if t.cfg.StatusTTL <= 0 {
		return
	}

	cutoff := t.clock.Now().Add(-t.cfg.StatusTTL)

	t.mu.Lock()
	defer t.mu.Unlock()

	for id, status := range t.statuses {
		if status.LastUpdate.IsTerminal() && status.UpdatedAt.Before(cutoff) {
			delete(t.statuses, id)
		}
	}
}

// evictOverflowLocked drops the oldest terminal statuses until the map fits
// MaxTrackedJobs. Running jobs are never evicted here.
func (t *jobTracker) evictOverflowLocked() {
	type entry struct {
		id string
		at time.Time
	}

	var terminal []entry
	for id, status := range t.statuses {
		if status.LastUpdate.IsTerminal() {
			terminal = append(terminal, entry{id: id, at: status.UpdatedAt})
		}
	}

	slices.SortFunc(terminal, func(a, b entry) int {
		return a.at.Compare(b.at)
	})

	for _, e := range terminal {
		if len(t.statuses) <= t.cfg.MaxTrackedJobs {
			return
		}
		delete(t.statuses, e.id)
	}
}
