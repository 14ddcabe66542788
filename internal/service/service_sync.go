// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-photo-catalog/internal/adapter"
	"github.com/MKhiriev/go-photo-catalog/internal/logger"
	"github.com/MKhiriev/go-photo-catalog/internal/store"
	"github.com/MKhiriev/go-photo-catalog/internal/utils"
	"github.com/MKhiriev/go-photo-catalog/internal/workers"
	"github.com/MKhiriev/go-photo-catalog/models"
)

// syncService is the concrete implementation of SyncService.
//
// A pass exchanges everything both sides recorded after their newest common
// sync point. Nothing is committed locally before the peer accepted our
// changes and the peer's changes were applied, so a failed pass is retried
// from the same checkpoint.
type syncService struct {
	catalog store.CatalogRepository
	applier ChangeApplier
	tracker workers.JobTracker
	factory adapter.ForeignServerFactory
	clock   utils.Clock

	mu      sync.Mutex
	running map[string]struct{}

	logger *logger.Logger
}

func NewSyncService(catalog store.CatalogRepository, applier ChangeApplier, tracker workers.JobTracker, factory adapter.ForeignServerFactory, logger *logger.Logger) SyncService {
	return newSyncService(catalog, applier, tracker, factory, utils.RealClock{}, logger)
}

func newSyncService(catalog store.CatalogRepository, applier ChangeApplier, tracker workers.JobTracker, factory adapter.ForeignServerFactory, clock utils.Clock, logger *logger.Logger) *syncService {
	return &syncService{
		catalog: catalog,
		applier: applier,
		tracker: tracker,
		factory: factory,
		clock:   clock,
		running: make(map[string]struct{}),
		logger:  logger,
	}
}

// StartSync implements SyncService. Two passes with the same peer never run
// at once; the second one fails with ErrSyncAlreadyRunning.
func (s *syncService) StartSync(ctx context.Context, foreignURL string) (string, error) {
	peerURL, err := adapter.NormalizeBaseURL(foreignURL)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidForeignURL, err)
	}

	foreign, err := s.factory.NewForeignServer(peerURL)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidForeignURL, err)
	}

	log := s.logger.WithPeer(peerURL)
	jobID, err := s.tracker.Submit(func(ctx context.Context, report workers.Reporter) error {
		if !s.acquire(peerURL) {
			return ErrSyncAlreadyRunning
		}
		defer s.release(peerURL)

		return s.Sync(ctx, foreign, report)
	})
	if err != nil {
		return "", err
	}

	log.Info().Str("func", "*syncService.StartSync").Str("job_id", jobID).Msg("sync submitted")
	return jobID, nil
}

func (s *syncService) acquire(peerURL string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, busy := s.running[peerURL]; busy {
		return false
	}
	s.running[peerURL] = struct{}{}
	return true
}

func (s *syncService) release(peerURL string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.running, peerURL)
}

// Sync implements SyncService.
func (s *syncService) Sync(ctx context.Context, foreign adapter.ForeignServer, report workers.Reporter) error {
	report(models.GatheringData())

	// minted before anything is read, so edits made during the pass land
	// after the new checkpoint and go out with the next one
	newSyncpoint := models.NewSyncPoint(s.clock.Now())

	localSyncpoints, err := s.catalog.GetSyncpoints(ctx)
	if err != nil {
		return fmt.Errorf("error getting local syncpoints: %w", err)
	}
	remoteSyncpoints, err := foreign.GetSyncpoints(ctx)
	if err != nil {
		return fmt.Errorf("error getting foreign syncpoints: %w", err)
	}

	var mergeStart *models.SyncPoint
	if common, ok := models.LastCommonSyncpoint(localSyncpoints, remoteSyncpoints); ok {
		mergeStart = &common
	}

	localChanges, err := s.localChangesSince(ctx, mergeStart)
	if err != nil {
		return fmt.Errorf("error getting local changes: %w", err)
	}
	locallyRemovedFiles := models.RemovedFiles(localChanges)

	remoteChanges, err := foreign.GetChanges(ctx, mergeStart)
	if err != nil {
		return fmt.Errorf("error getting foreign changes: %w", err)
	}
	remoteChanges = models.SortChanges(remoteChanges)

	foreignJobID, err := foreign.SendChanges(ctx, localChanges, models.RemovedFiles(remoteChanges), newSyncpoint)
	if err != nil {
		return fmt.Errorf("error sending changes to foreign server: %w", err)
	}
	report(models.SentToForeign(foreignJobID))

	if err = s.applier.ApplyChanges(ctx, remoteChanges, locallyRemovedFiles, foreign, report); err != nil {
		return err
	}

	report(models.AddingSyncpoint())
	if err = s.catalog.AddSyncpoint(ctx, newSyncpoint); err != nil {
		return fmt.Errorf("error adding syncpoint: %w", err)
	}

	s.logger.Info().
		Str("func", "*syncService.Sync").
		Int("sent", len(localChanges)).
		Int("received", len(remoteChanges)).
		Str("foreign_job_id", foreignJobID).
		Time("syncpoint", newSyncpoint.LastChange).
		Msg("sync pass finished")

	return nil
}

func (s *syncService) localChangesSince(ctx context.Context, since *models.SyncPoint) ([]models.Change, error) {
	var (
		changes []models.Change
		err     error
	)
	if since == nil {
		changes, err = s.catalog.GetAllChanges(ctx)
	} else {
		changes, err = s.catalog.GetChangesAfterTimestamp(ctx, since.LastChange)
	}
	if err != nil {
		return nil, err
	}

	return models.SortChanges(changes), nil
}

func (s *syncService) Progress(ctx context.Context, jobID string) (models.SyncStatus, error) {
	return s.tracker.Query(jobID)
}
