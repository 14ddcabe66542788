package service

import (
	"github.com/MKhiriev/go-photo-catalog/internal/adapter"
	"github.com/MKhiriev/go-photo-catalog/internal/config"
	"github.com/MKhiriev/go-photo-catalog/internal/logger"
	"github.com/MKhiriev/go-photo-catalog/internal/store"
	"github.com/MKhiriev/go-photo-catalog/internal/utils"
	"github.com/MKhiriev/go-photo-catalog/internal/workers"
)

func NewCatalogServiceWithIDs(catalog store.CatalogRepository, files store.FileStorage, cfg config.App, clock utils.Clock, newFileID func() int64) CatalogService {
	return newCatalogService(catalog, files, cfg, clock, newFileID, logger.Nop())
}

func NewSyncServiceWithClock(catalog store.CatalogRepository, applier ChangeApplier, tracker workers.JobTracker, factory adapter.ForeignServerFactory, clock utils.Clock) SyncService {
	return newSyncService(catalog, applier, tracker, factory, clock, logger.Nop())
}

var MakeThumbnail = makeThumbnail
