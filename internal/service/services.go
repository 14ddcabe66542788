package service

import (
	"github.com/MKhiriev/go-photo-catalog/internal/adapter"
	"github.com/MKhiriev/go-photo-catalog/internal/config"
	"github.com/MKhiriev/go-photo-catalog/internal/logger"
	"github.com/MKhiriev/go-photo-catalog/internal/store"
	"github.com/MKhiriev/go-photo-catalog/internal/workers"
)

type Services struct {
	AppInfoService AppInfoService
	CatalogService CatalogService
	PeerService    PeerService
	SyncService    SyncService
}

// NewServices wires the services of a catalog instance. Catalog and peer
// services are wrapped with validation; the sync service only talks to peers
// built by factory and to the local store.
func NewServices(storages *store.Storages, tracker workers.JobTracker, factory adapter.ForeignServerFactory, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	applier := NewChangeApplier(storages.Catalog, storages.Files, logger)

	catalogService := NewCatalogValidationService().
		Wrap(NewCatalogService(storages.Catalog, storages.Files, cfg.App, logger))
	peerService := NewPeerValidationService().
		Wrap(NewPeerService(storages.Catalog, storages.Files, applier, tracker, logger))

	return &Services{
		AppInfoService: appInfoService,
		CatalogService: catalogService,
		PeerService:    peerService,
		SyncService:    NewSyncService(storages.Catalog, applier, tracker, factory, logger),
	}, nil
}
