package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-photo-catalog/internal/config"
	"github.com/MKhiriev/go-photo-catalog/internal/logger"
	"github.com/MKhiriev/go-photo-catalog/internal/utils"
	"github.com/MKhiriev/go-photo-catalog/models"
)

type httpCatalogAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPCatalogAdapter constructs the client-side [CatalogAdapter] talking
// to the local instance at adapterCfg.HTTPAddress.
func NewHTTPCatalogAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (CatalogAdapter, error) {
	baseURL, err := NormalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpCatalogAdapter{
		client: utils.NewPeerHTTPClient(baseURL, adapterCfg.RequestTimeout),
		logger: logger,
	}, nil
}

// TriggerSync implements [CatalogAdapter]. GET /sync?foreign_url=<url>.
func (h *httpCatalogAdapter) TriggerSync(ctx context.Context, foreignURL string) (string, error) {
	var job models.JobResponse
	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParam("foreign_url", foreignURL).
		SetResult(&job).
		Get("/sync")
	if err != nil {
		return "", fmt.Errorf("trigger sync request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	if job.JobID == "" {
		return "", ErrEmptyJobID
	}

	return job.JobID, nil
}

// SyncProgress implements [CatalogAdapter]. GET /sync_progress?job_id=<id>;
// an unknown job id maps to [ErrNotFound].
func (h *httpCatalogAdapter) SyncProgress(ctx context.Context, jobID string) (models.SyncStatus, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParam("job_id", jobID).
		Get("/sync_progress")
	if err != nil {
		return models.SyncStatus{}, fmt.Errorf("sync progress request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SyncStatus{}, err
	}

	var status models.SyncStatus
	if err = json.Unmarshal(resp.Body(), &status); err != nil {
		return models.SyncStatus{}, fmt.Errorf("decode sync progress response: %w", err)
	}

	return status, nil
}

// Version implements [CatalogAdapter]. GET /api/version.
func (h *httpCatalogAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(string(resp.Body())), nil
}
