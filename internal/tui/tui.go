// Package tui implements the terminal client that drives a sync pass on the
// local catalog instance and follows its progress.
package tui

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-photo-catalog/internal/adapter"
	"github.com/MKhiriev/go-photo-catalog/internal/config"
	"github.com/MKhiriev/go-photo-catalog/internal/logger"
	"github.com/MKhiriev/go-photo-catalog/models"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrNoCatalogAdapter = errors.New("catalog adapter is not set")

type TUI struct {
	catalog      adapter.CatalogAdapter
	foreignURL   string
	pollInterval time.Duration
	buildInfo    models.AppBuildInfo
	logger       *logger.Logger
}

func New(catalog adapter.CatalogAdapter, cfg config.ClientAdapter, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if catalog == nil {
		return nil, ErrNoCatalogAdapter
	}
	return &TUI{
		catalog:      catalog,
		foreignURL:   cfg.ForeignURL,
		pollInterval: cfg.PollInterval,
		buildInfo:    buildInfo,
		logger:       logger,
	}, nil
}

// SyncFlow asks for the peer address when none is configured, triggers a
// pass on the local instance and polls it until the job is terminal.
//
// It returns ErrUserQuit when the user leaves before the job finished and
// wraps ErrSyncFailed when the job ended in the error phase.
func (t *TUI) SyncFlow(ctx context.Context) (models.SyncStatus, error) {
	model := newSyncFlowModel(ctx, t.catalog, t.foreignURL, t.pollInterval, t.buildInfo)

	finalModel, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return models.SyncStatus{}, err
	}

	result, ok := finalModel.(syncFlowModel)
	if !ok {
		return models.SyncStatus{}, tea.ErrProgramKilled
	}

	status, err := result.result()
	t.logger.Debug().
		Str("func", "*TUI.SyncFlow").
		Str("job_id", result.jobID).
		Str("foreign_url", result.foreignURL).
		Str("phase", string(status.LastUpdate.Phase)).
		Err(err).
		Msg("sync flow finished")

	return status, err
}
