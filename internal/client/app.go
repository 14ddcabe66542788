package client

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-photo-catalog/internal/adapter"
	"github.com/MKhiriev/go-photo-catalog/internal/logger"
	"github.com/MKhiriev/go-photo-catalog/internal/tui"
)

var (
	ErrNoCatalogAdapter = errors.New("catalog adapter is not set")
	ErrNoUI             = errors.New("ui is not set")
)

type App struct {
	catalog adapter.CatalogAdapter
	ui      SyncUI
	logger  *logger.Logger
}

func NewApp(catalog adapter.CatalogAdapter, ui SyncUI, logger *logger.Logger) (*App, error) {
	if catalog == nil {
		return nil, ErrNoCatalogAdapter
	}
	if ui == nil {
		return nil, ErrNoUI
	}
	return &App{catalog: catalog, ui: ui, logger: logger}, nil
}

// Run stops on SIGTERM, SIGINT or SIGQUIT.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	version, err := a.catalog.Version(ctx)
	if err != nil {
		return fmt.Errorf("local catalog instance is unavailable: %w", err)
	}
	a.logger.Info().Str("func", "*App.run").Str("local_version", version).Msg("connected to local catalog")

	status, err := a.ui.SyncFlow(ctx)
	if errors.Is(err, tui.ErrUserQuit) {
		a.logger.Info().Str("func", "*App.run").Msg("sync flow left by user")
		return nil
	}
	if err != nil {
		return err
	}

	a.logger.Info().
		Str("func", "*App.run").
		Str("phase", string(status.LastUpdate.Phase)).
		Str("foreign_job_id", status.ForeignJobID).
		Msg("sync finished")

	return nil
}
