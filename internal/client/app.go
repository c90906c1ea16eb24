package client

import (
	"context"
	"fmt"

	"github.com/Tanzeel8246/madrasa/internal/adapter"
	"github.com/Tanzeel8246/madrasa/internal/config"
	"github.com/Tanzeel8246/madrasa/internal/logger"
	"github.com/Tanzeel8246/madrasa/internal/report"
	"github.com/Tanzeel8246/madrasa/internal/service"
	"github.com/Tanzeel8246/madrasa/internal/store"
	"github.com/Tanzeel8246/madrasa/internal/tui"
)

// App is the assembled application: every long-lived component, wired and
// ready for the CLI commands to drive.
type App struct {
	Config    *config.ClientConfig
	Services  *service.Services
	Remote    adapter.RemoteStore
	Exporter  *report.Exporter
	Indicator *tui.TUI

	logger *logger.Logger
}

// NewApp builds the full component graph from cfg: local storages (opening
// and migrating the SQLite database), the remote store adapter, the sync
// services, the PDF exporter, and the status indicator.
func NewApp(cfg *config.ClientConfig, log *logger.Logger) (*App, error) {
	storages, err := store.NewStorages(cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create local storages: %w", err)
	}

	remote, err := adapter.NewRESTStore(cfg.Remote, log)
	if err != nil {
		return nil, fmt.Errorf("create remote store adapter: %w", err)
	}

	notifier := service.NewLogNotifier(cfg.App.Lang, log)
	services := service.NewServices(storages, remote, notifier, log)
	exporter := report.NewExporter(services.Collections, cfg.Storage.Exports, log)
	indicator := tui.New(services.State, cfg.App.Lang)

	return &App{
		Config:    cfg,
		Services:  services,
		Remote:    remote,
		Exporter:  exporter,
		Indicator: indicator,
		logger:    log,
	}, nil
}

// Start restores the pending counter from the durable queue, probes the
// remote store once so commands see the real connectivity state, and launches
// the background monitor.
func (a *App) Start(ctx context.Context) error {
	if err := a.Services.RestorePending(ctx); err != nil {
		return err
	}

	a.Services.Monitor.Start(ctx, a.Config.Sync.Interval)
	return nil
}

// Stop shuts down the background monitor and waits for it to exit.
func (a *App) Stop() {
	a.Services.Monitor.Stop()
}

// Context returns ctx with the application logger attached, so every
// component resolving a logger from the context gets this one.
func (a *App) Context(ctx context.Context) context.Context {
	return a.logger.WithContext(ctx)
}
