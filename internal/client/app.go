package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-contact-share/internal/config"
	"github.com/MKhiriev/go-contact-share/internal/logger"
	"github.com/MKhiriev/go-contact-share/internal/service"
	"github.com/MKhiriev/go-contact-share/internal/tui"
	"github.com/MKhiriev/go-contact-share/internal/workers"
)

type App struct {
	services *service.ClientServices
	tui      *tui.TUI
	workers  config.ClientWorkers
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui *tui.TUI, workersCfg config.ClientWorkers, log *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, errors.New("client app requires services and ui")
	}
	return &App{services: services, tui: ui, workers: workersCfg, logger: log}, nil
}

// Run starts the client: it provisions the contact zone, shows the cached
// contact lists, launches the background refresh, and hands control to the
// terminal UI until the user quits.
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ctx = a.logger.WithContext(ctx)

	if err := a.services.ProvisionService.EnsureContactZone(ctx); err != nil {
		return fmt.Errorf("ensure contact zone: %w", err)
	}

	a.services.SyncService.PreloadSnapshot(ctx)

	workers.NewClientWorkers(ctx, a.services, a.workers).Run()
	defer a.services.RefreshJob.Stop()

	if err := a.tui.MainLoop(ctx); err != nil && !errors.Is(err, tui.ErrUserQuit) {
		return err
	}
	return nil
}
