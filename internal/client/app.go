// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-fair-share/internal/config"
	"github.com/MKhiriev/go-fair-share/internal/logger"
	"github.com/MKhiriev/go-fair-share/internal/service"
	"github.com/MKhiriev/go-fair-share/internal/workers"
)

var (
	ErrNilServices = errors.New("client services are nil")
	ErrNilUI       = errors.New("ui is nil")
)

type App struct {
	ctx     context.Context
	ui      UI
	workers *workers.Workers
	logger  *logger.Logger
}

// NewApp wires ui to services. The connection watch job publishes to ui
// every cfg.ConnectionCheckInterval while Run is active.
func NewApp(ctx context.Context, services *service.ClientServices, ui UI, cfg config.ClientWorkers, logger *logger.Logger) (*App, error) {
	if services == nil {
		return nil, ErrNilServices
	}
	if ui == nil {
		return nil, ErrNilUI
	}

	connectionJob := service.NewConnectionWatchJob(services.ConnectionService, cfg.ConnectionCheckInterval, ui.PublishConnection)

	return &App{
		ctx:     ctx,
		ui:      ui,
		workers: workers.NewWorkers(connectionJob),
		logger:  logger,
	}, nil
}

// Run starts the background workers, blocks in the UI and stops the workers
// once the UI returns.
func (a *App) Run() error {
	a.workers.Start(a.ctx)
	defer a.workers.Stop()

	a.logger.Info().Str("func", "App.Run").Msg("client started")

	if err := a.ui.Run(); err != nil {
		return fmt.Errorf("ui: %w", err)
	}

	a.logger.Info().Str("func", "App.Run").Msg("client stopped")
	return nil
}
