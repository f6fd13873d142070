// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui implements the terminal user interface of the FairShare
// client on top of bubbletea.
//
// [RootModel] owns one model per screen and switches between them with a
// single transition function. Contract interactions run as asynchronous
// commands; their phase changes come back as messages routed to the form
// that started them. Connection probes are injected from outside the event
// loop through [TUI.PublishConnection].
package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-fair-share/internal/logger"
	"github.com/MKhiriev/go-fair-share/internal/service"
	"github.com/MKhiriev/go-fair-share/models"
	tea "github.com/charmbracelet/bubbletea"
)

// ErrNilServices is returned by New when no services are given.
var ErrNilServices = errors.New("client services are nil")

type TUI struct {
	program *tea.Program
	logger  *logger.Logger
}

// New builds the program for services. ctx bounds every contract call the
// UI issues and stops the program when done.
func New(ctx context.Context, services *service.ClientServices, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if services == nil {
		return nil, ErrNilServices
	}

	root := NewRootModel(ctx, services, buildInfo, logger)
	program := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx))

	return &TUI{program: program, logger: logger}, nil
}

// Run blocks until the user quits. Quitting through the keyboard is not an
// error.
func (t *TUI) Run() error {
	finalModel, err := t.program.Run()
	if err != nil {
		return err
	}

	root, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if root.quitByUser {
		t.logger.Info().Str("func", "TUI.Run").Msg("user quit")
	}
	return nil
}

// PublishConnection delivers a connection probe to the navbar. It is safe
// to call from any goroutine and blocks until the program accepts the
// message or has exited.
func (t *TUI) PublishConnection(status models.ConnectionStatus) {
	t.program.Send(connectionMsg{status: status})
}
