// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "github.com/MKhiriev/go-fair-share/models"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run() error
}

// UI is the interactive front end driven by App.
type UI interface {
	// Run blocks until the user quits.
	Run() error

	// PublishConnection hands a connection probe result to the UI. It is
	// called from a background goroutine.
	PublishConnection(status models.ConnectionStatus)
}
