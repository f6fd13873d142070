// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store persists the local transaction journal in SQLite.
package store

import (
	"context"

	"github.com/MKhiriev/go-fair-share/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// TxJournalRepository is the low-level transaction journal repository.
type TxJournalRepository interface {
	// Save inserts a new entry. The entry id must be unique.
	Save(ctx context.Context, entry models.JournalEntry) error
	// Update writes the outcome of an existing entry.
	Update(ctx context.Context, update models.JournalUpdate) error
	// Get returns a single entry by id.
	Get(ctx context.Context, id string) (models.JournalEntry, error)
	// ListRecent returns at most limit entries, newest first.
	ListRecent(ctx context.Context, limit int) ([]models.JournalEntry, error)
}
