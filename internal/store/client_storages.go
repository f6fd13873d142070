// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-fair-share/internal/config"
	"github.com/MKhiriev/go-fair-share/internal/logger"
)

// ClientStorages groups the client-side repositories.
type ClientStorages struct {
	// JournalRepository is the SQLite-backed transaction journal.
	JournalRepository TxJournalRepository

	db *DB
}

// NewClientStorages opens the SQLite file at cfg.DB.DSN, applies pending
// migrations and wires the repositories.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		JournalRepository: NewTxJournalRepository(db, logger),
		db:                db,
	}, nil
}

// Close releases the database connection.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
