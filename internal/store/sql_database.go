// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"

	"github.com/MKhiriev/go-fair-share/internal/logger"
	"github.com/MKhiriev/go-fair-share/migrations"
)

// DB wraps the journal connection together with the logger used by the
// repositories built on top of it.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// Migrate applies the embedded journal schema.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
