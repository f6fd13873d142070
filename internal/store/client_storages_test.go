// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-fair-share/internal/config"
	"github.com/MKhiriev/go-fair-share/internal/logger"
	"github.com/MKhiriev/go-fair-share/models"
)

func TestNewClientStorages_JournalRoundTrip(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "journal.db")
	ctx := testContext()

	storages, err := NewClientStorages(ctx, config.ClientStorage{DB: config.ClientDB{DSN: dsn}}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { storages.Close() })

	_, err = os.Stat(dsn)
	require.NoError(t, err, "database file must be created")

	repo := storages.JournalRepository
	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	older := testEntry(created)
	older.ID = "entry-older"
	newer := testEntry(created.Add(time.Second))
	newer.ID = "entry-newer"
	newer.Operation = models.OpCreateCustomSplit

	require.NoError(t, repo.Save(ctx, older))
	require.NoError(t, repo.Save(ctx, newer))

	require.NoError(t, repo.Update(ctx, models.JournalUpdate{
		ID:          older.ID,
		Phase:       models.PhaseConfirmed,
		BlockNumber: 3,
		UpdatedAt:   created.Add(2 * time.Second),
	}))

	got, err := repo.Get(ctx, older.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PhaseConfirmed, got.Phase)
	assert.Equal(t, uint64(3), got.BlockNumber)
	assert.True(t, got.UpdatedAt.Equal(created.Add(2*time.Second)))

	list, err := repo.ListRecent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, newer.ID, list[0].ID)
	assert.Equal(t, older.ID, list[1].ID)

	err = repo.Update(ctx, models.JournalUpdate{ID: "missing", Phase: models.PhaseFailed, UpdatedAt: created})
	require.ErrorIs(t, err, ErrJournalEntryNotFound)
}

func TestNewClientStorages_ReopensExistingFile(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "journal.db")
	ctx := testContext()
	cfg := config.ClientStorage{DB: config.ClientDB{DSN: dsn}}

	first, err := NewClientStorages(ctx, cfg, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, first.JournalRepository.Save(ctx, testEntry(time.Now().UTC())))
	require.NoError(t, first.Close())

	second, err := NewClientStorages(ctx, cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { second.Close() })

	list, err := second.JournalRepository.ListRecent(ctx, 5)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestNewConnectSQLite_BadPath(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "no-such-dir", "journal.db")

	_, err := NewConnectSQLite(testContext(), config.ClientDB{DSN: dsn}, logger.Nop())
	require.ErrorIs(t, err, ErrCreatingDBFile)
}
