// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-fair-share/internal/logger"
	"github.com/MKhiriev/go-fair-share/models"
)

type txJournalRepository struct {
	*DB
	logger *logger.Logger
}

func NewTxJournalRepository(db *DB, logger *logger.Logger) TxJournalRepository {
	return &txJournalRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *txJournalRepository) Save(ctx context.Context, entry models.JournalEntry) error {
	log := logger.FromContext(ctx)

	query, args, err := psql.Insert(journalTable).
		Columns(journalColumns...).
		Values(
			entry.ID,
			string(entry.Operation),
			entry.Hash,
			string(entry.Phase),
			entry.Error,
			entry.Account,
			entry.ChainID,
			int64(entry.BlockNumber),
			entry.CreatedAt.UTC(),
			entry.UpdatedAt.UTC(),
		).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "txJournalRepository.Save").Msg("failed to build insert query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "txJournalRepository.Save").
			Str("id", entry.ID).
			Str("operation", string(entry.Operation)).
			Msg("failed to insert journal entry")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "txJournalRepository.Save").Str("id", entry.ID).Msg("failed to read affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		log.Error().Str("func", "txJournalRepository.Save").Str("id", entry.ID).Msg("journal entry was not saved")
		return ErrJournalEntryNotSaved
	}

	return nil
}

func (r *txJournalRepository) Update(ctx context.Context, update models.JournalUpdate) error {
	log := logger.FromContext(ctx)

	query, args, err := psql.Update(journalTable).
		Set("phase", string(update.Phase)).
		Set("error", update.Error).
		Set("block_number", int64(update.BlockNumber)).
		Set("updated_at", update.UpdatedAt.UTC()).
		Where(sq.Eq{"id": update.ID}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "txJournalRepository.Update").Msg("failed to build update query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "txJournalRepository.Update").
			Str("id", update.ID).
			Msg("failed to update journal entry")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "txJournalRepository.Update").Str("id", update.ID).Msg("failed to read affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		log.Warn().Str("func", "txJournalRepository.Update").Str("id", update.ID).Msg("no journal entry to update")
		return ErrJournalEntryNotFound
	}

	return nil
}

func (r *txJournalRepository) Get(ctx context.Context, id string) (models.JournalEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Select(journalColumns...).
		From(journalTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "txJournalRepository.Get").Msg("failed to build select query")
		return models.JournalEntry{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	entry, err := scanJournalEntry(r.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.JournalEntry{}, ErrJournalEntryNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "txJournalRepository.Get").Str("id", id).Msg("failed to scan journal row")
		return models.JournalEntry{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return entry, nil
}

func (r *txJournalRepository) ListRecent(ctx context.Context, limit int) ([]models.JournalEntry, error) {
	log := logger.FromContext(ctx)

	if limit <= 0 {
		return nil, ErrInvalidLimit
	}

	query, args, err := psql.Select(journalColumns...).
		From(journalTable).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "txJournalRepository.ListRecent").Msg("failed to build select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "txJournalRepository.ListRecent").Msg("failed to query journal")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.JournalEntry, 0, limit)
	for rows.Next() {
		entry, scanErr := scanJournalEntry(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "txJournalRepository.ListRecent").Msg("failed to scan journal row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		entries = append(entries, entry)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "txJournalRepository.ListRecent").Msg("error iterating journal rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return entries, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanJournalEntry(row rowScanner) (models.JournalEntry, error) {
	var (
		entry       models.JournalEntry
		operation   string
		phase       string
		blockNumber int64
	)

	err := row.Scan(
		&entry.ID,
		&operation,
		&entry.Hash,
		&phase,
		&entry.Error,
		&entry.Account,
		&entry.ChainID,
		&blockNumber,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)
	if err != nil {
		return models.JournalEntry{}, err
	}

	entry.Operation = models.Operation(operation)
	entry.Phase = models.TxPhase(phase)
	entry.BlockNumber = uint64(blockNumber)

	return entry, nil
}
