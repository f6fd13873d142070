// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by the journal repository. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrJournalEntryNotFound is returned when a lookup or update targets
	// an entry id that is not in the journal.
	ErrJournalEntryNotFound = errors.New("journal entry was not found")

	// ErrJournalEntryNotSaved is returned when an INSERT completes without
	// error but affects no rows.
	ErrJournalEntryNotSaved = errors.New("journal entry was not saved")

	// ErrInvalidLimit is returned by ListRecent for a non-positive limit.
	ErrInvalidLimit = errors.New("limit must be positive")
)

// Low-level database errors. Repository methods wrap these around the
// driver error so that callers can tell failure stages apart.
var (
	ErrCreatingDBFile   = errors.New("error creating database file")
	ErrOpeningDB        = errors.New("error opening connection to DB")
	ErrBuildingSQLQuery = errors.New("error building sql query")
	ErrExecutingQuery   = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	ErrScanningRow  = errors.New("failed to scan journal row")
	ErrScanningRows = errors.New("failed to scan journal rows")
)
