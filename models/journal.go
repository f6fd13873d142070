// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// JournalEntry is one row of the local transaction journal. Entries are
// written when a submission leaves the client and updated once its outcome
// is known. Form input is never stored.
type JournalEntry struct {
	// ID is a client-generated UUIDv7, so entries sort by creation time.
	ID string

	Operation Operation

	// Hash is the hex transaction hash, empty when the call was rejected
	// before broadcast.
	Hash string

	Phase TxPhase

	// Error holds the failure message verbatim.
	Error string

	// Account is the hex address that signed the transaction.
	Account string

	ChainID int64

	// BlockNumber is set once the transaction was mined.
	BlockNumber uint64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// JournalUpdate describes the outcome written to an existing entry.
type JournalUpdate struct {
	ID          string
	Phase       TxPhase
	Error       string
	BlockNumber uint64
	UpdatedAt   time.Time
}
