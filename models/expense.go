// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// Expense is the on-chain expense record returned by the contract's public
// expenses(uint256) getter. Participant lists and per-participant shares are
// not part of the getter output and are queried separately via shareOf.
type Expense struct {
	// ID is the identifier the record was requested with.
	ID *big.Int

	// Title is the free-form label given at creation.
	Title string

	// Amount is the total expense amount in base units.
	Amount *big.Int

	// Payer is the address that paid and is allowed to settle.
	Payer common.Address

	// CreatedAt is the block timestamp of the creating transaction.
	CreatedAt time.Time

	// Settled reports whether the payer has closed the expense.
	Settled bool

	// IsEqualSplit reports whether shares were computed by the contract
	// (true) or supplied by the creator (false).
	IsEqualSplit bool
}

// ExpenseQuery carries the raw viewer inputs. ExpenseID gates every query;
// Participant additionally gates the shareOf query.
type ExpenseQuery struct {
	ExpenseID   string
	Participant string
}

// ExpenseView aggregates the results of the viewer's independent reads.
// Each read has its own error so that a failing query never hides the
// results of the others. A nil result with a nil error means the query was
// not issued.
type ExpenseView struct {
	Expense    *Expense
	ExpenseErr error

	Share        *big.Int
	ShareErr     error
	ShareQueried bool

	EveryonePaid    *bool
	EveryonePaidErr error

	LoadedAt time.Time
}

// Err returns the first read error, or nil when every issued read succeeded.
func (v ExpenseView) Err() error {
	switch {
	case v.ExpenseErr != nil:
		return v.ExpenseErr
	case v.ShareErr != nil:
		return v.ShareErr
	default:
		return v.EveryonePaidErr
	}
}
