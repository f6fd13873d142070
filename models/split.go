// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "math/big"

// EqualSplitForm holds the raw text of the equal-split screen exactly as the
// user typed it. No field is trimmed or converted at this level.
type EqualSplitForm struct {
	// Title is a free-form label for the expense (e.g. "Dinner at restaurant").
	Title string

	// Participants is a comma-separated list of participant addresses.
	Participants string

	// Amount is the total expense amount as a decimal string in whole
	// currency units (e.g. "0.1"). An empty string means zero.
	Amount string

	// Payer is the address of the participant who paid the expense.
	Payer string
}

// EqualSplitSubmission is the parsed form of [EqualSplitForm] ready to be
// encoded as a createExpenseWithEqualSplit call.
type EqualSplitSubmission struct {
	Title        string
	Participants []string
	Amount       *big.Int
	Payer        string
}

// CustomSplitForm holds the raw text of the custom-split screen.
type CustomSplitForm struct {
	// Title is a free-form label for the expense.
	Title string

	// Participants is a comma-separated list of participant addresses.
	Participants string

	// Shares is a comma-separated list of decimal amounts, one per
	// participant, in the same order as Participants.
	Shares string

	// Amount is the total expense amount as a decimal string. An empty
	// string means zero.
	Amount string

	// Payer is the address of the participant who paid the expense.
	Payer string
}

// CustomSplitSubmission is the parsed form of [CustomSplitForm].
//
// Participants and Shares always have equal length; a form that would
// produce sequences of different length never becomes a submission.
// Every element of Shares is strictly positive and expressed in base units
// (10^18 per whole unit).
type CustomSplitSubmission struct {
	Title        string
	Participants []string
	Amount       *big.Int
	Payer        string
	Shares       []*big.Int
}

// PayShareForm holds the raw text of the pay-share screen.
type PayShareForm struct {
	// ExpenseID is the on-chain expense identifier as a base-10 string.
	ExpenseID string

	// ShareAmount is the value to attach to the call as a decimal string.
	// The contract rejects any value other than the caller's exact share.
	ShareAmount string
}

// PayShareSubmission is the parsed form of [PayShareForm].
type PayShareSubmission struct {
	ExpenseID *big.Int
	// Value is attached to the transaction, not passed as an argument.
	Value *big.Int
}

// SettleForm holds the raw text of the settle screen.
type SettleForm struct {
	ExpenseID string
}

// SettleSubmission is the parsed form of [SettleForm].
type SettleSubmission struct {
	ExpenseID *big.Int
}

// ShareAlignment selects how the participants and shares lists of a custom
// split are filtered before their lengths are compared.
type ShareAlignment string

const (
	// AlignPositional filters participants and shares independently.
	// A dropped share does not drop the participant at the same position,
	// so the two lists can shift against each other while still having
	// equal length. This mirrors the behaviour of the original web client.
	AlignPositional ShareAlignment = "positional"

	// AlignLockstep pairs participants and shares by position and drops a
	// pair when either side is empty or the share is not positive.
	AlignLockstep ShareAlignment = "lockstep"
)

// Valid reports whether a is a known alignment mode.
func (a ShareAlignment) Valid() bool {
	return a == AlignPositional || a == AlignLockstep
}
