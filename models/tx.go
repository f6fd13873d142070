// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// Operation names a state-changing contract function.
type Operation string

const (
	OpCreateEqualSplit  Operation = "createExpenseWithEqualSplit"
	OpCreateCustomSplit Operation = "createExpenseWithCustomSplit"
	OpPayShare          Operation = "payShare"
	OpSettleExpense     Operation = "settleExpense"
)

// ContractCall is one encoded outbound invocation of the contract.
type ContractCall struct {
	Operation Operation

	// Data is the ABI-encoded calldata including the 4-byte selector.
	Data []byte

	// Value is the amount of native currency attached to the call in base
	// units. Nil means zero.
	Value *big.Int
}

// TxPhase is the observable lifecycle phase of a submission.
type TxPhase string

const (
	// PhaseIdle means nothing has been submitted yet.
	PhaseIdle TxPhase = "idle"
	// PhasePending means the call is being signed and broadcast.
	PhasePending TxPhase = "pending"
	// PhaseConfirming means the transaction was accepted by the node and
	// the client is waiting for it to be mined.
	PhaseConfirming TxPhase = "confirming"
	// PhaseConfirmed means a successful receipt was observed.
	PhaseConfirmed TxPhase = "confirmed"
	// PhaseFailed means the call was rejected before broadcast or the
	// mined transaction reverted.
	PhaseFailed TxPhase = "failed"
)

// InFlight reports whether the submit action must stay disabled.
func (p TxPhase) InFlight() bool {
	return p == PhasePending || p == PhaseConfirming
}

// PendingTx identifies a broadcast transaction awaiting confirmation.
type PendingTx struct {
	// JournalID links the transaction to its journal entry. Empty when the
	// journal write failed.
	JournalID   string
	Operation   Operation
	Hash        common.Hash
	From        common.Address
	SubmittedAt time.Time
}

// TxReceipt is the subset of a mined transaction receipt the client uses.
type TxReceipt struct {
	Hash        common.Hash
	BlockNumber uint64
	GasUsed     uint64
	// Status is 1 for success and 0 for a reverted transaction.
	Status uint64
}

// Succeeded reports whether the receipt carries a success status.
func (r TxReceipt) Succeeded() bool {
	return r.Status == 1
}
