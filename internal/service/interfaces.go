// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the client use cases on top of the chain
// adapter and the local journal: submitting splits, reading expenses,
// watching the connection and listing past transactions.
package service

import (
	"context"

	"github.com/MKhiriev/go-fair-share/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// SplitService submits the four state-changing contract operations.
//
// Each Submit method parses its form, issues exactly one transaction and
// returns once the node accepted it. Local validation failures are returned
// as validators errors and no transaction is sent. The outcome of an
// accepted transaction is obtained with AwaitConfirmation.
//
// Journal failures are logged and never fail an operation.
type SplitService interface {
	SubmitEqualSplit(ctx context.Context, form models.EqualSplitForm) (models.PendingTx, error)
	SubmitCustomSplit(ctx context.Context, form models.CustomSplitForm) (models.PendingTx, error)
	PayShare(ctx context.Context, form models.PayShareForm) (models.PendingTx, error)
	Settle(ctx context.Context, form models.SettleForm) (models.PendingTx, error)

	// AwaitConfirmation blocks until pending is mined or ctx is done.
	// A reverted transaction returns its receipt and an error carrying the
	// revert message.
	AwaitConfirmation(ctx context.Context, pending models.PendingTx) (models.TxReceipt, error)

	// Ready reports whether the submit action of form may be enabled.
	// It accepts the pay-share and settle forms; other values are always
	// ready.
	Ready(ctx context.Context, form any) error
}

// ExpenseService runs the viewer's read-only queries.
type ExpenseService interface {
	// Load runs every query enabled by q concurrently. An empty expense id
	// enables nothing and yields an empty view. Remote failures are stored
	// per query in the view; the returned error is reserved for input that
	// cannot be sent at all.
	Load(ctx context.Context, q models.ExpenseQuery) (models.ExpenseView, error)
}

// ConnectionService probes the RPC endpoint for the navbar.
type ConnectionService interface {
	Status(ctx context.Context) models.ConnectionStatus
}

// JournalService exposes the local transaction history.
type JournalService interface {
	Recent(ctx context.Context, limit int) ([]models.JournalEntry, error)
}
