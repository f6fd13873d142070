// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/MKhiriev/go-fair-share/models"

// connectionMsg carries a connection probe result published by the
// background watch job.
type connectionMsg struct {
	status models.ConnectionStatus
}

// txSubmittedMsg is the outcome of signing and broadcasting the call of the
// form shown on view.
type txSubmittedMsg struct {
	view    view
	pending models.PendingTx
	err     error
}

// txConfirmedMsg is the outcome of waiting for the receipt of a broadcast
// transaction.
type txConfirmedMsg struct {
	view    view
	receipt models.TxReceipt
	err     error
}

type expenseLoadedMsg struct {
	result models.ExpenseView
	err    error
}

type historyLoadedMsg struct {
	entries []models.JournalEntry
	err     error
}

type copiedMsg struct {
	text string
	err  error
}

type clearStatusMsg struct{}
