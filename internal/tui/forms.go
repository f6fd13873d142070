// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"

	"github.com/MKhiriev/go-fair-share/internal/service"
	"github.com/MKhiriev/go-fair-share/models"
)

const (
	participantsHint = "Enter wallet addresses separated by commas"
	payerHint        = "Who paid for this expense initially"
)

func equalSplitSpec() formSpec {
	return formSpec{
		view:     viewEqualSplit,
		title:    "Equal Split",
		subtitle: "Divide expenses equally among all participants",
		fields: []fieldSpec{
			{label: "Expense Title", placeholder: "Dinner at restaurant"},
			{label: "Participants", placeholder: "0x123..., 0x456..., 0x789...", hint: participantsHint},
			{label: "Total Amount (ETH)", placeholder: "0.1"},
			{label: "Payer Address", placeholder: "0x123...", hint: payerHint},
		},
		submitLabel:  "Create Equal Split",
		busyLabel:    "Creating...",
		failureTitle: "Transaction Failed",
		build: func(v []string) any {
			return models.EqualSplitForm{Title: v[0], Participants: v[1], Amount: v[2], Payer: v[3]}
		},
		submit: func(ctx context.Context, split service.SplitService, v []string) (models.PendingTx, error) {
			return split.SubmitEqualSplit(ctx, models.EqualSplitForm{Title: v[0], Participants: v[1], Amount: v[2], Payer: v[3]})
		},
	}
}

func customSplitSpec() formSpec {
	return formSpec{
		view:     viewCustomSplit,
		title:    "Custom Split",
		subtitle: "Set specific amounts for each participant",
		fields: []fieldSpec{
			{label: "Expense Title", placeholder: "Dinner at restaurant"},
			{label: "Participants", placeholder: "0x123..., 0x456..., 0x789...", hint: participantsHint},
			{label: "Total Amount (ETH)", placeholder: "0.1"},
			{label: "Custom Shares (ETH amounts)", placeholder: "0.05, 0.03, 0.02", hint: "Must match participant count and sum to total amount"},
			{label: "Payer Address", placeholder: "0x123...", hint: payerHint},
		},
		submitLabel:  "Create Custom Split",
		busyLabel:    "Creating...",
		failureTitle: "Transaction Failed",
		build: func(v []string) any {
			return customSplitForm(v)
		},
		submit: func(ctx context.Context, split service.SplitService, v []string) (models.PendingTx, error) {
			return split.SubmitCustomSplit(ctx, customSplitForm(v))
		},
	}
}

func customSplitForm(v []string) models.CustomSplitForm {
	return models.CustomSplitForm{Title: v[0], Participants: v[1], Amount: v[2], Shares: v[3], Payer: v[4]}
}

func payShareSpec() formSpec {
	return formSpec{
		view:     viewPayShare,
		title:    "Pay Your Share",
		subtitle: "Contribute your portion to the group expense",
		fields: []fieldSpec{
			{label: "Expense ID", placeholder: "0"},
			{label: "Your Share Amount (ETH)", placeholder: "0.033", hint: "Must match your exact share amount"},
		},
		submitLabel:  "Pay Share",
		busyLabel:    "Processing...",
		failureTitle: "Payment Failed",
		note:         "Important Note: You must pay the exact share amount. The transaction will fail if the amount doesn't match your assigned share.",
		build: func(v []string) any {
			return models.PayShareForm{ExpenseID: v[0], ShareAmount: v[1]}
		},
		submit: func(ctx context.Context, split service.SplitService, v []string) (models.PendingTx, error) {
			return split.PayShare(ctx, models.PayShareForm{ExpenseID: v[0], ShareAmount: v[1]})
		},
	}
}

func settleSpec() formSpec {
	return formSpec{
		view:     viewSettle,
		title:    "Settle Expense",
		subtitle: "Finalize and close out a completed expense",
		fields: []fieldSpec{
			{label: "Expense ID", placeholder: "0"},
		},
		submitLabel:  "Settle Expense",
		busyLabel:    "Processing...",
		failureTitle: "Settlement Failed",
		note:         "Payer Only: Only the original payer can settle an expense. All participants must have paid their shares first.",
		build: func(v []string) any {
			return models.SettleForm{ExpenseID: v[0]}
		},
		submit: func(ctx context.Context, split service.SplitService, v []string) (models.PendingTx, error) {
			return split.Settle(ctx, models.SettleForm{ExpenseID: v[0]})
		},
	}
}
