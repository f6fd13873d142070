// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators turns raw form input into contract-ready submissions
// and enforces the few rules the client checks before anything is sent.
//
// Core concepts:
//   - Validator: generic interface to validate arbitrary values or structures.
//     Supports optional field-level scoping for targeted validation.
//   - FormParser: converts the text of a form screen into a typed submission,
//     running the validator on the result.
//
// Everything else (sum of shares, address format, payer membership,
// settlement rules) is enforced by the contract and is not checked here.
package validators

import (
	"context"

	"github.com/MKhiriev/go-fair-share/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/validators_mock.go -package=mock

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}

// FormParser converts raw form text into submissions. A non-nil error means
// the form must not be submitted.
type FormParser interface {
	EqualSplit(ctx context.Context, form models.EqualSplitForm) (models.EqualSplitSubmission, error)
	CustomSplit(ctx context.Context, form models.CustomSplitForm) (models.CustomSplitSubmission, error)
	PayShare(ctx context.Context, form models.PayShareForm) (models.PayShareSubmission, error)
	Settle(ctx context.Context, form models.SettleForm) (models.SettleSubmission, error)
}
