// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrShareCountMismatch  = errors.New("Number of participants must match number of custom shares")
	ErrInvalidShare        = errors.New("invalid share amount")
	ErrInvalidAmount       = errors.New("invalid amount")
	ErrExpenseIDRequired   = errors.New("expense ID is required")
	ErrInvalidExpenseID    = errors.New("invalid expense ID")
	ErrShareAmountRequired = errors.New("share amount is required")
	ErrUnknownAlignment    = errors.New("unknown share alignment")
)
