// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-fair-share/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldShares requires the participants and shares lists of a custom
	// split to have equal length.
	FieldShares = "shares"

	// FieldAmount requires a parsed amount to be present.
	FieldAmount = "amount"

	// FieldExpenseID requires an expense id: non-empty text on a form,
	// a non-negative integer on a submission.
	FieldExpenseID = "expense_id"

	// FieldShareAmount requires the pay-share amount text to be non-empty.
	FieldShareAmount = "share_amount"
)

// SplitValidator implements Validator for the split forms and submissions.
type SplitValidator struct{}

// NewSplitValidator constructs a SplitValidator and returns it as the
// Validator interface.
func NewSplitValidator() Validator {
	return &SplitValidator{}
}

// Validate dispatches on the dynamic type of obj. Both value and pointer
// forms are accepted.
//
// Supported types:
//   - models.CustomSplitSubmission
//   - models.EqualSplitSubmission
//   - models.PayShareForm, models.PayShareSubmission
//   - models.SettleForm, models.SettleSubmission
//
// The form types are validated for readiness only: the submit action of a
// screen stays disabled while its form fails validation.
func (v *SplitValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CustomSplitSubmission:
		return v.validateCustomSplit(ctx, value, fields...)
	case *models.CustomSplitSubmission:
		return v.validateCustomSplit(ctx, *value, fields...)

	case models.EqualSplitSubmission:
		return v.validateEqualSplit(ctx, value, fields...)
	case *models.EqualSplitSubmission:
		return v.validateEqualSplit(ctx, *value, fields...)

	case models.PayShareForm:
		return v.validatePayShareForm(ctx, value, fields...)
	case *models.PayShareForm:
		return v.validatePayShareForm(ctx, *value, fields...)

	case models.PayShareSubmission:
		return v.validatePayShare(ctx, value, fields...)
	case *models.PayShareSubmission:
		return v.validatePayShare(ctx, *value, fields...)

	case models.SettleForm:
		return v.validateSettleForm(ctx, value, fields...)
	case *models.SettleForm:
		return v.validateSettleForm(ctx, *value, fields...)

	case models.SettleSubmission:
		return v.validateSettle(ctx, value, fields...)
	case *models.SettleSubmission:
		return v.validateSettle(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *SplitValidator) validateCustomSplit(_ context.Context, s models.CustomSplitSubmission, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldShares, FieldAmount}
	}

	for _, f := range fields {
		switch f {
		case FieldShares:
			if len(s.Participants) != len(s.Shares) {
				return ErrShareCountMismatch
			}
		case FieldAmount:
			if s.Amount == nil {
				return ErrInvalidAmount
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *SplitValidator) validateEqualSplit(_ context.Context, s models.EqualSplitSubmission, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldAmount}
	}

	for _, f := range fields {
		switch f {
		case FieldAmount:
			if s.Amount == nil {
				return ErrInvalidAmount
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *SplitValidator) validatePayShareForm(_ context.Context, form models.PayShareForm, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldExpenseID, FieldShareAmount}
	}

	for _, f := range fields {
		switch f {
		case FieldExpenseID:
			if strings.TrimSpace(form.ExpenseID) == "" {
				return ErrExpenseIDRequired
			}
		case FieldShareAmount:
			if strings.TrimSpace(form.ShareAmount) == "" {
				return ErrShareAmountRequired
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *SplitValidator) validatePayShare(_ context.Context, s models.PayShareSubmission, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldExpenseID, FieldAmount}
	}

	for _, f := range fields {
		switch f {
		case FieldExpenseID:
			if s.ExpenseID == nil || s.ExpenseID.Sign() < 0 {
				return ErrInvalidExpenseID
			}
		case FieldAmount:
			if s.Value == nil {
				return ErrInvalidAmount
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *SplitValidator) validateSettleForm(_ context.Context, form models.SettleForm, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldExpenseID}
	}

	for _, f := range fields {
		switch f {
		case FieldExpenseID:
			if strings.TrimSpace(form.ExpenseID) == "" {
				return ErrExpenseIDRequired
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *SplitValidator) validateSettle(_ context.Context, s models.SettleSubmission, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldExpenseID}
	}

	for _, f := range fields {
		switch f {
		case FieldExpenseID:
			if s.ExpenseID == nil || s.ExpenseID.Sign() < 0 {
				return ErrInvalidExpenseID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
