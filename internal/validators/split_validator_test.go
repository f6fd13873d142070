// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"math/big"
	"testing"

	"github.com/MKhiriev/go-fair-share/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSplitValidator(t *testing.T) {
	require.NotNil(t, NewSplitValidator())
}

func TestSplitValidator_Dispatch(t *testing.T) {
	v := NewSplitValidator()
	ctx := context.Background()

	t.Run("unsupported type", func(t *testing.T) {
		require.ErrorIs(t, v.Validate(ctx, "a string"), ErrUnsupportedType)
	})

	t.Run("custom split pointer", func(t *testing.T) {
		s := &models.CustomSplitSubmission{
			Participants: []string{"a"},
			Shares:       []*big.Int{big.NewInt(1)},
			Amount:       big.NewInt(1),
		}
		require.NoError(t, v.Validate(ctx, s))
	})

	t.Run("unknown field", func(t *testing.T) {
		require.ErrorIs(t, v.Validate(ctx, models.SettleForm{ExpenseID: "1"}, "payer"), ErrUnknownField)
	})
}

func TestSplitValidator_CustomSplitFields(t *testing.T) {
	v := NewSplitValidator()
	ctx := context.Background()

	mismatch := models.CustomSplitSubmission{
		Participants: []string{"a", "b"},
		Shares:       []*big.Int{big.NewInt(1)},
	}

	require.ErrorIs(t, v.Validate(ctx, mismatch), ErrShareCountMismatch)
	require.ErrorIs(t, v.Validate(ctx, mismatch, FieldAmount), ErrInvalidAmount)

	mismatch.Amount = big.NewInt(0)
	require.NoError(t, v.Validate(ctx, mismatch, FieldAmount))
}

func TestSplitValidator_FormReadiness(t *testing.T) {
	v := NewSplitValidator()
	ctx := context.Background()

	tests := []struct {
		name string
		form any
		want error
	}{
		{name: "pay share ready", form: models.PayShareForm{ExpenseID: "1", ShareAmount: "0.1"}},
		{name: "pay share without id", form: models.PayShareForm{ShareAmount: "0.1"}, want: ErrExpenseIDRequired},
		{name: "pay share without amount", form: &models.PayShareForm{ExpenseID: "1"}, want: ErrShareAmountRequired},
		{name: "settle ready", form: models.SettleForm{ExpenseID: "3"}},
		{name: "settle without id", form: &models.SettleForm{ExpenseID: " "}, want: ErrExpenseIDRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.form)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestSplitValidator_Submissions(t *testing.T) {
	v := NewSplitValidator()
	ctx := context.Background()

	assert.ErrorIs(t, v.Validate(ctx, models.SettleSubmission{}), ErrInvalidExpenseID)
	assert.ErrorIs(t, v.Validate(ctx, models.SettleSubmission{ExpenseID: big.NewInt(-2)}), ErrInvalidExpenseID)
	assert.NoError(t, v.Validate(ctx, models.SettleSubmission{ExpenseID: big.NewInt(0)}))

	assert.ErrorIs(t, v.Validate(ctx, models.PayShareSubmission{ExpenseID: big.NewInt(1)}), ErrInvalidAmount)
	assert.NoError(t, v.Validate(ctx, &models.PayShareSubmission{ExpenseID: big.NewInt(1), Value: big.NewInt(5)}))

	assert.ErrorIs(t, v.Validate(ctx, models.EqualSplitSubmission{}), ErrInvalidAmount)
}
