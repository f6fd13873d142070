// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package contract

import (
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/lmittmann/w3"

	"github.com/MKhiriev/go-fair-share/models"
)

var (
	funcCreateEqualSplit = w3.MustNewFunc(
		"createExpenseWithEqualSplit(string title, address[] participants, uint256 amount, address payer)", "",
	)
	funcCreateCustomSplit = w3.MustNewFunc(
		"createExpenseWithCustomSplit(string title, address[] participants, uint256 amount, address payer, uint256[] shares)", "",
	)
	funcPayShare      = w3.MustNewFunc("payShare(uint256 expenseId)", "")
	funcSettleExpense = w3.MustNewFunc("settleExpense(uint256 expenseId)", "")

	funcExpenses = w3.MustNewFunc(
		"expenses(uint256 expenseId)",
		"string title, uint256 amount, address payer, uint256 createdAt, bool settled, bool isEqualSplit",
	)
	funcShareOf         = w3.MustNewFunc("shareOf(uint256 expenseId, address participant)", "uint256")
	funcHasEveryonePaid = w3.MustNewFunc("hasEveryonePaid(uint256 expenseId)", "bool")
)

var (
	ErrEncode = errors.New("cannot encode contract call")
	ErrDecode = errors.New("cannot decode contract result")
)

// EncodeCreateEqualSplit encodes an equal-split submission.
func EncodeCreateEqualSplit(s models.EqualSplitSubmission) (models.ContractCall, error) {
	participants, err := ParseAddresses(s.Participants)
	if err != nil {
		return models.ContractCall{}, err
	}
	payer, err := ParseAddress(s.Payer)
	if err != nil {
		return models.ContractCall{}, fmt.Errorf("payer: %w", err)
	}

	amount, err := uint256Arg("amount", s.Amount)
	if err != nil {
		return models.ContractCall{}, err
	}

	data, err := funcCreateEqualSplit.EncodeArgs(s.Title, participants, amount, payer)
	if err != nil {
		return models.ContractCall{}, fmt.Errorf("%w: %w", ErrEncode, err)
	}

	return models.ContractCall{Operation: models.OpCreateEqualSplit, Data: data}, nil
}

// EncodeCreateCustomSplit encodes a custom-split submission. Participants
// and shares are passed in the order they were parsed.
func EncodeCreateCustomSplit(s models.CustomSplitSubmission) (models.ContractCall, error) {
	participants, err := ParseAddresses(s.Participants)
	if err != nil {
		return models.ContractCall{}, err
	}
	payer, err := ParseAddress(s.Payer)
	if err != nil {
		return models.ContractCall{}, fmt.Errorf("payer: %w", err)
	}

	amount, err := uint256Arg("amount", s.Amount)
	if err != nil {
		return models.ContractCall{}, err
	}
	shares := make([]*big.Int, len(s.Shares))
	for i, share := range s.Shares {
		if shares[i], err = uint256Arg(fmt.Sprintf("share %d", i+1), share); err != nil {
			return models.ContractCall{}, err
		}
	}

	data, err := funcCreateCustomSplit.EncodeArgs(s.Title, participants, amount, payer, shares)
	if err != nil {
		return models.ContractCall{}, fmt.Errorf("%w: %w", ErrEncode, err)
	}

	return models.ContractCall{Operation: models.OpCreateCustomSplit, Data: data}, nil
}

// EncodePayShare encodes a payShare call with the share attached as value.
func EncodePayShare(s models.PayShareSubmission) (models.ContractCall, error) {
	value, err := uint256Arg("value", s.Value)
	if err != nil {
		return models.ContractCall{}, err
	}

	data, err := funcPayShare.EncodeArgs(orZero(s.ExpenseID))
	if err != nil {
		return models.ContractCall{}, fmt.Errorf("%w: %w", ErrEncode, err)
	}

	return models.ContractCall{Operation: models.OpPayShare, Data: data, Value: value}, nil
}

func EncodeSettleExpense(s models.SettleSubmission) (models.ContractCall, error) {
	data, err := funcSettleExpense.EncodeArgs(orZero(s.ExpenseID))
	if err != nil {
		return models.ContractCall{}, fmt.Errorf("%w: %w", ErrEncode, err)
	}

	return models.ContractCall{Operation: models.OpSettleExpense, Data: data}, nil
}

// EncodeExpenses encodes the expenses(id) getter.
func EncodeExpenses(id *big.Int) ([]byte, error) {
	data, err := funcExpenses.EncodeArgs(orZero(id))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncode, err)
	}
	return data, nil
}

// DecodeExpense decodes the output of expenses(id).
func DecodeExpense(id *big.Int, output []byte) (models.Expense, error) {
	var (
		title        string
		amount       *big.Int
		payer        common.Address
		createdAt    *big.Int
		settled      bool
		isEqualSplit bool
	)
	if err := funcExpenses.DecodeReturns(output, &title, &amount, &payer, &createdAt, &settled, &isEqualSplit); err != nil {
		return models.Expense{}, fmt.Errorf("%w: expenses: %w", ErrDecode, err)
	}

	return models.Expense{
		ID:           new(big.Int).Set(orZero(id)),
		Title:        title,
		Amount:       amount,
		Payer:        payer,
		CreatedAt:    time.Unix(orZero(createdAt).Int64(), 0),
		Settled:      settled,
		IsEqualSplit: isEqualSplit,
	}, nil
}

// EncodeShareOf encodes shareOf(id, participant).
func EncodeShareOf(id *big.Int, participant common.Address) ([]byte, error) {
	data, err := funcShareOf.EncodeArgs(orZero(id), participant)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncode, err)
	}
	return data, nil
}

func DecodeShareOf(output []byte) (*big.Int, error) {
	var share *big.Int
	if err := funcShareOf.DecodeReturns(output, &share); err != nil {
		return nil, fmt.Errorf("%w: shareOf: %w", ErrDecode, err)
	}
	return share, nil
}

// EncodeHasEveryonePaid encodes hasEveryonePaid(id).
func EncodeHasEveryonePaid(id *big.Int) ([]byte, error) {
	data, err := funcHasEveryonePaid.EncodeArgs(orZero(id))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncode, err)
	}
	return data, nil
}

func DecodeHasEveryonePaid(output []byte) (bool, error) {
	var paid bool
	if err := funcHasEveryonePaid.DecodeReturns(output, &paid); err != nil {
		return false, fmt.Errorf("%w: hasEveryonePaid: %w", ErrDecode, err)
	}
	return paid, nil
}

func orZero(v *big.Int) *big.Int {
	if v == nil {
		return new(big.Int)
	}
	return v
}

// uint256Arg returns v for a uint256 argument. The ABI packer would wrap a
// negative value around, so it is refused here.
func uint256Arg(name string, v *big.Int) (*big.Int, error) {
	v = orZero(v)
	if v.Sign() < 0 {
		return nil, fmt.Errorf("%w: negative %s %s", ErrEncode, name, v)
	}
	return v, nil
}
