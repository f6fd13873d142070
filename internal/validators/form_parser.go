// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	"github.com/MKhiriev/go-fair-share/internal/utils"
	"github.com/MKhiriev/go-fair-share/models"
)

// maxUint256 bounds expense ids to the contract's uint256 argument type.
var maxUint256 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))

type splitFormParser struct {
	alignment models.ShareAlignment
	validator Validator
}

// NewSplitFormParser returns a FormParser that filters custom-split lists
// according to alignment and checks every result with validator.
func NewSplitFormParser(alignment models.ShareAlignment, validator Validator) (FormParser, error) {
	if !alignment.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlignment, alignment)
	}

	return &splitFormParser{
		alignment: alignment,
		validator: validator,
	}, nil
}

func (p *splitFormParser) EqualSplit(ctx context.Context, form models.EqualSplitForm) (models.EqualSplitSubmission, error) {
	amount, err := parseAmount(form.Amount)
	if err != nil {
		return models.EqualSplitSubmission{}, err
	}

	submission := models.EqualSplitSubmission{
		Title:        form.Title,
		Participants: utils.SplitList(form.Participants),
		Amount:       amount,
		Payer:        strings.TrimSpace(form.Payer),
	}
	if err = p.validator.Validate(ctx, submission); err != nil {
		return models.EqualSplitSubmission{}, err
	}

	return submission, nil
}

// CustomSplit builds the createExpenseWithCustomSplit submission.
//
// Participants are split on commas with empty entries dropped. Shares are
// split the same way, converted to base units and kept only when strictly
// positive. With AlignPositional the two lists are filtered independently;
// with AlignLockstep a participant and the share at the same position are
// kept or dropped together. In both modes the resulting lists must have
// equal length or ErrShareCountMismatch is returned.
func (p *splitFormParser) CustomSplit(ctx context.Context, form models.CustomSplitForm) (models.CustomSplitSubmission, error) {
	var (
		participants []string
		shares       []*big.Int
		err          error
	)

	switch p.alignment {
	case models.AlignLockstep:
		participants, shares, err = lockstepShares(form.Participants, form.Shares)
	default:
		participants = utils.SplitList(form.Participants)
		shares, err = positiveShares(utils.SplitTokens(form.Shares))
	}
	if err != nil {
		return models.CustomSplitSubmission{}, err
	}

	amount, err := parseAmount(form.Amount)
	if err != nil {
		return models.CustomSplitSubmission{}, err
	}

	submission := models.CustomSplitSubmission{
		Title:        form.Title,
		Participants: participants,
		Amount:       amount,
		Payer:        strings.TrimSpace(form.Payer),
		Shares:       shares,
	}
	if err = p.validator.Validate(ctx, submission); err != nil {
		return models.CustomSplitSubmission{}, err
	}

	return submission, nil
}

func (p *splitFormParser) PayShare(ctx context.Context, form models.PayShareForm) (models.PayShareSubmission, error) {
	if err := p.validator.Validate(ctx, form); err != nil {
		return models.PayShareSubmission{}, err
	}

	id, err := ParseExpenseID(form.ExpenseID)
	if err != nil {
		return models.PayShareSubmission{}, err
	}
	value, err := parseAmount(form.ShareAmount)
	if err != nil {
		return models.PayShareSubmission{}, err
	}

	submission := models.PayShareSubmission{ExpenseID: id, Value: value}
	if err = p.validator.Validate(ctx, submission); err != nil {
		return models.PayShareSubmission{}, err
	}

	return submission, nil
}

func (p *splitFormParser) Settle(ctx context.Context, form models.SettleForm) (models.SettleSubmission, error) {
	if err := p.validator.Validate(ctx, form); err != nil {
		return models.SettleSubmission{}, err
	}

	id, err := ParseExpenseID(form.ExpenseID)
	if err != nil {
		return models.SettleSubmission{}, err
	}

	submission := models.SettleSubmission{ExpenseID: id}
	if err = p.validator.Validate(ctx, submission); err != nil {
		return models.SettleSubmission{}, err
	}

	return submission, nil
}

// positiveShares converts share tokens to base units and keeps the strictly
// positive ones. Empty tokens read as zero and are dropped.
func positiveShares(tokens []string) ([]*big.Int, error) {
	shares := make([]*big.Int, 0, len(tokens))
	for i, token := range tokens {
		share, err := parseShare(token, i)
		if err != nil {
			return nil, err
		}
		if share.Sign() > 0 {
			shares = append(shares, share)
		}
	}
	return shares, nil
}

// lockstepShares pairs participant and share tokens by position. A pair
// survives only when the participant is non-empty and the share is strictly
// positive. Tokens past the end of the shorter list are filtered on their
// own, so any surviving leftover makes the lengths differ.
func lockstepShares(participantsText, sharesText string) ([]string, []*big.Int, error) {
	pTokens := utils.SplitTokens(participantsText)
	sTokens := utils.SplitTokens(sharesText)

	paired := min(len(pTokens), len(sTokens))
	participants := make([]string, 0, paired)
	shares := make([]*big.Int, 0, paired)

	for i := 0; i < paired; i++ {
		share, err := parseShare(sTokens[i], i)
		if err != nil {
			return nil, nil, err
		}
		if pTokens[i] == "" || share.Sign() <= 0 {
			continue
		}
		participants = append(participants, pTokens[i])
		shares = append(shares, share)
	}

	for _, token := range pTokens[paired:] {
		if token != "" {
			participants = append(participants, token)
		}
	}
	for i, token := range sTokens[paired:] {
		share, err := parseShare(token, paired+i)
		if err != nil {
			return nil, nil, err
		}
		if share.Sign() > 0 {
			shares = append(shares, share)
		}
	}

	return participants, shares, nil
}

func parseShare(token string, index int) (*big.Int, error) {
	share, err := utils.ParseEther(token)
	if err != nil {
		return nil, fmt.Errorf("%w at position %d: %q", ErrInvalidShare, index+1, token)
	}
	return share, nil
}

// parseAmount converts text to base units. Negative amounts are rejected
// since the contract takes them as uint256.
func parseAmount(text string) (*big.Int, error) {
	amount, err := utils.ParseEther(strings.TrimSpace(text))
	if err != nil || amount.Sign() < 0 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAmount, text)
	}
	return amount, nil
}

// ParseExpenseID parses a base-10 expense id in the uint256 range.
// Surrounding whitespace is ignored.
func ParseExpenseID(text string) (*big.Int, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrExpenseIDRequired
	}

	id, ok := new(big.Int).SetString(text, 10)
	if !ok || id.Sign() < 0 || id.Cmp(maxUint256) > 0 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidExpenseID, text)
	}
	return id, nil
}
