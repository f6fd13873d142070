// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-fair-share/internal/adapter"
	"github.com/MKhiriev/go-fair-share/internal/contract"
	"github.com/MKhiriev/go-fair-share/internal/logger"
	"github.com/MKhiriev/go-fair-share/internal/store"
	"github.com/MKhiriev/go-fair-share/internal/utils"
	"github.com/MKhiriev/go-fair-share/internal/validators"
	"github.com/MKhiriev/go-fair-share/models"
)

type splitService struct {
	chain     adapter.ChainAdapter
	parser    validators.FormParser
	validator validators.Validator
	journal   store.TxJournalRepository
	ids       utils.IDGenerator
	chainID   int64
	now       func() time.Time
	logger    *logger.Logger
}

// NewSplitService builds a SplitService that sends through chain and
// records every transaction in journal. A nil journal disables recording.
func NewSplitService(
	chain adapter.ChainAdapter,
	parser validators.FormParser,
	validator validators.Validator,
	journal store.TxJournalRepository,
	chainID int64,
	logger *logger.Logger,
) SplitService {
	return &splitService{
		chain:     chain,
		parser:    parser,
		validator: validator,
		journal:   journal,
		ids:       utils.NewUUIDGenerator(),
		chainID:   chainID,
		now:       time.Now,
		logger:    logger,
	}
}

func (s *splitService) SubmitEqualSplit(ctx context.Context, form models.EqualSplitForm) (models.PendingTx, error) {
	submission, err := s.parser.EqualSplit(ctx, form)
	if err != nil {
		return models.PendingTx{}, err
	}

	call, err := contract.EncodeCreateEqualSplit(submission)
	if err != nil {
		return models.PendingTx{}, fmt.Errorf("%w: %w", ErrEncodingCall, err)
	}

	return s.send(ctx, call)
}

func (s *splitService) SubmitCustomSplit(ctx context.Context, form models.CustomSplitForm) (models.PendingTx, error) {
	submission, err := s.parser.CustomSplit(ctx, form)
	if err != nil {
		s.logger.Debug().Err(err).
			Str("func", "splitService.SubmitCustomSplit").
			Msg("custom split rejected before submission")
		return models.PendingTx{}, err
	}

	call, err := contract.EncodeCreateCustomSplit(submission)
	if err != nil {
		return models.PendingTx{}, fmt.Errorf("%w: %w", ErrEncodingCall, err)
	}

	return s.send(ctx, call)
}

func (s *splitService) PayShare(ctx context.Context, form models.PayShareForm) (models.PendingTx, error) {
	submission, err := s.parser.PayShare(ctx, form)
	if err != nil {
		return models.PendingTx{}, err
	}

	call, err := contract.EncodePayShare(submission)
	if err != nil {
		return models.PendingTx{}, fmt.Errorf("%w: %w", ErrEncodingCall, err)
	}

	return s.send(ctx, call)
}

func (s *splitService) Settle(ctx context.Context, form models.SettleForm) (models.PendingTx, error) {
	submission, err := s.parser.Settle(ctx, form)
	if err != nil {
		return models.PendingTx{}, err
	}

	call, err := contract.EncodeSettleExpense(submission)
	if err != nil {
		return models.PendingTx{}, fmt.Errorf("%w: %w", ErrEncodingCall, err)
	}

	return s.send(ctx, call)
}

func (s *splitService) AwaitConfirmation(ctx context.Context, pending models.PendingTx) (models.TxReceipt, error) {
	receipt, err := s.chain.WaitMined(ctx, pending.Hash)

	// the process is shutting down; the entry stays in confirming
	if ctxErr := ctx.Err(); ctxErr != nil && err != nil {
		return receipt, err
	}

	update := models.JournalUpdate{
		ID:          pending.JournalID,
		Phase:       models.PhaseConfirmed,
		BlockNumber: receipt.BlockNumber,
		UpdatedAt:   s.now(),
	}
	if err != nil {
		update.Phase = models.PhaseFailed
		update.Error = err.Error()
		s.logger.Err(err).
			Str("func", "splitService.AwaitConfirmation").
			Str("operation", string(pending.Operation)).
			Str("tx_hash", pending.Hash.Hex()).
			Msg("transaction failed")
	} else {
		s.logger.Info().
			Str("func", "splitService.AwaitConfirmation").
			Str("operation", string(pending.Operation)).
			Str("tx_hash", pending.Hash.Hex()).
			Uint64("block", receipt.BlockNumber).
			Msg("transaction confirmed")
	}

	if pending.JournalID != "" {
		s.updateJournal(ctx, update)
	}

	return receipt, err
}

func (s *splitService) Ready(ctx context.Context, form any) error {
	switch form.(type) {
	case models.PayShareForm, *models.PayShareForm, models.SettleForm, *models.SettleForm:
		return s.validator.Validate(ctx, form)
	default:
		return nil
	}
}

// send broadcasts call and journals the result. The returned error is the
// adapter error unchanged.
func (s *splitService) send(ctx context.Context, call models.ContractCall) (models.PendingTx, error) {
	hash, err := s.chain.Send(ctx, call)

	now := s.now()
	account := s.chain.Account()
	entry := models.JournalEntry{
		ID:        s.ids.Generate(),
		Operation: call.Operation,
		Account:   account.Hex(),
		ChainID:   s.chainID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err != nil {
		entry.Phase = models.PhaseFailed
		entry.Error = err.Error()
		s.logger.Err(err).
			Str("func", "splitService.send").
			Str("operation", string(call.Operation)).
			Bool("wrong_network", errors.Is(err, adapter.ErrWrongNetwork)).
			Msg("contract call rejected")
		s.saveJournal(ctx, entry)
		return models.PendingTx{}, err
	}

	entry.Hash = hash.Hex()
	entry.Phase = models.PhaseConfirming
	journalID := s.saveJournal(ctx, entry)

	return models.PendingTx{
		JournalID:   journalID,
		Operation:   call.Operation,
		Hash:        hash,
		From:        account,
		SubmittedAt: now,
	}, nil
}

// saveJournal returns the entry id, or an empty string when nothing was
// written.
func (s *splitService) saveJournal(ctx context.Context, entry models.JournalEntry) string {
	if s.journal == nil {
		return ""
	}

	if err := s.journal.Save(ctx, entry); err != nil {
		s.logger.Err(err).
			Str("func", "splitService.saveJournal").
			Str("operation", string(entry.Operation)).
			Str("tx_hash", entry.Hash).
			Msg("cannot record transaction in journal")
		return ""
	}

	return entry.ID
}

func (s *splitService) updateJournal(ctx context.Context, update models.JournalUpdate) {
	if s.journal == nil {
		return
	}

	if err := s.journal.Update(ctx, update); err != nil {
		s.logger.Err(err).
			Str("func", "splitService.updateJournal").
			Str("id", update.ID).
			Msg("cannot record transaction outcome in journal")
	}
}
