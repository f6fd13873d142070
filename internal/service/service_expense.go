// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"math/big"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-fair-share/internal/adapter"
	"github.com/MKhiriev/go-fair-share/internal/contract"
	"github.com/MKhiriev/go-fair-share/internal/logger"
	"github.com/MKhiriev/go-fair-share/internal/validators"
	"github.com/MKhiriev/go-fair-share/models"
)

type expenseService struct {
	chain  adapter.ChainAdapter
	now    func() time.Time
	logger *logger.Logger
}

func NewExpenseService(chain adapter.ChainAdapter, logger *logger.Logger) ExpenseService {
	return &expenseService{
		chain:  chain,
		now:    time.Now,
		logger: logger,
	}
}

func (s *expenseService) Load(ctx context.Context, q models.ExpenseQuery) (models.ExpenseView, error) {
	if strings.TrimSpace(q.ExpenseID) == "" {
		return models.ExpenseView{}, nil
	}

	id, err := validators.ParseExpenseID(q.ExpenseID)
	if err != nil {
		return models.ExpenseView{}, err
	}

	var view models.ExpenseView

	// every query reports into its own fields; none of them cancels the others
	var g errgroup.Group

	g.Go(func() error {
		view.Expense, view.ExpenseErr = s.expense(ctx, id)
		return nil
	})

	g.Go(func() error {
		view.EveryonePaid, view.EveryonePaidErr = s.everyonePaid(ctx, id)
		return nil
	})

	if participant := strings.TrimSpace(q.Participant); participant != "" {
		view.ShareQueried = true
		g.Go(func() error {
			view.Share, view.ShareErr = s.shareOf(ctx, id, participant)
			return nil
		})
	}

	_ = g.Wait()
	view.LoadedAt = s.now()

	if err = view.Err(); err != nil {
		s.logger.Warn().Err(err).
			Str("func", "expenseService.Load").
			Str("expense_id", id.String()).
			Msg("expense query failed")
	}

	return view, nil
}

func (s *expenseService) expense(ctx context.Context, id *big.Int) (*models.Expense, error) {
	data, err := contract.EncodeExpenses(id)
	if err != nil {
		return nil, err
	}

	output, err := s.chain.Call(ctx, data)
	if err != nil {
		return nil, err
	}

	expense, err := contract.DecodeExpense(id, output)
	if err != nil {
		return nil, err
	}
	return &expense, nil
}

func (s *expenseService) shareOf(ctx context.Context, id *big.Int, participant string) (*big.Int, error) {
	addr, err := contract.ParseAddress(participant)
	if err != nil {
		return nil, err
	}

	data, err := contract.EncodeShareOf(id, addr)
	if err != nil {
		return nil, err
	}

	output, err := s.chain.Call(ctx, data)
	if err != nil {
		return nil, err
	}

	return contract.DecodeShareOf(output)
}

func (s *expenseService) everyonePaid(ctx context.Context, id *big.Int) (*bool, error) {
	data, err := contract.EncodeHasEveryonePaid(id)
	if err != nil {
		return nil, err
	}

	output, err := s.chain.Call(ctx, data)
	if err != nil {
		return nil, err
	}

	paid, err := contract.DecodeHasEveryonePaid(output)
	if err != nil {
		return nil, err
	}
	return &paid, nil
}
