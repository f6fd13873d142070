// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-fair-share/internal/store"
	"github.com/MKhiriev/go-fair-share/models"
)

type journalService struct {
	journal store.TxJournalRepository
}

func NewJournalService(journal store.TxJournalRepository) JournalService {
	return &journalService{journal: journal}
}

func (s *journalService) Recent(ctx context.Context, limit int) ([]models.JournalEntry, error) {
	if limit <= 0 {
		return nil, ErrInvalidLimit
	}

	entries, err := s.journal.ListRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("load transaction history: %w", err)
	}
	return entries, nil
}
