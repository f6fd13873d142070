// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-fair-share/internal/adapter"
	"github.com/MKhiriev/go-fair-share/internal/config"
	"github.com/MKhiriev/go-fair-share/internal/logger"
	"github.com/MKhiriev/go-fair-share/internal/store"
	"github.com/MKhiriev/go-fair-share/internal/validators"
)

type ClientServices struct {
	SplitService      SplitService
	ExpenseService    ExpenseService
	ConnectionService ConnectionService
	JournalService    JournalService
}

func NewClientServices(cfg *config.ClientConfig, chain adapter.ChainAdapter, storages *store.ClientStorages, logger *logger.Logger) (*ClientServices, error) {
	validator := validators.NewSplitValidator()
	parser, err := validators.NewSplitFormParser(cfg.App.ShareAlignment, validator)
	if err != nil {
		return nil, fmt.Errorf("cannot build form parser: %w", err)
	}

	return &ClientServices{
		SplitService:      NewSplitService(chain, parser, validator, storages.JournalRepository, cfg.Chain.ChainID, logger),
		ExpenseService:    NewExpenseService(chain, logger),
		ConnectionService: NewConnectionService(chain, cfg.Chain.ChainID, logger),
		JournalService:    NewJournalService(storages.JournalRepository),
	}, nil
}
