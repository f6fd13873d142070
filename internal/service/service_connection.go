// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-fair-share/internal/adapter"
	"github.com/MKhiriev/go-fair-share/internal/contract"
	"github.com/MKhiriev/go-fair-share/internal/logger"
	"github.com/MKhiriev/go-fair-share/models"
)

type connectionService struct {
	chain           adapter.ChainAdapter
	expectedChainID int64
	now             func() time.Time
	logger          *logger.Logger
}

func NewConnectionService(chain adapter.ChainAdapter, expectedChainID int64, logger *logger.Logger) ConnectionService {
	return &connectionService{
		chain:           chain,
		expectedChainID: expectedChainID,
		now:             time.Now,
		logger:          logger,
	}
}

// Status asks the endpoint for its chain id. An unreachable endpoint is
// reported as not connected; a chain other than the configured one is
// reported as unsupported.
func (s *connectionService) Status(ctx context.Context) models.ConnectionStatus {
	status := models.ConnectionStatus{
		Account:         s.chain.Account(),
		ExpectedChainID: s.expectedChainID,
		CheckedAt:       s.now(),
	}

	id, err := s.chain.ChainID(ctx)
	if err != nil {
		s.logger.Warn().Err(err).
			Str("func", "connectionService.Status").
			Msg("rpc endpoint is unreachable")
		status.Err = err
		return status
	}

	status.Connected = true
	status.ChainID = id
	status.ChainName = contract.ChainName(id)
	status.Unsupported = id != s.expectedChainID

	return status
}
