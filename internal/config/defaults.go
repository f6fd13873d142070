// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"github.com/MKhiriev/go-fair-share/internal/contract"
	"github.com/MKhiriev/go-fair-share/models"
)

const (
	DefaultLogPath                 = "fairshare.log"
	DefaultRPCURL                  = "http://127.0.0.1:8545"
	DefaultRequestTimeout          = 15 * time.Second
	DefaultConfirmationPoll        = time.Second
	DefaultDSN                     = "fairshare.db"
	DefaultConnectionCheckInterval = 15 * time.Second
)

// defaultConfig returns the values used for every field no other source
// sets. They target a contract deployed first on a local development chain.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			LogPath:        DefaultLogPath,
			ShareAlignment: string(models.AlignPositional),
		},
		Chain: Chain{
			RPCURL:           DefaultRPCURL,
			ID:               contract.ChainIDAnvil,
			ContractAddress:  contract.DefaultAddress,
			RequestTimeout:   DefaultRequestTimeout,
			ConfirmationPoll: DefaultConfirmationPoll,
		},
		Storage: Storage{
			DB: DB{DSN: DefaultDSN},
		},
		Workers: Workers{
			ConnectionCheckInterval: DefaultConnectionCheckInterval,
		},
	}
}
