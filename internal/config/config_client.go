// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/MKhiriev/go-fair-share/models"
)

// ClientApp holds client behaviour settings.
type ClientApp struct {
	// LogPath is the file the client logs to.
	LogPath string
	// ShareAlignment selects the custom-split filtering mode.
	ShareAlignment models.ShareAlignment
}

// ClientChain holds the chain settings used by the chain adapter.
type ClientChain struct {
	// RPCURL is the JSON-RPC endpoint.
	RPCURL string
	// ChainID is the chain id transactions are signed for.
	ChainID int64
	// ContractAddress is the deployed FairShare contract.
	ContractAddress common.Address
	// RequestTimeout bounds a single RPC request.
	RequestTimeout time.Duration
	// ConfirmationPoll is the interval between receipt lookups.
	ConfirmationPoll time.Duration
	// GasLimit fixes the gas limit; zero means estimate.
	GasLimit uint64
}

// ClientWallet holds the signing key source.
type ClientWallet struct {
	PrivateKey         string
	KeystorePath       string
	KeystorePassphrase string
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite connection string of the transaction journal.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// ConnectionCheckInterval defines how often the connection job runs.
	ConnectionCheckInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Chain   ClientChain
	Wallet  ClientWallet
	Storage ClientStorage
	Workers ClientWorkers
}

// GetClientConfig builds and validates the client configuration from flags,
// environment, the optional JSON file and defaults.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return NewClientConfig(cfg)
}

// NewClientConfig maps a merged [StructuredConfig] to a validated
// [ClientConfig].
func NewClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	clientCfg := &ClientConfig{
		App: ClientApp{
			LogPath:        cfg.App.LogPath,
			ShareAlignment: models.ShareAlignment(strings.ToLower(strings.TrimSpace(cfg.App.ShareAlignment))),
		},
		Chain: ClientChain{
			RPCURL:           strings.TrimSpace(cfg.Chain.RPCURL),
			ChainID:          cfg.Chain.ID,
			RequestTimeout:   cfg.Chain.RequestTimeout,
			ConfirmationPoll: cfg.Chain.ConfirmationPoll,
			GasLimit:         cfg.Chain.GasLimit,
		},
		Wallet: ClientWallet{
			PrivateKey:         strings.TrimSpace(cfg.Wallet.PrivateKey),
			KeystorePath:       strings.TrimSpace(cfg.Wallet.KeystorePath),
			KeystorePassphrase: cfg.Wallet.KeystorePassphrase,
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: cfg.Storage.DB.DSN},
		},
		Workers: ClientWorkers{
			ConnectionCheckInterval: cfg.Workers.ConnectionCheckInterval,
		},
	}

	address := strings.TrimSpace(cfg.Chain.ContractAddress)
	if !common.IsHexAddress(address) {
		return nil, fmt.Errorf("%w: contract address %q", ErrInvalidChainConfigs, address)
	}
	clientCfg.Chain.ContractAddress = common.HexToAddress(address)

	if err := clientCfg.validate(); err != nil {
		return nil, err
	}

	return clientCfg, nil
}
