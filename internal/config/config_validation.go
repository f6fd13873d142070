// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

func (cfg *ClientConfig) validate() error {
	if !cfg.App.ShareAlignment.Valid() {
		return fmt.Errorf("%w: share alignment %q", ErrInvalidAppConfigs, cfg.App.ShareAlignment)
	}

	if cfg.Chain.RPCURL == "" {
		return fmt.Errorf("%w: rpc url is empty", ErrInvalidChainConfigs)
	}
	if err := new(RPCEndpoint).Set(cfg.Chain.RPCURL); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidChainConfigs, err)
	}
	if cfg.Chain.ChainID <= 0 {
		return fmt.Errorf("%w: chain id must be positive", ErrInvalidChainConfigs)
	}
	if cfg.Chain.RequestTimeout <= 0 || cfg.Chain.ConfirmationPoll <= 0 {
		return fmt.Errorf("%w: timeouts must be positive", ErrInvalidChainConfigs)
	}

	hasKey := cfg.Wallet.PrivateKey != ""
	hasKeystore := cfg.Wallet.KeystorePath != ""
	if hasKey == hasKeystore {
		return fmt.Errorf("%w: set exactly one of private key and keystore path", ErrInvalidWalletConfigs)
	}

	if cfg.Storage.DB.DSN == "" || isInMemoryDSN(cfg.Storage.DB.DSN) {
		return ErrInvalidStorageConfigs
	}

	if cfg.Workers.ConnectionCheckInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

// isInMemoryDSN reports whether dsn opens a SQLite database that does not
// outlive the process.
func isInMemoryDSN(dsn string) bool {
	path, query, _ := strings.Cut(dsn, "?")
	path = strings.TrimPrefix(path, "file:")
	if path == ":memory:" {
		return true
	}
	for _, param := range strings.Split(query, "&") {
		if param == "mode=memory" {
			return true
		}
	}
	return false
}
