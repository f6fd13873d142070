// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// ConnectionStatus is the navbar view of the wallet and chain connection.
type ConnectionStatus struct {
	// Connected is true when the RPC endpoint answered the last probe.
	Connected bool

	// Account is the address of the loaded signing key.
	Account common.Address

	// ChainID is the chain id reported by the RPC endpoint.
	ChainID int64

	// ExpectedChainID is the chain id from configuration.
	ExpectedChainID int64

	// ChainName is the human-readable name of ChainID, or "chain <id>"
	// for chains the client does not know.
	ChainName string

	// Unsupported is true when the endpoint serves a different chain than
	// the configured one.
	Unsupported bool

	// Err is the last probe error, if any.
	Err error

	CheckedAt time.Time
}
