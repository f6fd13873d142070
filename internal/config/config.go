// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container. It aggregates
// all sub-configurations and is populated by merging values from
// command-line flags, environment variables, an optional JSON file and the
// built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds client behaviour settings.
	App App `envPrefix:"APP_"`

	// Chain holds the RPC endpoint and contract coordinates.
	Chain Chain `envPrefix:"CHAIN_"`

	// Wallet holds the signing key source.
	Wallet Wallet `envPrefix:"WALLET_"`

	// Storage holds the local transaction journal settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds configuration for background jobs.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds client behaviour settings.
type App struct {
	// LogPath is the file the client logs to. Relative paths are resolved
	// next to the executable.
	// Env: APP_LOG_PATH
	LogPath string `env:"LOG_PATH"`

	// ShareAlignment selects how custom-split participants and shares are
	// filtered: "positional" or "lockstep".
	// Env: APP_SHARE_ALIGNMENT
	ShareAlignment string `env:"SHARE_ALIGNMENT"`
}

// Chain holds the coordinates of the FairShare deployment.
type Chain struct {
	// RPCURL is the JSON-RPC endpoint (http, https, ws or wss).
	// Env: CHAIN_RPC_URL
	RPCURL string `env:"RPC_URL"`

	// ID is the chain id the client expects the endpoint to serve.
	// Transactions are signed for this id.
	// Env: CHAIN_ID
	ID int64 `env:"ID"`

	// ContractAddress is the hex address of the deployed contract.
	// Env: CHAIN_CONTRACT_ADDRESS
	ContractAddress string `env:"CONTRACT_ADDRESS"`

	// RequestTimeout bounds every single RPC request.
	// Env: CHAIN_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ConfirmationPoll is the interval between receipt lookups while a
	// transaction is waiting to be mined.
	// Env: CHAIN_CONFIRMATION_POLL
	ConfirmationPoll time.Duration `env:"CONFIRMATION_POLL"`

	// GasLimit fixes the gas limit of every transaction. Zero means the
	// limit is estimated by the node.
	// Env: CHAIN_GAS_LIMIT
	GasLimit uint64 `env:"GAS_LIMIT"`
}

// Wallet holds the source of the signing key. Exactly one of PrivateKey and
// KeystorePath must be set.
type Wallet struct {
	// PrivateKey is a hex-encoded secp256k1 key, with or without 0x.
	// Env: WALLET_PRIVATE_KEY
	PrivateKey string `env:"PRIVATE_KEY"`

	// KeystorePath is the path to an encrypted JSON keystore file.
	// Env: WALLET_KEYSTORE_PATH
	KeystorePath string `env:"KEYSTORE_PATH"`

	// KeystorePassphrase decrypts the keystore file.
	// Env: WALLET_KEYSTORE_PASSPHRASE
	KeystorePassphrase string `env:"KEYSTORE_PASSPHRASE"`
}

// Storage groups the configuration for local persistence.
type Storage struct {
	// DB holds the journal database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the SQLite journal.
type DB struct {
	// DSN is the SQLite file path or URI.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Workers holds configuration for background jobs.
type Workers struct {
	// ConnectionCheckInterval is how often the connection job probes the
	// RPC endpoint.
	// Env: WORKERS_CONNECTION_CHECK_INTERVAL
	ConnectionCheckInterval time.Duration `env:"CONNECTION_CHECK_INTERVAL"`
}

// GetStructuredConfig loads and merges the configuration from all sources
// using the process arguments.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder(os.Args[1:]).
		withFlags().
		withEnv().
		withJSON().
		withDefaults().
		build()
}
