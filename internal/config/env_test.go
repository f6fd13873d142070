// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_LOG_PATH":        "/var/log/fairshare.log",
		"APP_SHARE_ALIGNMENT": "lockstep",

		"CHAIN_RPC_URL":           "https://rpc.sepolia.org",
		"CHAIN_ID":                "11155111",
		"CHAIN_CONTRACT_ADDRESS":  "0x5FbDB2315678afecb367f032d93F642f64180aa3",
		"CHAIN_REQUEST_TIMEOUT":   "30s",
		"CHAIN_CONFIRMATION_POLL": "2s",
		"CHAIN_GAS_LIMIT":         "300000",

		"WALLET_PRIVATE_KEY":         "0xabc",
		"WALLET_KEYSTORE_PATH":       "/keys/wallet.json",
		"WALLET_KEYSTORE_PASSPHRASE": "secret",

		"STORAGE_DB_DSN": "/tmp/journal.db",

		"WORKERS_CONNECTION_CHECK_INTERVAL": "1m",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "/var/log/fairshare.log", cfg.App.LogPath)
	assert.Equal(t, "lockstep", cfg.App.ShareAlignment)

	assert.Equal(t, "https://rpc.sepolia.org", cfg.Chain.RPCURL)
	assert.Equal(t, int64(11155111), cfg.Chain.ID)
	assert.Equal(t, "0x5FbDB2315678afecb367f032d93F642f64180aa3", cfg.Chain.ContractAddress)
	assert.Equal(t, 30*time.Second, cfg.Chain.RequestTimeout)
	assert.Equal(t, 2*time.Second, cfg.Chain.ConfirmationPoll)
	assert.Equal(t, uint64(300000), cfg.Chain.GasLimit)

	assert.Equal(t, "0xabc", cfg.Wallet.PrivateKey)
	assert.Equal(t, "/keys/wallet.json", cfg.Wallet.KeystorePath)
	assert.Equal(t, "secret", cfg.Wallet.KeystorePassphrase)

	assert.Equal(t, "/tmp/journal.db", cfg.Storage.DB.DSN)
	assert.Equal(t, time.Minute, cfg.Workers.ConnectionCheckInterval)
}

func TestParseEnv_PartialFields(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"CHAIN_RPC_URL":  "ws://localhost:8546",
		"STORAGE_DB_DSN": "journal.db",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "ws://localhost:8546", cfg.Chain.RPCURL)
	assert.Zero(t, cfg.Chain.ID)
	assert.Zero(t, cfg.Chain.RequestTimeout)
	assert.Equal(t, "journal.db", cfg.Storage.DB.DSN)

	assert.Equal(t, App{}, cfg.App)
	assert.Equal(t, Wallet{}, cfg.Wallet)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseEnv_EmptyEnv(t *testing.T) {
	// Arrange
	clearEnvVars(t)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseEnv_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{name: "duration", key: "CHAIN_REQUEST_TIMEOUT", val: "soon"},
		{name: "chain id", key: "CHAIN_ID", val: "mainnet"},
		{name: "gas limit", key: "CHAIN_GAS_LIMIT", val: "-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setEnvVars(t, map[string]string{tt.key: tt.val})

			err := parseEnv(&StructuredConfig{})
			require.Error(t, err)
			assert.Contains(t, err.Error(), "env")
		})
	}
}

// Helpers

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

var configEnvKeys = []string{
	"CONFIG",

	"APP_LOG_PATH",
	"APP_SHARE_ALIGNMENT",

	"CHAIN_RPC_URL",
	"CHAIN_ID",
	"CHAIN_CONTRACT_ADDRESS",
	"CHAIN_REQUEST_TIMEOUT",
	"CHAIN_CONFIRMATION_POLL",
	"CHAIN_GAS_LIMIT",

	"WALLET_PRIVATE_KEY",
	"WALLET_KEYSTORE_PATH",
	"WALLET_KEYSTORE_PASSPHRASE",

	"STORAGE_DB_DSN",

	"WORKERS_CONNECTION_CHECK_INTERVAL",
}

// clearEnvVars unsets every variable the config reads. t.Setenv registers
// the restore of the previous value before the unset.
func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, k := range configEnvKeys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}
