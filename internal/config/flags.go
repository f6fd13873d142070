// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"
)

// RPCEndpoint holds a validated JSON-RPC URL.
// It implements the flag.Value interface.
type RPCEndpoint struct {
	URL string
}

var allowedRPCSchemes = []string{"http", "https", "ws", "wss"}

// ParseFlags parses the configuration flags in args.
//
// Flags:
//
//	-c/-config json file path with configs
//	-log log file path
//	-share-alignment positional or lockstep
//	-rpc JSON-RPC endpoint URL
//	-chain-id expected chain id
//	-contract FairShare contract address
//	-request-timeout per-request timeout (e.g., "15s")
//	-confirmation-poll receipt poll interval (e.g., "1s")
//	-gas-limit fixed gas limit, 0 to estimate
//	-private-key hex signing key
//	-keystore keystore file path
//	-passphrase keystore passphrase
//	-d journal database DSN
//	-connection-check connection probe interval (e.g., "15s")
func ParseFlags(args []string) (*StructuredConfig, error) {
	var rpc RPCEndpoint
	var jsonConfigPath string
	var logPath, shareAlignment string
	var chainID int64
	var contractAddress string
	var requestTimeout, confirmationPoll time.Duration
	var gasLimit uint64
	var privateKey, keystorePath, passphrase string
	var databaseDSN string
	var connectionCheck time.Duration

	fs := flag.NewFlagSet("fairshare", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&logPath, "log", "", "Log file path")
	fs.StringVar(&shareAlignment, "share-alignment", "", "Custom split share alignment: positional or lockstep")
	fs.Var(&rpc, "rpc", "JSON-RPC endpoint URL")
	fs.Int64Var(&chainID, "chain-id", 0, "Expected chain id")
	fs.StringVar(&contractAddress, "contract", "", "FairShare contract address")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "RPC request timeout (e.g., 15s)")
	fs.DurationVar(&confirmationPoll, "confirmation-poll", 0, "Receipt poll interval (e.g., 1s)")
	fs.Uint64Var(&gasLimit, "gas-limit", 0, "Fixed gas limit, 0 to estimate")
	fs.StringVar(&privateKey, "private-key", "", "Hex-encoded signing key")
	fs.StringVar(&keystorePath, "keystore", "", "Keystore file path")
	fs.StringVar(&passphrase, "passphrase", "", "Keystore passphrase")
	fs.StringVar(&databaseDSN, "d", "", "Journal database DSN")
	fs.DurationVar(&connectionCheck, "connection-check", 0, "Connection probe interval (e.g., 15s)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			LogPath:        logPath,
			ShareAlignment: shareAlignment,
		},
		Chain: Chain{
			RPCURL:           rpc.String(),
			ID:               chainID,
			ContractAddress:  contractAddress,
			RequestTimeout:   requestTimeout,
			ConfirmationPoll: confirmationPoll,
			GasLimit:         gasLimit,
		},
		Wallet: Wallet{
			PrivateKey:         privateKey,
			KeystorePath:       keystorePath,
			KeystorePassphrase: passphrase,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
		},
		Workers: Workers{
			ConnectionCheckInterval: connectionCheck,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns the endpoint URL, or an empty string when unset.
func (e *RPCEndpoint) String() string {
	return e.URL
}

// Set parses s as an absolute URL with an http, https, ws or wss scheme.
func (e *RPCEndpoint) Set(s string) error {
	u, err := url.Parse(strings.TrimSpace(s))
	if err != nil {
		return err
	}
	if u.Host == "" {
		return errors.New("rpc endpoint must include scheme and host")
	}

	scheme := strings.ToLower(u.Scheme)
	for _, allowed := range allowedRPCSchemes {
		if scheme == allowed {
			e.URL = u.String()
			return nil
		}
	}

	return fmt.Errorf("unsupported rpc scheme %q", u.Scheme)
}
