// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [NewClientConfig] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidChainConfigs indicates invalid chain settings
	// (for example, missing RPC URL or a malformed contract address).
	ErrInvalidChainConfigs = errors.New("invalid chain configuration")
	// ErrInvalidWalletConfigs indicates that neither or both of the private
	// key and keystore path are set.
	ErrInvalidWalletConfigs = errors.New("invalid wallet configuration")
	// ErrInvalidStorageConfigs indicates invalid client storage settings
	// (for example, empty DSN or unsupported in-memory DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, an unknown share alignment).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, zero connection check interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
