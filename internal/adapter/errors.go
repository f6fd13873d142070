// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	ErrExecutionReverted   = errors.New("execution reverted")
	ErrTransactionReverted = errors.New("transaction reverted")
	ErrWrongNetwork        = errors.New("wrong network")
	ErrInvalidPrivateKey   = errors.New("invalid private key")
	ErrKeystore            = errors.New("cannot unlock keystore")
)
