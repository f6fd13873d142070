// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport-layer abstraction for talking to
// the FairShare contract over an EVM JSON-RPC endpoint.
//
// The primary abstraction is [ChainAdapter], which decouples the service
// layer from go-ethereum. The package ships one implementation
// ([NewEthChainAdapter], [DialEthChainAdapter]) that signs with a locally
// loaded key ([Signer]) and works against any [Backend], including an
// in-process simulated chain.
//
// Error values defined in errors.go are mapped from RPC and receipt errors
// by mapRPCError so that callers can use [errors.Is] (e.g.
// [ErrExecutionReverted] when a call or gas estimation reverts,
// [ErrTransactionReverted] for a mined transaction with failed status).
package adapter

import (
	"context"

	"github.com/ethereum/go-ethereum/common"

	"github.com/MKhiriev/go-fair-share/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/chain_adapter_mock.go -package=mock

// ChainAdapter defines communication with the chain hosting the FairShare
// contract. Implementations sign with a single account and address a
// single contract.
type ChainAdapter interface {
	// Account returns the address of the signing key.
	Account() common.Address

	// ChainID returns the chain id reported by the RPC endpoint.
	ChainID(ctx context.Context) (int64, error)

	// Send signs call as a transaction to the contract and broadcasts it.
	// It returns as soon as the node accepted the transaction. Errors
	// raised before broadcast (gas estimation reverts, wrong network,
	// nonce or funds problems) are returned here and no transaction exists.
	Send(ctx context.Context, call models.ContractCall) (common.Hash, error)

	// WaitMined polls for the receipt of hash until it is available or ctx
	// is done. A receipt with failed status is returned together with an
	// error wrapping [ErrTransactionReverted].
	WaitMined(ctx context.Context, hash common.Hash) (models.TxReceipt, error)

	// Call executes a read-only call against the contract at the latest
	// block and returns the raw output.
	Call(ctx context.Context, data []byte) ([]byte, error)

	// Close releases the underlying RPC connection.
	Close()
}
