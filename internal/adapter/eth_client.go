// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/MKhiriev/go-fair-share/internal/config"
	"github.com/MKhiriev/go-fair-share/internal/logger"
	"github.com/MKhiriev/go-fair-share/models"
)

// Backend is the subset of the go-ethereum client API the adapter needs.
// *ethclient.Client and the simulated backend's client both satisfy it.
type Backend interface {
	bind.ContractBackend
	ethereum.ChainIDReader
	ethereum.TransactionReader
}

type ethChainAdapter struct {
	backend  Backend
	contract *bind.BoundContract
	address  common.Address
	signer   *Signer

	chainID        *big.Int
	requestTimeout time.Duration
	pollInterval   time.Duration
	gasLimit       uint64

	// sendMu serializes nonce assignment across concurrent submissions.
	sendMu  sync.Mutex
	closeFn func()

	logger *logger.Logger
}

// NewEthChainAdapter constructs a [ChainAdapter] over backend that signs
// with signer for the chain and contract in chainCfg.
func NewEthChainAdapter(chainCfg config.ClientChain, backend Backend, signer *Signer, logger *logger.Logger) ChainAdapter {
	return newEthChainAdapter(chainCfg, backend, signer, logger)
}

// DialEthChainAdapter connects to chainCfg.RPCURL and returns a
// [ChainAdapter] that owns the connection.
func DialEthChainAdapter(ctx context.Context, chainCfg config.ClientChain, signer *Signer, logger *logger.Logger) (ChainAdapter, error) {
	dialCtx, cancel := context.WithTimeout(ctx, chainCfg.RequestTimeout)
	defer cancel()

	client, err := ethclient.DialContext(dialCtx, chainCfg.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("cannot dial rpc endpoint %s: %w", chainCfg.RPCURL, err)
	}

	a := newEthChainAdapter(chainCfg, client, signer, logger)
	a.closeFn = client.Close
	return a, nil
}

func newEthChainAdapter(chainCfg config.ClientChain, backend Backend, signer *Signer, logger *logger.Logger) *ethChainAdapter {
	return &ethChainAdapter{
		backend:        backend,
		contract:       bind.NewBoundContract(chainCfg.ContractAddress, abi.ABI{}, backend, backend, backend),
		address:        chainCfg.ContractAddress,
		signer:         signer,
		chainID:        big.NewInt(chainCfg.ChainID),
		requestTimeout: chainCfg.RequestTimeout,
		pollInterval:   chainCfg.ConfirmationPoll,
		gasLimit:       chainCfg.GasLimit,
		logger:         logger,
	}
}

func (a *ethChainAdapter) Account() common.Address {
	return a.signer.Address()
}

func (a *ethChainAdapter) ChainID(ctx context.Context) (int64, error) {
	reqCtx, cancel := context.WithTimeout(ctx, a.requestTimeout)
	defer cancel()

	id, err := a.backend.ChainID(reqCtx)
	if err != nil {
		return 0, fmt.Errorf("chain id request: %w", err)
	}
	return id.Int64(), nil
}

func (a *ethChainAdapter) Send(ctx context.Context, call models.ContractCall) (common.Hash, error) {
	a.sendMu.Lock()
	defer a.sendMu.Unlock()

	served, err := a.ChainID(ctx)
	if err != nil {
		return common.Hash{}, err
	}
	if served != a.chainID.Int64() {
		return common.Hash{}, fmt.Errorf("%w: endpoint serves chain %d, expected %d", ErrWrongNetwork, served, a.chainID.Int64())
	}

	opts, err := a.signer.transactOpts(a.chainID)
	if err != nil {
		return common.Hash{}, err
	}

	reqCtx, cancel := context.WithTimeout(ctx, a.requestTimeout)
	defer cancel()

	opts.Context = reqCtx
	opts.Value = call.Value
	opts.GasLimit = a.gasLimit

	tx, err := a.contract.RawTransact(opts, call.Data)
	if err != nil {
		mapped := mapRPCError(err)
		a.logger.Err(mapped).
			Str("func", "ethChainAdapter.Send").
			Str("operation", string(call.Operation)).
			Msg("transaction was not broadcast")
		return common.Hash{}, mapped
	}

	a.logger.Info().
		Str("func", "ethChainAdapter.Send").
		Str("operation", string(call.Operation)).
		Str("tx_hash", tx.Hash().Hex()).
		Uint64("nonce", tx.Nonce()).
		Msg("transaction broadcast")

	return tx.Hash(), nil
}

func (a *ethChainAdapter) WaitMined(ctx context.Context, hash common.Hash) (models.TxReceipt, error) {
	ticker := time.NewTicker(a.pollInterval)
	defer ticker.Stop()

	for {
		receipt, err := a.receipt(ctx, hash)
		switch {
		case err == nil:
			result := toTxReceipt(receipt)
			if !result.Succeeded() {
				return result, a.revertError(ctx, hash, receipt)
			}
			return result, nil
		case errors.Is(err, ethereum.NotFound):
		default:
			a.logger.Warn().Err(err).
				Str("func", "ethChainAdapter.WaitMined").
				Str("tx_hash", hash.Hex()).
				Msg("receipt lookup failed, retrying")
		}

		select {
		case <-ctx.Done():
			return models.TxReceipt{}, ctx.Err()
		case <-ticker.C:
		}
	}
}

func (a *ethChainAdapter) Call(ctx context.Context, data []byte) ([]byte, error) {
	reqCtx, cancel := context.WithTimeout(ctx, a.requestTimeout)
	defer cancel()

	msg := ethereum.CallMsg{
		From: a.signer.Address(),
		To:   &a.address,
		Data: data,
	}
	output, err := a.backend.CallContract(reqCtx, msg, nil)
	if err != nil {
		return nil, mapRPCError(err)
	}
	return output, nil
}

func (a *ethChainAdapter) Close() {
	if a.closeFn != nil {
		a.closeFn()
	}
}

func (a *ethChainAdapter) receipt(ctx context.Context, hash common.Hash) (*types.Receipt, error) {
	reqCtx, cancel := context.WithTimeout(ctx, a.requestTimeout)
	defer cancel()

	return a.backend.TransactionReceipt(reqCtx, hash)
}

// revertError replays a reverted transaction as a call on the state of the
// previous block to recover the revert reason. The replay is best effort:
// when it cannot run or does not revert, only ErrTransactionReverted is
// returned.
func (a *ethChainAdapter) revertError(ctx context.Context, hash common.Hash, receipt *types.Receipt) error {
	reqCtx, cancel := context.WithTimeout(ctx, a.requestTimeout)
	defer cancel()

	tx, _, err := a.backend.TransactionByHash(reqCtx, hash)
	if err != nil {
		return ErrTransactionReverted
	}

	block := receipt.BlockNumber
	if block != nil && block.Sign() > 0 {
		block = new(big.Int).Sub(block, big.NewInt(1))
	}

	msg := ethereum.CallMsg{
		From:  a.signer.Address(),
		To:    tx.To(),
		Gas:   tx.Gas(),
		Value: tx.Value(),
		Data:  tx.Data(),
	}
	if _, callErr := a.backend.CallContract(reqCtx, msg, block); callErr != nil {
		mapped := mapRPCError(callErr)
		if errors.Is(mapped, ErrExecutionReverted) {
			return fmt.Errorf("%w: %w", ErrTransactionReverted, mapped)
		}
	}

	return ErrTransactionReverted
}

func toTxReceipt(r *types.Receipt) models.TxReceipt {
	result := models.TxReceipt{
		Hash:    r.TxHash,
		GasUsed: r.GasUsed,
		Status:  r.Status,
	}
	if r.BlockNumber != nil {
		result.BlockNumber = r.BlockNumber.Uint64()
	}
	return result
}
