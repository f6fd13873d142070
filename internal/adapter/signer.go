// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/MKhiriev/go-fair-share/internal/config"
)

// Signer holds the account key transactions are signed with.
type Signer struct {
	key     *ecdsa.PrivateKey
	address common.Address
}

// NewSigner loads the key from whichever source wallet configures.
func NewSigner(wallet config.ClientWallet) (*Signer, error) {
	if wallet.KeystorePath != "" {
		return NewKeystoreSigner(wallet.KeystorePath, wallet.KeystorePassphrase)
	}
	return NewKeySigner(wallet.PrivateKey)
}

// NewKeySigner parses a hex-encoded secp256k1 private key. A 0x prefix is
// optional.
func NewKeySigner(hexKey string) (*Signer, error) {
	hexKey = strings.TrimPrefix(strings.TrimSpace(hexKey), "0x")
	key, err := crypto.HexToECDSA(hexKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPrivateKey, err)
	}

	return newSigner(key), nil
}

// NewKeystoreSigner decrypts a JSON keystore file with passphrase.
func NewKeystoreSigner(path, passphrase string) (*Signer, error) {
	keyJSON, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrKeystore, err)
	}

	key, err := keystore.DecryptKey(keyJSON, passphrase)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrKeystore, err)
	}

	return newSigner(key.PrivateKey), nil
}

func newSigner(key *ecdsa.PrivateKey) *Signer {
	return &Signer{
		key:     key,
		address: crypto.PubkeyToAddress(key.PublicKey),
	}
}

// Address returns the account address derived from the key.
func (s *Signer) Address() common.Address {
	return s.address
}

// transactOpts returns fresh transaction options signing for chainID.
func (s *Signer) transactOpts(chainID *big.Int) (*bind.TransactOpts, error) {
	opts, err := bind.NewKeyedTransactorWithChainID(s.key, chainID)
	if err != nil {
		return nil, fmt.Errorf("cannot create transactor: %w", err)
	}
	return opts, nil
}
