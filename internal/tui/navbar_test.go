// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-fair-share/models"
)

func TestRenderNavbar(t *testing.T) {
	account := common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")

	tests := []struct {
		name     string
		status   models.ConnectionStatus
		known    bool
		contains []string
		excludes []string
	}{
		{
			name:     "before first probe",
			known:    false,
			contains: []string{"Fairshare", "Connecting..."},
		},
		{
			name:     "node unreachable",
			status:   models.ConnectionStatus{Err: errors.New("dial tcp 127.0.0.1:8545: connect: connection refused")},
			known:    true,
			contains: []string{"Connect Wallet", "Network unavailable or RPC node unreachable"},
		},
		{
			name:     "wrong network",
			status:   models.ConnectionStatus{Connected: true, Account: account, ChainID: 1, ExpectedChainID: 31337, ChainName: "mainnet", Unsupported: true},
			known:    true,
			contains: []string{"Wrong network"},
			excludes: []string{"mainnet"},
		},
		{
			name:     "connected",
			status:   models.ConnectionStatus{Connected: true, Account: account, ChainID: 31337, ExpectedChainID: 31337, ChainName: "anvil"},
			known:    true,
			contains: []string{"anvil", "0xf39F…2266"},
			excludes: []string{"Wrong network", "Connect Wallet"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := renderNavbar(tt.status, tt.known)
			for _, s := range tt.contains {
				assert.Contains(t, out, s)
			}
			for _, s := range tt.excludes {
				assert.NotContains(t, out, s)
			}
		})
	}
}

func TestHumanizeNodeUnavailableError(t *testing.T) {
	assert.Equal(t, "", humanizeNodeUnavailableError(nil))
	assert.Equal(t, "Network unavailable or RPC node unreachable", humanizeNodeUnavailableError(errors.New("Post \"http://x\": i/o timeout")))
	assert.Equal(t, "execution reverted", humanizeNodeUnavailableError(errors.New("execution reverted")))
}
