// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package contract

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// DefaultAddress is where FairShare lands when deployed first on a fresh
// local development chain.
const DefaultAddress = "0x5FbDB2315678afecb367f032d93F642f64180aa3"

var ErrInvalidAddress = errors.New("invalid address")

// ParseAddress parses a 0x-prefixed, 40 hex digit account address.
// Mixed-case input is accepted without checksum verification.
func ParseAddress(s string) (common.Address, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		return common.Address{}, fmt.Errorf("%w: %q", ErrInvalidAddress, s)
	}
	if !common.IsHexAddress(s) {
		return common.Address{}, fmt.Errorf("%w: %q", ErrInvalidAddress, s)
	}
	return common.HexToAddress(s), nil
}

// ParseAddresses parses every element of list with ParseAddress and stops at
// the first invalid one.
func ParseAddresses(list []string) ([]common.Address, error) {
	out := make([]common.Address, len(list))
	for i, s := range list {
		addr, err := ParseAddress(s)
		if err != nil {
			return nil, fmt.Errorf("participant %d: %w", i+1, err)
		}
		out[i] = addr
	}
	return out, nil
}
