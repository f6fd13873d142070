// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"math/big"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// EtherDecimals is the number of fractional digits of the contract's base
// unit: one whole unit equals 10^18 base units.
const EtherDecimals = 18

var ErrInvalidDecimal = errors.New("invalid decimal number")

// decimalPattern accepts an optional minus sign, digits, and at most one
// decimal point. Either side of the point may be empty, so "", ".", "5."
// and ".5" are all accepted.
var decimalPattern = regexp.MustCompile(`^-?[0-9]*\.?[0-9]*$`)

// ParseUnits converts a decimal string into an integer amount scaled by
// 10^decimals. Missing digits on either side of the point read as zero, so
// an empty string parses to 0. Digits beyond the scale are rounded half away
// from zero. Exponents, thousands separators and surrounding spaces are
// rejected with [ErrInvalidDecimal].
func ParseUnits(s string, decimals int32) (*big.Int, error) {
	if !decimalPattern.MatchString(s) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDecimal, s)
	}

	negative := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	integer, fraction, _ := strings.Cut(s, ".")
	if integer == "" {
		integer = "0"
	}
	normalized := integer
	if fraction != "" {
		normalized += "." + fraction
	}
	if negative {
		normalized = "-" + normalized
	}

	d, err := decimal.NewFromString(normalized)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDecimal, s)
	}

	return d.Shift(decimals).Round(0).BigInt(), nil
}

// ParseEther converts a decimal string into 18-decimal base units.
func ParseEther(s string) (*big.Int, error) {
	return ParseUnits(s, EtherDecimals)
}

// FormatUnits renders a base-unit amount as a decimal string without
// trailing zeros. A nil amount renders as "0".
func FormatUnits(v *big.Int, decimals int32) string {
	if v == nil {
		return "0"
	}
	return decimal.NewFromBigInt(v, -decimals).String()
}

// FormatEther renders 18-decimal base units as a decimal string.
func FormatEther(v *big.Int) string {
	return FormatUnits(v, EtherDecimals)
}
