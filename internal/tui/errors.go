// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-fair-share/internal/validators"
)

// localValidationErrors are raised before any call is issued and are shown
// in the blocking overlay instead of the form.
var localValidationErrors = []error{
	validators.ErrShareCountMismatch,
	validators.ErrInvalidShare,
	validators.ErrInvalidAmount,
	validators.ErrExpenseIDRequired,
	validators.ErrInvalidExpenseID,
	validators.ErrShareAmountRequired,
}

func isValidationError(err error) bool {
	for _, target := range localValidationErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func humanizeNodeUnavailableError(err error) string {
	if err == nil {
		return ""
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "Network unavailable or RPC node unreachable"
	}

	return err.Error()
}
