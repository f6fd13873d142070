// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrEncodingCall wraps failures to turn a submission into calldata,
	// typically a malformed participant or payer address.
	ErrEncodingCall = errors.New("cannot prepare contract call")

	// ErrInvalidLimit is returned by JournalService.Recent for a
	// non-positive limit.
	ErrInvalidLimit = errors.New("history limit must be positive")
)
