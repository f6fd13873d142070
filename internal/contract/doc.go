// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package contract describes the FairShare contract as seen by the client:
// the state-changing and read-only functions it calls, how their arguments
// are encoded and how their results are decoded, plus the table of chains
// the client can name.
//
// The contract itself is external. Nothing here reproduces its rules; an
// argument the contract would reject is encoded as given and the rejection
// surfaces as a transaction or call error.
package contract
