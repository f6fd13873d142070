// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import sq "github.com/Masterminds/squirrel"

const journalTable = "tx_journal"

var journalColumns = []string{
	"id",
	"operation",
	"hash",
	"phase",
	"error",
	"account",
	"chain_id",
	"block_number",
	"created_at",
	"updated_at",
}

// sqlite uses ? placeholders
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)
