// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package contract

import "fmt"

// Chain is a network the client can name in its status bar.
type Chain struct {
	ID   int64
	Name string
}

// Known chain ids.
const (
	ChainIDMainnet int64 = 1
	ChainIDPolygon int64 = 137
	ChainIDAnvil   int64 = 31337
	ChainIDSepolia int64 = 11155111
)

// KnownChains lists the chains the client recognizes, local first.
var KnownChains = []Chain{
	{ID: ChainIDAnvil, Name: "Anvil"},
	{ID: ChainIDMainnet, Name: "Ethereum"},
	{ID: ChainIDSepolia, Name: "Sepolia"},
	{ID: ChainIDPolygon, Name: "Polygon"},
}

// LookupChain returns the known chain with the given id.
func LookupChain(id int64) (Chain, bool) {
	for _, c := range KnownChains {
		if c.ID == id {
			return c, true
		}
	}
	return Chain{}, false
}

// ChainName returns the name of a known chain or "chain <id>" otherwise.
func ChainName(id int64) string {
	if c, ok := LookupChain(id); ok {
		return c.Name
	}
	return fmt.Sprintf("chain %d", id)
}
