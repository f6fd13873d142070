// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import "strings"

// SplitList splits a comma-separated string, trims every token and drops
// the empty ones. Order is preserved.
func SplitList(s string) []string {
	tokens := SplitTokens(s)
	out := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if token != "" {
			out = append(out, token)
		}
	}
	return out
}

// SplitTokens splits a comma-separated string and trims every token while
// keeping empty tokens in place, so positions line up with the input.
// An empty input yields no tokens.
func SplitTokens(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// ShortHex abbreviates a hex string such as an address or tx hash to its
// first six and last four characters.
func ShortHex(s string) string {
	if len(s) <= 12 {
		return s
	}
	return s[:6] + "…" + s[len(s)-4:]
}
