// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitList(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "two entries", input: "0xAAA, 0xBBB", want: []string{"0xAAA", "0xBBB"}},
		{name: "drops empty tokens", input: " 0xAAA,, 0xBBB , ,", want: []string{"0xAAA", "0xBBB"}},
		{name: "empty input", input: "", want: []string{}},
		{name: "only separators", input: " , ,", want: []string{}},
		{name: "keeps order", input: "c,b,a", want: []string{"c", "b", "a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitList(tt.input))
		})
	}
}

func TestSplitTokens_KeepsPositions(t *testing.T) {
	assert.Equal(t, []string{"a", "", "b"}, SplitTokens("a, ,b"))
	assert.Nil(t, SplitTokens("   "))
}

func TestShortHex(t *testing.T) {
	assert.Equal(t, "0x5FbD…0aa3", ShortHex("0x5FbDB2315678afecb367f032d93F642f64180aa3"))
	assert.Equal(t, "0xabc", ShortHex("0xabc"))
}
