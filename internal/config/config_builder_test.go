// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder(nil)
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder(nil).build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder(nil)
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_FirstSourceWins verifies that a field set by an earlier config
// is not overwritten by a later one, while unset fields are filled.
func TestBuild_FirstSourceWins(t *testing.T) {
	b := newConfigBuilder(nil)
	b.configs = append(b.configs,
		&StructuredConfig{Chain: Chain{ID: 1}},
		&StructuredConfig{Chain: Chain{ID: 31337, RPCURL: "http://localhost:8545"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, int64(1), cfg.Chain.ID)
	assert.Equal(t, "http://localhost:8545", cfg.Chain.RPCURL)
}

// ── withFlags / withEnv ───────────────────────────────────────────────────────

func TestWithFlags_AppendsParsedFlags(t *testing.T) {
	b := newConfigBuilder([]string{"-chain-id", "137"})
	assert.Same(t, b, b.withFlags())

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, int64(137), b.configs[0].Chain.ID)
}

func TestWithFlags_SetsErrorOnBadArgs(t *testing.T) {
	b := newConfigBuilder([]string{"-chain-id", "x"})
	b.withFlags()

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	setEnvVars(t, map[string]string{"CHAIN_ID": "137"})

	b := newConfigBuilder(nil)
	assert.Same(t, b, b.withEnv())

	require.Len(t, b.configs, 1)
	assert.Equal(t, int64(137), b.configs[0].Chain.ID)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder(nil)
	b.configs = append(b.configs, &StructuredConfig{})
	b.withJSON()

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.Chain.RPCURL = "https://json.example"
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder(nil)
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "https://json.example", b.configs[1].Chain.RPCURL)
}

func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder(nil)
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/nonexistent/config.json"})
	b.withJSON()

	assert.Error(t, b.err)
}

// TestWithJSON_UsesFirstPath verifies that the path from the highest
// priority source is used.
func TestWithJSON_UsesFirstPath(t *testing.T) {
	first := StructuredJSONConfig{}
	first.App.LogPath = "first.log"
	second := StructuredJSONConfig{}
	second.App.LogPath = "second.log"

	b := newConfigBuilder(nil)
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: writeTempJSONConfig(t, first)},
		&StructuredConfig{JSONFilePath: writeTempJSONConfig(t, second)},
	)
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "first.log", b.configs[2].App.LogPath)
}

// ── full chain ────────────────────────────────────────────────────────────────

func TestBuilder_Precedence(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.Chain.RPCURL = "https://json.example"
	payload.Chain.ID = 11155111
	payload.Storage.DB.DSN = "json.db"
	path := writeTempJSONConfig(t, payload)

	setEnvVars(t, map[string]string{
		"CONFIG":         path,
		"CHAIN_ID":       "137",
		"STORAGE_DB_DSN": "env.db",
	})

	cfg, err := newConfigBuilder([]string{"-d", "flag.db"}).
		withFlags().
		withEnv().
		withJSON().
		withDefaults().
		build()
	require.NoError(t, err)

	assert.Equal(t, "flag.db", cfg.Storage.DB.DSN, "flags beat env")
	assert.Equal(t, int64(137), cfg.Chain.ID, "env beats json")
	assert.Equal(t, "https://json.example", cfg.Chain.RPCURL, "json beats defaults")
	assert.Equal(t, DefaultRequestTimeout, cfg.Chain.RequestTimeout, "defaults fill the rest")
	assert.Equal(t, 15*time.Second, cfg.Workers.ConnectionCheckInterval)
	assert.Equal(t, "positional", cfg.App.ShareAlignment)
}
