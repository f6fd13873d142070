// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the layout of the JSON
// config file. Durations accept Go duration strings ("15s") or nanoseconds.
type StructuredJSONConfig struct {
	App struct {
		LogPath        string `json:"log_path"`
		ShareAlignment string `json:"share_alignment"`
	} `json:"app,omitempty"`

	Chain struct {
		RPCURL           string   `json:"rpc_url"`
		ID               int64    `json:"id"`
		ContractAddress  string   `json:"contract_address"`
		RequestTimeout   Duration `json:"request_timeout"`
		ConfirmationPoll Duration `json:"confirmation_poll"`
		GasLimit         uint64   `json:"gas_limit"`
	} `json:"chain,omitempty"`

	Wallet struct {
		PrivateKey         string `json:"private_key"`
		KeystorePath       string `json:"keystore_path"`
		KeystorePassphrase string `json:"keystore_passphrase"`
	} `json:"wallet,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Workers struct {
		ConnectionCheckInterval Duration `json:"connection_check_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			LogPath:        jsonCfg.App.LogPath,
			ShareAlignment: jsonCfg.App.ShareAlignment,
		},
		Chain: Chain{
			RPCURL:           jsonCfg.Chain.RPCURL,
			ID:               jsonCfg.Chain.ID,
			ContractAddress:  jsonCfg.Chain.ContractAddress,
			RequestTimeout:   time.Duration(jsonCfg.Chain.RequestTimeout),
			ConfirmationPoll: time.Duration(jsonCfg.Chain.ConfirmationPoll),
			GasLimit:         jsonCfg.Chain.GasLimit,
		},
		Wallet: Wallet{
			PrivateKey:         jsonCfg.Wallet.PrivateKey,
			KeystorePath:       jsonCfg.Wallet.KeystorePath,
			KeystorePassphrase: jsonCfg.Wallet.KeystorePassphrase,
		},
		Storage: Storage{
			DB: DB{DSN: jsonCfg.Storage.DB.DSN},
		},
		Workers: Workers{
			ConnectionCheckInterval: time.Duration(jsonCfg.Workers.ConnectionCheckInterval),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
