// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-fair-share/internal/adapter"
	"github.com/MKhiriev/go-fair-share/internal/client"
	"github.com/MKhiriev/go-fair-share/internal/config"
	"github.com/MKhiriev/go-fair-share/internal/logger"
	"github.com/MKhiriev/go-fair-share/internal/service"
	"github.com/MKhiriev/go-fair-share/internal/store"
	"github.com/MKhiriev/go-fair-share/internal/tui"
	"github.com/MKhiriev/go-fair-share/models"
)

const role = "fairshare-client"

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetClientConfig()
	if err != nil {
		bootLog := logger.NewLogger(role, os.Stderr)
		bootLog.Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger(role, cfg.App.LogPath)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = log.WithContext(ctx)

	signer, err := adapter.NewSigner(cfg.Wallet)
	if err != nil {
		log.Fatal().Err(err).Msg("load signing key")
	}

	chain, err := adapter.DialEthChainAdapter(ctx, cfg.Chain, signer, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create chain adapter")
	}
	defer chain.Close()

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer storages.Close()

	services, err := service.NewClientServices(cfg, chain, storages, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create client services")
	}

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	ui, err := tui.New(ctx, services, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(ctx, services, ui, cfg.Workers, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	log.Info().
		Str("rpc", cfg.Chain.RPCURL).
		Int64("chain_id", cfg.Chain.ChainID).
		Str("contract", cfg.Chain.ContractAddress.Hex()).
		Str("account", signer.Address().Hex()).
		Msg("client configured")

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
