// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Noveltea Authors

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MatthewMacalaladGBC/Noveltea-app/internal/adapter"
	"github.com/MatthewMacalaladGBC/Noveltea-app/internal/client"
	"github.com/MatthewMacalaladGBC/Noveltea-app/internal/config"
	"github.com/MatthewMacalaladGBC/Noveltea-app/internal/crypto"
	"github.com/MatthewMacalaladGBC/Noveltea-app/internal/logger"
	"github.com/MatthewMacalaladGBC/Noveltea-app/internal/service"
	"github.com/MatthewMacalaladGBC/Noveltea-app/internal/store"
	"github.com/MatthewMacalaladGBC/Noveltea-app/internal/tui"
	"github.com/MatthewMacalaladGBC/Noveltea-app/internal/validators"
	"github.com/MatthewMacalaladGBC/Noveltea-app/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	bootLog := logger.NewLogger("noveltea-client")
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		bootLog.Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("noveltea-client", cfg.App.LogFile)

	storages, err := store.NewClientStorages(context.Background(), cfg.Storage, crypto.NewSealer(cfg.App.SecretKey), log)
	if err != nil {
		log.Fatal().Err(err).Msg("create client storage")
	}

	adapters, err := adapter.NewAdapters(cfg.Adapter, validators.NewValidator(), log)
	if err != nil {
		log.Fatal().Err(err).Msg("create api adapters")
	}

	services := service.NewClientServices(storages, adapters, log)

	ui, err := tui.New(services, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), cfg.Workers.RefreshInterval, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	runErr := app.Run()
	if err = storages.Close(); err != nil {
		log.Error().Err(err).Msg("close client storage")
	}
	if runErr != nil {
		log.Fatal().Err(runErr).Msg("client run error")
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
