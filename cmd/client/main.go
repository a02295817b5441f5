package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/fintrace-client/internal/adapter"
	"github.com/MKhiriev/fintrace-client/internal/client"
	"github.com/MKhiriev/fintrace-client/internal/config"
	"github.com/MKhiriev/fintrace-client/internal/logger"
	"github.com/MKhiriev/fintrace-client/internal/service"
	"github.com/MKhiriev/fintrace-client/internal/store"
	"github.com/MKhiriev/fintrace-client/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, args, err := config.GetClientConfig(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		return 2
	}

	log := logger.NewClientLogger("fintrace-client", cfg.Log.Level, cfg.Log.File)
	log.Debug().Any("config", cfg).Msg("received configs")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	analyzer, err := adapter.NewHTTPAnalyzerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Error().Err(err).Msg("create analyzer adapter")
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	var storages *store.Storages
	if cfg.History.Enabled() {
		storages, err = store.NewStorages(ctx, cfg.History, log)
		if err != nil {
			// history is optional, analysis still works without it
			log.Error().Err(err).Msg("open history store")
			fmt.Fprintf(os.Stderr, "warning: history disabled: %v\n", err)
			storages = nil
		} else {
			defer storages.Close()
		}
	}

	services := service.NewClientServices(analyzer, storages, cfg.Workers, log)

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	app, err := client.NewApp(services, cfg, args, buildInfo, log)
	if err != nil {
		log.Error().Err(err).Msg("init client app error")
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	if err = app.Run(ctx); err != nil {
		log.Error().Err(err).Msg("client run error")
		fmt.Fprintf(os.Stderr, "error: %s\n", client.HumanizeError(err))
		if errors.Is(err, client.ErrUsage) || errors.Is(err, client.ErrUnknownCommand) {
			return 2
		}
		return 1
	}

	return 0
}
