package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/intelli-scan/internal/adapter"
	"github.com/MKhiriev/intelli-scan/internal/config"
	"github.com/MKhiriev/intelli-scan/internal/crypto"
	"github.com/MKhiriev/intelli-scan/internal/handler"
	"github.com/MKhiriev/intelli-scan/internal/logger"
	"github.com/MKhiriev/intelli-scan/internal/server"
	"github.com/MKhiriev/intelli-scan/internal/service"
	"github.com/MKhiriev/intelli-scan/internal/store"
	"github.com/MKhiriev/intelli-scan/internal/validators"
	"github.com/MKhiriev/intelli-scan/internal/workers"
	"github.com/MKhiriev/intelli-scan/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo)

	log := logger.NewLogger("intelli-scan-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	log.Debug().
		Str("http_address", cfg.Server.HTTPAddress).
		Str("grpc_address", cfg.Server.GRPCAddress).
		Str("db_driver", cfg.Storage.DB.Driver).
		Bool("google_sign_in", cfg.OAuth.Enabled()).
		Msg("received configs")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	hasher := crypto.NewPasswordHasher(crypto.Argon2Params{
		Memory:     cfg.Auth.Argon2.Memory,
		Iterations: cfg.Auth.Argon2.Iterations,
		Threads:    cfg.Auth.Argon2.Threads,
	})

	var provider adapter.OAuthProvider
	if cfg.OAuth.Enabled() {
		provider = adapter.NewGoogleProvider(ctx, cfg.OAuth, log)
	}

	services, err := service.NewServices(storages, hasher, provider, validators.NewRequestValidator(), *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	background := workers.NewWorkers(
		workers.NewStateSweeper(storages.StateStore, cfg.Workers.StateSweepInterval, log),
	)
	go background.Run(ctx)

	srv.RunServer()
}
