package main

import (
	"context"
	"fmt"

	"github.com/redproduct/hotelkeeper/internal/config"
	myHTTP "github.com/redproduct/hotelkeeper/internal/handler/http"
	"github.com/redproduct/hotelkeeper/internal/logger"
	"github.com/redproduct/hotelkeeper/internal/mailer"
	"github.com/redproduct/hotelkeeper/internal/server"
	"github.com/redproduct/hotelkeeper/internal/service"
	"github.com/redproduct/hotelkeeper/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("hotelkeeper-server")

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	smtpMailer := mailer.NewSMTPMailer(cfg.Email, log)

	services := service.NewServices(storages, smtpMailer, cfg.App, cfg.Email, log)

	handler := myHTTP.NewHandler(services, storages.ImageStorage, storages.DB, log)

	srv, err := server.NewServer(handler, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
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
