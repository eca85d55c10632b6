package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/recipe-manager/internal/config"
	handlerHTTP "github.com/MKhiriev/recipe-manager/internal/handler/http"
	"github.com/MKhiriev/recipe-manager/internal/logger"
	"github.com/MKhiriev/recipe-manager/internal/server"
	"github.com/MKhiriev/recipe-manager/internal/service"
	"github.com/MKhiriev/recipe-manager/internal/store"
	"github.com/MKhiriev/recipe-manager/migrations"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("recipe-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("server", cfg.Server).Msg("received configs")

	if cfg.App.Version == "" {
		cfg.App.Version = buildVersion
	}

	db, err := store.NewConnectPostgres(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err := migrations.Migrate(db.DB); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	storages := store.NewStorages(db, log)
	services := service.NewServices(storages, cfg, log)
	handler := handlerHTTP.NewHandler(services, cfg.Server, log)

	srv, err := server.NewServer(handler.Init(), cfg.Server, log)
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
