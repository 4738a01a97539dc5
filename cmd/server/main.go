package main

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-pet-adopt/internal/config"
	"github.com/MKhiriev/go-pet-adopt/internal/handler"
	"github.com/MKhiriev/go-pet-adopt/internal/logger"
	"github.com/MKhiriev/go-pet-adopt/internal/server"
	"github.com/MKhiriev/go-pet-adopt/internal/service"
	"github.com/MKhiriev/go-pet-adopt/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("pet-adopt-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	db, err := store.NewDB(cfg.Storage.Mongo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := db.Close(ctx); err != nil {
			log.Err(err).Msg("error disconnecting from database")
		}
	}()

	storages := store.NewStorages(db, log)

	services := service.NewServices(*storages, *cfg, log)

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
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
