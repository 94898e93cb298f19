package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/avetrin/go-folio/internal/adapter"
	"github.com/avetrin/go-folio/internal/blob"
	"github.com/avetrin/go-folio/internal/config"
	handlerhttp "github.com/avetrin/go-folio/internal/handler/http"
	"github.com/avetrin/go-folio/internal/logger"
	"github.com/avetrin/go-folio/internal/server"
	"github.com/avetrin/go-folio/internal/service"
	"github.com/avetrin/go-folio/internal/store"
	"github.com/avetrin/go-folio/internal/workers"
	"github.com/avetrin/go-folio/migrations"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("go-folio-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	// Background workers share the server's shutdown signals so the
	// sweeper stops alongside the HTTP listener.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = migrations.Migrate(db.DB); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	blobStore, err := blob.NewClient(ctx, cfg.Blob, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to blob store")
	}

	repositories := store.NewRepositories(db, log)
	mailer := adapter.NewWebhookMailer(cfg.Adapter, log)
	services := service.NewServices(repositories, blobStore, mailer, *cfg, log)
	handler := handlerhttp.NewHandler(services, cfg.Server, log)

	srv, err := server.NewServer(handler.Init(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if cfg.Workers.SweepInterval > 0 {
		sweeper := workers.NewBlobSweeper(repositories.FileRefRepository, blobStore, cfg.Workers.SweepInterval, log)
		workers.NewWorkers(sweeper).Run(ctx)
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
