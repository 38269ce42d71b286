// Dockhand orchestrator server — session lifecycle, grading, and the
// REST/WebSocket API backing the lab UI.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/codeready-toolchain/dockhand/pkg/api"
	"github.com/codeready-toolchain/dockhand/pkg/cleanup"
	"github.com/codeready-toolchain/dockhand/pkg/config"
	"github.com/codeready-toolchain/dockhand/pkg/database"
	"github.com/codeready-toolchain/dockhand/pkg/grader"
	"github.com/codeready-toolchain/dockhand/pkg/labs"
	"github.com/codeready-toolchain/dockhand/pkg/notify"
	"github.com/codeready-toolchain/dockhand/pkg/services"
	"github.com/codeready-toolchain/dockhand/pkg/supervisor"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using existing environment")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load store config", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to open store", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing store", "error", err)
		}
	}()
	slog.Info("Store ready", "path", dbConfig.Path)

	catalog := labs.NewShippedCatalog(cfg.LabsDir)
	supClient := supervisor.NewClient(cfg.SupervisorBaseURL, cfg.HTTPTimeout)

	userService := services.NewUserService(dbClient.Client, cfg.TokenSecret, cfg.TokenTTL)
	sessionService := services.NewSessionService(dbClient.Client, supClient, catalog, cfg.SessionTTL, supervisor.Quotas{})
	attemptService := services.NewAttemptService(dbClient.Client)
	inspectorService := services.NewInspectorService(attemptService)
	slog.Info("Services initialized")

	server := api.NewServer(cfg, dbClient,
		userService, sessionService, attemptService, inspectorService,
		catalog, supClient)
	server.SetGraderRegistry(grader.NewShippedRegistry())
	server.SetNotifier(notify.NewService(notify.ServiceConfig{
		Token:   cfg.SlackBotToken,
		Channel: cfg.SlackChannelID,
	}))
	if err := server.ValidateWiring(); err != nil {
		slog.Error("Server wiring incomplete", "error", err)
		os.Exit(1)
	}

	sweeper := cleanup.NewService(cfg.SweepInterval, sessionService)
	sweeper.Start(ctx)
	defer sweeper.Stop()

	go func() {
		slog.Info("HTTP server listening", "addr", cfg.HTTPAddr)
		if err := server.Start(cfg.HTTPAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("HTTP server failed", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	slog.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Shutdown failed", "error", err)
	}
}
