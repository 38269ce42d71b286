// Dockhand supervisor server — owns the host container engine and manages
// privileged worker containers for lab sessions.
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

	"github.com/codeready-toolchain/dockhand/pkg/runner/api"
	runnercfg "github.com/codeready-toolchain/dockhand/pkg/runner/config"
	"github.com/codeready-toolchain/dockhand/pkg/runner/engine"
	"github.com/codeready-toolchain/dockhand/pkg/runner/worker"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using existing environment")
	}

	cfg, err := runnercfg.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	eng, err := engine.New()
	if err != nil {
		slog.Error("Failed to create engine client", "error", err)
		os.Exit(1)
	}
	if err := eng.Ping(ctx); err != nil {
		slog.Error("Container engine unreachable", "error", err)
		os.Exit(1)
	}

	workers, err := worker.NewManager(ctx, cfg, eng)
	if err != nil {
		slog.Error("Failed to initialize worker manager", "error", err)
		os.Exit(1)
	}
	slog.Info("Worker manager ready", "live_workers", workers.Count())

	// Local TTL sweeper — defense in depth, independent of the
	// orchestrator's sweeper.
	sweepCtx, stopSweep := context.WithCancel(ctx)
	go func() {
		ticker := time.NewTicker(cfg.SweepInterval)
		defer ticker.Stop()
		for {
			select {
			case <-sweepCtx.Done():
				return
			case <-ticker.C:
				if n := workers.Sweep(context.Background(), time.Now().UTC()); n > 0 {
					slog.Info("Swept expired workers", "count", n)
				}
			}
		}
	}()
	defer stopSweep()

	server := api.NewServer(cfg, eng, workers)

	go func() {
		slog.Info("Supervisor listening", "addr", cfg.HTTPAddr)
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
