package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/quantpitch/pitchdeck/internal/api"
	"github.com/quantpitch/pitchdeck/internal/api/handlers"
	"github.com/quantpitch/pitchdeck/internal/export"
	"github.com/quantpitch/pitchdeck/internal/presentation"
	"github.com/quantpitch/pitchdeck/internal/scheduler"
	"github.com/quantpitch/pitchdeck/internal/scheduler/jobs"
	"github.com/quantpitch/pitchdeck/pkg/config"
	"github.com/quantpitch/pitchdeck/pkg/logger"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the presentation API server",
	Long: `Starts the HTTP server backing the investor presentation.

Endpoints:
  GET  /health              - Health check
  GET  /api/performance     - Generated series + summary stats
  GET  /api/deck            - Full presentation model
  GET  /ws/performance      - Live refresh stream

Example:
  go run ./cmd/deck serve
  go run ./cmd/deck serve --port 8080`,
	RunE: runServe,
}

var servePort string

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&servePort, "port", "", "server port (overrides PORT)")
}

func runServe(cmd *cobra.Command, args []string) error {
	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if servePort != "" {
		cfg.Port = servePort
	}

	// 2. Initialize logger
	log := logger.New(cfg)

	log.WithFields(map[string]interface{}{
		"port": cfg.Port,
		"env":  cfg.Env,
	}).Info("Initializing presentation server")

	// 3. Load deck content
	content, err := presentation.LoadContent(cfg.ContentPath)
	if err != nil {
		return fmt.Errorf("load deck content: %w", err)
	}

	// 4. Create handlers
	deckHandler := handlers.NewDeckHandler(cfg, content, log)
	wsHandler := handlers.NewStreamHandler(cfg, log)

	// 5. Create router and server
	router := api.NewRouter(deckHandler, wsHandler, cfg, log)
	server := api.New(cfg, log, router)

	// 6. Optional chart refresh scheduler
	var sched *scheduler.Scheduler
	if cfg.Export.RefreshEnabled {
		sched = scheduler.New(log)
		renderer := export.NewRenderer(cfg, log)
		job := jobs.NewChartRefreshJob(cfg, content, renderer, log)
		if err := sched.AddJob(job); err != nil {
			return fmt.Errorf("add chart refresh job: %w", err)
		}
		sched.Start()
	}

	// 7. Start server with graceful shutdown
	go func() {
		if err := server.Start(); err != nil {
			log.WithError(err).Fatal("Failed to start server")
		}
	}()

	fmt.Printf("Server running on http://localhost:%s\n", cfg.Port)
	fmt.Println("Press Ctrl+C to stop")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	if sched != nil {
		sched.Stop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	log.Info("Server stopped")
	return nil
}
