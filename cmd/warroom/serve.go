package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/fortuna/warroom/internal/api/rest"
	"github.com/fortuna/warroom/internal/api/websocket"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the dashboard over REST and WebSocket",
	Long: `Starts the REST API (REST_PORT) and the WebSocket push server (WS_PORT).
Every request triggers a fresh, independent refresh of both sources.`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	logger.Infof("Starting %s v%s - Fantasy Hockey Streaming Dashboard", serviceName, serviceVersion)

	a := newApp(cfg, logger, true)
	defer a.Close()

	// Initialize REST API server
	restServer := rest.NewServer(cfg.RESTPort, a.dashboard, a.teams, logger)
	go func() {
		if err := restServer.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Error("REST server error")
		}
	}()
	logger.Infof("✓ REST API server listening on :%s", cfg.RESTPort)

	// Initialize WebSocket server
	wsServer := websocket.NewServer(cfg.WSPort, a.dashboard, logger)
	go func() {
		if err := wsServer.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Error("WebSocket server error")
		}
	}()

	logger.Infof("  REST API: http://0.0.0.0:%s/api/v1/dashboard", cfg.RESTPort)
	logger.Infof("  WebSocket: ws://0.0.0.0:%s/ws/dashboard", cfg.WSPort)

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := restServer.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Warn("REST API server shutdown error")
	}
	if err := wsServer.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Warn("WebSocket server shutdown error")
	}

	logger.Info("warroom stopped")
	return nil
}
