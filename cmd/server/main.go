package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vytor/flashcord/internal/api"
	"github.com/vytor/flashcord/internal/bridge"
	"github.com/vytor/flashcord/internal/config"
	"github.com/vytor/flashcord/internal/discord"
	"github.com/vytor/flashcord/internal/logger"
	"github.com/vytor/flashcord/internal/services"
)

func main() {
	cfg := config.Load()

	// Initialize logger
	log := logger.New(
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithColors(true),
	)
	logger.SetDefault(log)

	log.Info("===========================================")
	log.Info("Flashcord Server Starting")
	log.Info("===========================================")

	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration: %v", err)
		os.Exit(1)
	}

	log.Info("configuration loaded")
	log.Debug("addr=%s", cfg.Addr)
	log.Debug("log_level=%s", cfg.LogLevel)
	log.Debug("bridge_timeout=%s", cfg.BridgeTimeout)
	log.Debug("bridge_queue_size=%d", cfg.BridgeQueueSize)

	// Connect to the Discord gateway
	session, err := discord.New(&discord.Config{Token: cfg.DiscordToken})
	if err != nil {
		log.Error("failed to create discord session: %v", err)
		os.Exit(1)
	}
	if err := session.Open(); err != nil {
		log.Error("failed to connect to discord: %v", err)
		os.Exit(1)
	}

	// Initialize the session bridge
	br := bridge.New(&bridge.Config{
		Timeout:   cfg.BridgeTimeout,
		QueueSize: cfg.BridgeQueueSize,
		Ready:     session.Ready,
	})

	// Initialize services
	flashcardService := services.NewFlashcardService(session, br)
	historyService := services.NewHistoryService(session, br)

	srv := &api.Server{
		Flashcards: flashcardService,
		History:    historyService,
		Session:    session,
	}

	ctx, cancel := context.WithCancel(context.Background())
	br.Start(ctx)

	// Configure HTTP server
	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      srv.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start HTTP server
	go func() {
		log.Info("HTTP server listening on %s", cfg.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error: %v", err)
			os.Exit(1)
		}
	}()

	// Wait for shutdown signal
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	sig := <-stop

	log.Info("received signal %v, initiating graceful shutdown", sig)

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	// Shutdown HTTP server first so no new work reaches the bridge
	log.Debug("shutting down HTTP server")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error: %v", err)
	}

	// Drain the bridge
	log.Debug("stopping bridge")
	cancel()
	br.Stop()

	// Disconnect from Discord
	log.Debug("closing discord session")
	if err := session.Close(); err != nil {
		log.Error("discord session close error: %v", err)
	}

	log.Info("===========================================")
	log.Info("Flashcord Server Stopped")
	log.Info("===========================================")
}
