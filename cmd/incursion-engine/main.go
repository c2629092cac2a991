package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/blacksite-games/incursion-engine/internal/api"
	"github.com/blacksite-games/incursion-engine/internal/challenges"
	"github.com/blacksite-games/incursion-engine/internal/config"
	"github.com/blacksite-games/incursion-engine/internal/content"
	"github.com/blacksite-games/incursion-engine/internal/game"
	"github.com/blacksite-games/incursion-engine/internal/missions"
	"github.com/blacksite-games/incursion-engine/internal/publish"
)

func main() {
	// Setup structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	slog.Info("starting incursion-engine",
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
		"session_minutes", cfg.Game.SessionDurationMinutes,
	)

	// Load scenario content overlays
	pack, err := content.LoadDir(cfg.Content.Dir)
	if err != nil {
		slog.Error("failed to load content", "dir", cfg.Content.Dir, "error", err)
		os.Exit(1)
	}

	// Game engine with built-in sectors and passwords
	engine := game.New(cfg.Game.SessionDurationMinutes)
	for _, pw := range pack.Passwords {
		if err := engine.PutPassword(pw); err != nil {
			slog.Warn("skipping content password", "code", pw.Code, "error", err)
		}
	}

	// Mission manager adjudicates external puzzle outcomes against the engine
	missionManager := missions.NewManager(engine)
	for _, m := range pack.Missions {
		missionManager.Put(m)
	}

	// Challenge library and session
	library := challenges.NewLibrary()
	for _, c := range pack.Challenges {
		if err := library.Add(c); err != nil {
			slog.Warn("skipping content challenge", "id", c.ID, "error", err)
		}
	}
	session := challenges.NewSession(library)

	// WebSocket hub follows engine state
	hub := api.NewHub()
	engine.Subscribe(hub.BroadcastState)

	// Optional Redis mirror for external displays
	var publisher *publish.Publisher
	if cfg.Redis.Enabled {
		publisher, err = publish.NewPublisher(cfg.Redis.Address, cfg.Redis.Password, cfg.Redis.Channel)
		if err != nil {
			slog.Error("failed to connect redis publisher", "error", err)
			os.Exit(1)
		}
		engine.Subscribe(publisher.Publish)
		slog.Info("redis publisher connected", "addr", cfg.Redis.Address, "channel", cfg.Redis.Channel)
	}

	// Setup HTTP server
	server := api.NewServer(cfg.Server, engine, missionManager, library, session, hub)
	httpServer := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      server.Router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		slog.Info("HTTP server starting", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down gracefully...")

	// Stop the attack loop before tearing down transports
	engine.Stop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	if publisher != nil {
		if err := publisher.Close(); err != nil {
			slog.Error("redis publisher close error", "error", err)
		}
	}

	slog.Info("incursion-engine stopped")
}
