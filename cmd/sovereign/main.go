// Command sovereign runs one Sovereign Health simulation session behind the
// HTTP/WebSocket API, with SQLite snapshots and host-owned auto-advance.
package main

import (
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/ohindex/sovereign-health/internal/api"
	"github.com/ohindex/sovereign-health/internal/config"
	"github.com/ohindex/sovereign-health/internal/entropy"
	"github.com/ohindex/sovereign-health/internal/events"
	"github.com/ohindex/sovereign-health/internal/game"
	"github.com/ohindex/sovereign-health/internal/persistence"
	"github.com/ohindex/sovereign-health/internal/scheduler"
)

// speedIntervals maps the engine's pacing setting to real auto-advance delays.
var speedIntervals = map[game.Speed]time.Duration{
	game.SpeedSlow:   12 * time.Second,
	game.SpeedNormal: 8 * time.Second,
	game.SpeedFast:   4 * time.Second,
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := os.MkdirAll("data", 0755); err != nil {
		slog.Error("failed to create data dir", "error", err)
		os.Exit(1)
	}
	db, err := persistence.Open(cfg.DBPath)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	slog.Info("database opened", "path", cfg.DBPath)

	deck, err := events.Load()
	if err != nil {
		slog.Error("failed to load event deck", "error", err)
		os.Exit(1)
	}
	slog.Info("event deck loaded", "events", deck.Len())

	rng := entropy.NewSource(cfg.RandomOrgKey)
	if rng == nil {
		slog.Info("RANDOM_ORG_KEY not set, event draws use crypto/rand")
	}

	if cfg.AdminKey == "" {
		slog.Warn("ADMIN_KEY not set, the action endpoint will be disabled")
	}

	session := game.NewSession(cfg.Seed)
	slog.Info("session created", "session", session.ID, "seed", cfg.Seed)

	hub := api.NewHub()
	go hub.Run()

	server := &api.Server{
		Session:  session,
		Deck:     deck,
		Rand:     rng,
		DB:       db,
		Hub:      hub,
		Port:     cfg.Port,
		AdminKey: cfg.AdminKey,
	}

	// The host owns the auto-advance timer: re-armed on every state change,
	// stopped whenever the phase, speed, or flag no longer calls for it.
	var (
		mu     sync.Mutex
		handle *scheduler.Handle
	)
	server.OnChange = func(st game.State) {
		mu.Lock()
		defer mu.Unlock()
		if handle != nil {
			handle.Stop()
			handle = nil
		}
		if st.AutoAdvance && st.Phase == game.PhasePlaying {
			interval := speedIntervals[st.Speed]
			if interval == 0 {
				interval = speedIntervals[game.SpeedNormal]
			}
			handle = scheduler.Start(interval, func() {
				server.DispatchLocked(game.AdvanceCycle{})
			})
		}
	}

	server.Start()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	slog.Info("received signal, shutting down", "signal", sig)

	mu.Lock()
	if handle != nil {
		handle.Stop()
	}
	mu.Unlock()

	if err := db.SaveSnapshot(session.ID, session.Snapshot()); err != nil {
		slog.Error("final save failed", "error", err)
	}
	slog.Info("session saved, goodbye", "session", session.ID)
}
