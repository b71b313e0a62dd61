// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/danielhkuo/retro-studio/cliparse"
	"github.com/danielhkuo/retro-studio/db"
	"github.com/danielhkuo/retro-studio/middleware"
	"github.com/danielhkuo/retro-studio/router"
	"github.com/danielhkuo/retro-studio/store"
)

func main() {
	// Load .env if present; real env always wins
	godotenv.Load()

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Open database and bring schema up to date
	conn, err := db.Open(cfg.DatabaseURL, cfg.DatabaseType)
	if err != nil {
		slog.Error("database setup failed", "error", err)
		os.Exit(1)
	}
	defer conn.Close()
	slog.Info("Database schema ready", "type", cfg.DatabaseType)

	// Create store and router
	st := store.New(conn, cfg.VotePolicy)
	mux := router.NewRouter(st)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port, "vote_policy", cfg.VotePolicy)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
