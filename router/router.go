// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/pollbot/cliparse"
	"github.com/danielhkuo/pollbot/handlers"
	"github.com/danielhkuo/pollbot/middleware"
	"github.com/danielhkuo/pollbot/polls"
	"github.com/danielhkuo/pollbot/store"
)

func NewRouter(kv store.KeyValueStore, notifier handlers.Notifier, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	engine := polls.NewEngine(kv)
	dispatcher := handlers.NewDispatcher(engine, notifier, cfg.StoreTimeout, cfg.NotifyVotes)
	commandHandler := handlers.NewCommandHandler(dispatcher, cfg)
	pollHandler := handlers.NewPollHandler(engine, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Slash command transport
	mux.HandleFunc("POST /slack/commands", middleware.WithLogging(commandHandler.HandleCommand))

	// Results (read-only)
	mux.HandleFunc("GET /polls/{id}", middleware.WithLogging(pollHandler.GetPoll))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("pollbot API v1"))
	})

	return mux
}
