// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for pollbot.

# Route Registration

NewRouter builds the poll engine on the given store and returns a configured
http.ServeMux:

	mux := router.NewRouter(kv, notifier, cfg)

# Endpoints

Health:

	GET /health

Slash commands (Slack, form encoded):

	POST /slack/commands - new / vote / show

Results (read-only JSON):

	GET /polls/{id}

Command and results routes are wrapped with middleware.WithLogging.
*/
package router
