// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the pollbot server.

pollbot runs quick polls from a chat slash command. Users create a poll,
vote by choice number, and ask for the results, which are posted back to
the channel.

# Starting the Server

With no configuration the server uses a local SQLite file and logs
notifications instead of posting them:

	go run .

With PostgreSQL and Slack:

	DATABASE_TYPE=postgres DATABASE_URL=postgres://... SLACK_API_KEY=xoxb-... go run .

Or with flags:

	go run . -p 3318 -t postgres -d "postgres://..." -slack-token xoxb-...

# Commands

	/poll new What day is it?, Monday, Tuesday
	/poll vote 0 2
	/poll show 0

# Configuration

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - DATABASE_URL (-d): connection string (default: file:pollbot.db)
  - SLACK_API_KEY / SLACK_TOKEN (-slack-token): bot token for posting
  - SLACK_SIGNING_SECRET (-signing-secret): verify inbound requests
  - STORE_TIMEOUT (-store-timeout): per-command store timeout (default: 5s)
  - NOTIFY_VOTES (-notify-votes): post results after votes (default: true)
  - LOG_LEVEL (-log-level): debug, info, warn, error

A .env file in the working directory is loaded first.

# Architecture

  - handlers: command dispatch, slash-command and read-only HTTP handlers
  - polls: id allocation, poll records, voting and tallying
  - store: key-value store on SQL or in memory
  - notify: result formatting and Slack delivery
  - router: route definitions using Go 1.22+ routing
  - middleware: request logging and response helpers
  - models: domain, transport and notification types
  - auth: Slack request signature verification
  - db: connection and schema creation
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
