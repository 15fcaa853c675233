// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# CLI Flags

	-p                Server port (default: 3318)
	-d                Database URL (default: file:pollbot.db)
	-t                Database type, sqlite or postgres (default: sqlite)
	-slack-token      Slack bot token for chat.postMessage
	-slack-api-url    Slack Web API base URL
	-signing-secret   Slack signing secret for request verification
	-store-timeout    Per-command store timeout (default: 2.5s, under Slack's 3s reply window)
	-notify-votes     Post results after each vote (default: true)
	-log-level        debug, info, warn, error (default: info)
	-env-file         .env file to load (default: .env)

# Environment Variables

Flags fall back to environment variables:

	PORT                 → -p
	DATABASE_URL         → -d
	DATABASE_TYPE        → -t
	SLACK_API_KEY        → -slack-token
	SLACK_TOKEN          → -slack-token (if SLACK_API_KEY is unset)
	SLACK_API_URL        → -slack-api-url
	SLACK_SIGNING_SECRET → -signing-secret
	STORE_TIMEOUT        → -store-timeout
	NOTIFY_VOTES         → -notify-votes
	LOG_LEVEL            → -log-level

Variables may also come from the .env file; values already present in the
environment are never replaced by it. CLI flags take precedence over both.

# Validation

ParseFlags returns an error if:

  - PORT or STORE_TIMEOUT cannot be parsed, or are not positive
  - the database type is not sqlite or postgres
  - postgres is selected without a database URL

An empty Slack token is allowed; notifications are then written to the log.
An empty signing secret disables request verification.
*/
package cliparse
