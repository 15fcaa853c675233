// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultPort         = 3318
	DefaultDatabaseURL  = "file:pollbot.db"
	DefaultDatabaseType = "sqlite"
	DefaultSlackAPIURL  = "https://slack.com/api/"
	// Slack stops waiting for a slash-command reply after 3s.
	DefaultStoreTimeout = 2500 * time.Millisecond
)

type Config struct {
	Port               int
	DatabaseURL        string
	DatabaseType       string
	SlackToken         string
	SlackAPIURL        string
	SlackSigningSecret string
	StoreTimeout       time.Duration
	NotifyVotes        bool
	LogLevel           string
}

// ParseFlags reads flags, then the .env file, then environment variables.
// Flags win over env, env wins over .env, and defaults fill the rest.
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var envFile string
	var notifyVotes string

	fs := flag.NewFlagSet("pollbot", flag.ContinueOnError)

	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")
	fs.StringVar(&cfg.SlackAPIURL, "slack-api-url", "", "Slack Web API base URL")
	fs.DurationVar(&cfg.StoreTimeout, "store-timeout", 0, "Per-command store timeout")
	fs.StringVar(&notifyVotes, "notify-votes", "", "Post results to the channel after each vote (true/false)")
	fs.StringVar(&cfg.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&envFile, "env-file", ".env", "Path to a .env file")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.SlackToken, "slack-token", "", "Slack bot token (prefer env)")
	fs.StringVar(&cfg.SlackSigningSecret, "signing-secret", "", "Slack signing secret (prefer env)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// godotenv.Load never overrides variables that are already set
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("loading %s: %w", envFile, err)
		}
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = DefaultPort
		}
	}
	if cfg.Port <= 0 {
		return Config{}, errors.New("port must be positive")
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
	}
	if cfg.DatabaseType == "" {
		cfg.DatabaseType = DefaultDatabaseType
	}
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, fmt.Errorf("invalid database type %q (use sqlite or postgres)", cfg.DatabaseType)
	}
	if cfg.DatabaseURL == "" {
		if cfg.DatabaseType == "postgres" {
			return Config{}, errors.New("database URL required for postgres (use -d or DATABASE_URL env)")
		}
		cfg.DatabaseURL = DefaultDatabaseURL
	}

	if cfg.SlackToken == "" {
		cfg.SlackToken = os.Getenv("SLACK_API_KEY")
	}
	if cfg.SlackToken == "" {
		cfg.SlackToken = os.Getenv("SLACK_TOKEN")
	}
	if cfg.SlackAPIURL == "" {
		cfg.SlackAPIURL = os.Getenv("SLACK_API_URL")
	}
	if cfg.SlackAPIURL == "" {
		cfg.SlackAPIURL = DefaultSlackAPIURL
	}
	if cfg.SlackSigningSecret == "" {
		cfg.SlackSigningSecret = os.Getenv("SLACK_SIGNING_SECRET")
	}

	if cfg.StoreTimeout == 0 {
		if s := os.Getenv("STORE_TIMEOUT"); s != "" {
			d, err := time.ParseDuration(s)
			if err != nil {
				return Config{}, errors.New("invalid STORE_TIMEOUT env variable")
			}
			cfg.StoreTimeout = d
		} else {
			cfg.StoreTimeout = DefaultStoreTimeout
		}
	}
	if cfg.StoreTimeout <= 0 {
		return Config{}, errors.New("store timeout must be positive")
	}

	if notifyVotes == "" {
		notifyVotes = os.Getenv("NOTIFY_VOTES")
	}
	cfg.NotifyVotes = true
	if notifyVotes != "" {
		b, err := strconv.ParseBool(notifyVotes)
		if err != nil {
			return Config{}, fmt.Errorf("invalid notify-votes value %q", notifyVotes)
		}
		cfg.NotifyVotes = b
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = os.Getenv("LOG_LEVEL")
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	return cfg, nil
}
