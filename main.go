package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/danielhkuo/pollbot/cliparse"
	"github.com/danielhkuo/pollbot/db"
	"github.com/danielhkuo/pollbot/notify"
	"github.com/danielhkuo/pollbot/router"
	"github.com/danielhkuo/pollbot/store"
)

const shutdownTimeout = 10 * time.Second

func main() {
	var err error

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel(cfg.LogLevel),
	})))

	// Connect to the database
	dbConn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		slog.Error("database connection failed", "error", err, "type", cfg.DatabaseType)
		os.Exit(1)
	}
	defer dbConn.Close()

	// Create schema (tables)
	if err := db.CreateSchema(dbConn, cfg.DatabaseType); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready", "type", cfg.DatabaseType)

	kv, err := store.NewSQLStore(dbConn, cfg.DatabaseType)
	if err != nil {
		slog.Error("store setup failed", "error", err)
		os.Exit(1)
	}

	// Outbound notifications
	var sink notify.Sink = notify.LogSink{}
	if cfg.SlackToken != "" {
		sink = notify.NewSlackSink(cfg.SlackAPIURL, cfg.SlackToken)
	} else {
		slog.Warn("no Slack token configured, notifications will be logged only")
	}
	notifier := notify.NewNotifier(sink, notify.DefaultSendTimeout)

	// Create router
	mux := router.NewRouter(kv, notifier, cfg)

	// Create server
	server := &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ln, err := net.Listen("tcp", ":"+strconv.Itoa(cfg.Port))
	if err != nil {
		slog.Error("listen failed", "error", err, "port", cfg.Port)
		os.Exit(1)
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)

	slog.Info("Listening", "port", cfg.Port)
	if err := serve(server, ln, ctrlc, notifier); err != nil {
		slog.Error("Server closed", "error", err)
		return
	}
	slog.Info("Server closed")
}

// drainer is the part of the notifier the shutdown sequence needs
type drainer interface {
	Wait()
}

// serve runs server until a signal arrives on stop, then shuts it down.
// It returns only after every in-flight handler has finished and the
// notifications they dispatched have been sent.
func serve(server *http.Server, ln net.Listener, stop <-chan os.Signal, notifier drainer) error {
	// Closed once Shutdown has returned and no handler is still running
	drained := make(chan struct{})
	go func() {
		// Wait for Ctrl-C signal
		<-stop
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			slog.Warn("Shutdown did not drain in time", "error", err)
		}
		close(drained)
	}()

	err := server.Serve(ln)
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	// Serve returns as soon as Shutdown starts
	<-drained

	// No handler can dispatch anymore; let in-flight notifications finish
	notifier.Wait()
	return nil
}

func logLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return level
}
