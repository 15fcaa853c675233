// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package notify

import (
	"context"
	"log/slog"

	"github.com/danielhkuo/pollbot/models"
)

// Sink delivers a rendered notification somewhere outside the service.
type Sink interface {
	Send(ctx context.Context, payload models.NotificationPayload) error
}

// LogSink writes notifications to the log. Used when no Slack token is set.
type LogSink struct{}

func (LogSink) Send(ctx context.Context, payload models.NotificationPayload) error {
	results := make([]string, len(payload.Results.Fields))
	for i, f := range payload.Results.Fields {
		results[i] = f.Title + " (" + f.Value + ")"
	}
	slog.Info("poll notification",
		"notification_id", payload.ID,
		"channel", payload.Channel,
		"poll_id", payload.PollID,
		"question", payload.Question,
		"results", results,
	)
	return nil
}
