// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package notify

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/pollbot/models"
)

const DefaultSendTimeout = 30 * time.Second

// Notifier sends notifications in the background. Callers never wait on
// delivery and never see its errors; failures are logged.
type Notifier struct {
	sink    Sink
	timeout time.Duration
	wg      sync.WaitGroup
}

func NewNotifier(sink Sink, timeout time.Duration) *Notifier {
	if timeout <= 0 {
		timeout = DefaultSendTimeout
	}
	return &Notifier{sink: sink, timeout: timeout}
}

// Dispatch assigns the payload an id, starts delivery, and returns the id.
func (n *Notifier) Dispatch(payload models.NotificationPayload) string {
	payload.ID = uuid.NewString()

	n.wg.Add(1)
	go func() {
		defer n.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), n.timeout)
		defer cancel()

		if err := n.sink.Send(ctx, payload); err != nil {
			slog.Warn("notification failed",
				"error", err,
				"notification_id", payload.ID,
				"poll_id", payload.PollID,
				"channel", payload.Channel,
			)
			return
		}
		slog.Debug("notification sent", "notification_id", payload.ID, "poll_id", payload.PollID)
	}()

	return payload.ID
}

// Wait blocks until every dispatched notification has finished.
func (n *Notifier) Wait() {
	n.wg.Wait()
}
