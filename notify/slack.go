// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/danielhkuo/pollbot/models"
)

const (
	// BotName and BotIcon are shown as the message author in Slack.
	BotName = "Poll Bot"
	BotIcon = ":chart_with_upwards_trend:"

	// PostRate is the proactive throttle for chat.postMessage (Slack allows
	// roughly one message per second per channel).
	PostRate = 1.0

	// PostBurst lets a short run of notifications out before throttling.
	PostBurst = 3
)

var ErrSlackAPI = errors.New("slack api error")

// SlackSink posts notifications with chat.postMessage.
type SlackSink struct {
	client  *http.Client
	baseURL string
	token   string
	limiter *rate.Limiter
}

// NewSlackSink creates a sink for the Web API at baseURL
// (normally https://slack.com/api/).
func NewSlackSink(baseURL, token string) *SlackSink {
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	return &SlackSink{
		client:  &http.Client{Timeout: 10 * time.Second},
		baseURL: baseURL,
		token:   token,
		limiter: rate.NewLimiter(rate.Limit(PostRate), PostBurst),
	}
}

func (s *SlackSink) Send(ctx context.Context, payload models.NotificationPayload) error {
	if err := s.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("waiting for rate limiter: %w", err)
	}

	body, err := json.Marshal(models.SlackMessage{
		Channel:     payload.Channel,
		Username:    BotName,
		IconEmoji:   BotIcon,
		Attachments: []models.Attachment{payload.Results, payload.Instructions},
	})
	if err != nil {
		return fmt.Errorf("encoding message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"chat.postMessage", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	req.Header.Set("Authorization", "Bearer "+s.token)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("posting message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: status %d", ErrSlackAPI, resp.StatusCode)
	}

	var result models.SlackResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	if !result.OK {
		return fmt.Errorf("%w: %s", ErrSlackAPI, result.Error)
	}
	return nil
}
