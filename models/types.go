// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"bytes"
	"encoding/json"
)

// Domain types

// Poll is the stored record. Votes maps voter identity to the choice
// argument exactly as submitted.
type Poll struct {
	ID       int64             `json:"id"`
	Question string            `json:"question"`
	Choices  []string          `json:"choices"`
	Votes    map[string]Choice `json:"votes"`
}

// Choice is a raw vote value. Older records may hold numbers instead of
// strings, so both decode into the same text form.
type Choice string

func (c *Choice) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*c = Choice(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*c = Choice(n.String())
	return nil
}

// Tally maps a 1-based choice index to its vote count. Derived, never stored.
type Tally map[int]int

// PollView is a poll together with its computed tally.
type PollView struct {
	Poll  Poll
	Tally Tally
}

// Transport types

// Command is one inbound chat command.
type Command struct {
	Text      string
	UserName  string
	UserID    string
	ChannelID string
}

// Voter returns the identity a vote is recorded under.
func (c Command) Voter() string {
	if c.UserName != "" {
		return c.UserName
	}
	return c.UserID
}

// Reply is the synchronous answer to a command plus the notification it
// produced, if any.
type Reply struct {
	Text         string
	Notification *NotificationPayload
}

// Notification types

// NotificationPayload is a rendered poll snapshot addressed to a channel.
type NotificationPayload struct {
	ID           string     `json:"id"`
	Channel      string     `json:"channel"`
	PollID       int64      `json:"poll_id"`
	Question     string     `json:"question"`
	Results      Attachment `json:"results"`
	Instructions Attachment `json:"instructions"`
}

type Attachment struct {
	MrkdwnIn []string `json:"mrkdwn_in,omitempty"`
	Fallback string   `json:"fallback"`
	Color    string   `json:"color"`
	Title    string   `json:"title"`
	Text     string   `json:"text,omitempty"`
	Fields   []Field  `json:"fields"`
}

type Field struct {
	Title string `json:"title"`
	Value string `json:"value"`
	Short bool   `json:"short"`
}

// SlackMessage is the chat.postMessage request body.
type SlackMessage struct {
	Channel     string       `json:"channel"`
	Username    string       `json:"username"`
	IconEmoji   string       `json:"icon_emoji"`
	Attachments []Attachment `json:"attachments"`
}

// SlackResponse is the subset of the Slack Web API envelope we check.
type SlackResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// Response types

// ChoiceResult is one row of a poll's results.
type ChoiceResult struct {
	Index int    `json:"index"`
	Label string `json:"label"`
	Votes int    `json:"votes"`
}

type PollResponse struct {
	ID         int64          `json:"id"`
	Question   string         `json:"question"`
	Results    []ChoiceResult `json:"results"`
	TotalVotes int            `json:"total_votes"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
