// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/danielhkuo/pollbot/models"
	"github.com/danielhkuo/pollbot/notify"
	"github.com/danielhkuo/pollbot/polls"
)

// Reply texts
const (
	ReplyPollGenerated = "Poll generated"
	ReplyVoted         = "Successfully voted"
	ReplyPollFound     = "Poll found"
	ReplyInvalidPollID = "Invalid poll id"
	ReplyInvalidPoll   = "Invalid poll, usage: NEW [ pollTopic,choice1,choice2,...]"
	ReplyInvalidVote   = "Invalid vote, usage: VOTE [ pollId choiceNumber ]"
	ReplyCorruptPoll   = "Poll could not be read"
	ReplyError         = "there was an error"

	Usage = "Invalid command, valid commands are: \nNEW  [ pollTopic,choice1,choice2,...]\nSHOW [ pollId ]\nVOTE [ pollId choiceNumber ]"
)

// Command verbs, matched case-insensitively
const (
	VerbNew  = "new"
	VerbVote = "vote"
	VerbShow = "show"
)

// PollService is the poll engine as seen by the transport layer.
type PollService interface {
	CreatePoll(ctx context.Context, question string, choices []string) (models.Poll, error)
	SubmitVote(ctx context.Context, pollID int64, voter, choice string) (models.Poll, error)
	GetPoll(ctx context.Context, pollID int64) (models.PollView, error)
}

// Notifier delivers a notification without blocking the caller.
type Notifier interface {
	Dispatch(payload models.NotificationPayload) string
}

// Dispatcher turns command text into engine calls and reply strings.
// It always produces a reply; errors never escape as raw text.
type Dispatcher struct {
	svc         PollService
	notifier    Notifier
	timeout     time.Duration
	notifyVotes bool
}

// NewDispatcher wires a dispatcher. A nil notifier disables notifications.
func NewDispatcher(svc PollService, notifier Notifier, timeout time.Duration, notifyVotes bool) *Dispatcher {
	return &Dispatcher{
		svc:         svc,
		notifier:    notifier,
		timeout:     timeout,
		notifyVotes: notifyVotes,
	}
}

// Dispatch runs one command. Store calls share a single timeout; the
// notification is sent after the reply is decided and is not awaited.
func (d *Dispatcher) Dispatch(ctx context.Context, cmd models.Command) models.Reply {
	fields := strings.Fields(cmd.Text)
	if len(fields) == 0 {
		return models.Reply{Text: Usage}
	}
	verb, args := strings.ToLower(fields[0]), fields[1:]

	if d.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.timeout)
		defer cancel()
	}

	switch verb {
	case VerbNew:
		return d.create(ctx, cmd, args)
	case VerbVote:
		return d.vote(ctx, cmd, args)
	case VerbShow:
		return d.show(ctx, cmd, args)
	default:
		return models.Reply{Text: Usage}
	}
}

func (d *Dispatcher) create(ctx context.Context, cmd models.Command, args []string) models.Reply {
	question, choices := polls.ParseNewArgs(args)

	poll, err := d.svc.CreatePoll(ctx, question, choices)
	if err != nil {
		return models.Reply{Text: replyFor(err, VerbNew, ReplyInvalidPoll)}
	}

	view := models.PollView{Poll: poll, Tally: polls.Count(poll)}
	return models.Reply{Text: ReplyPollGenerated, Notification: d.notify(view, cmd.ChannelID)}
}

func (d *Dispatcher) vote(ctx context.Context, cmd models.Command, args []string) models.Reply {
	if len(args) == 0 {
		return models.Reply{Text: ReplyInvalidPollID}
	}
	pollID, err := polls.ParseID(args[0])
	if err != nil {
		return models.Reply{Text: ReplyInvalidPollID}
	}
	if len(args) < 2 {
		return models.Reply{Text: ReplyInvalidVote}
	}

	poll, err := d.svc.SubmitVote(ctx, pollID, cmd.Voter(), args[1])
	if err != nil {
		return models.Reply{Text: replyFor(err, VerbVote, ReplyInvalidVote)}
	}

	reply := models.Reply{Text: ReplyVoted}
	if d.notifyVotes {
		view := models.PollView{Poll: poll, Tally: polls.Count(poll)}
		reply.Notification = d.notify(view, cmd.ChannelID)
	}
	return reply
}

func (d *Dispatcher) show(ctx context.Context, cmd models.Command, args []string) models.Reply {
	if len(args) == 0 {
		return models.Reply{Text: ReplyInvalidPollID}
	}
	pollID, err := polls.ParseID(args[0])
	if err != nil {
		return models.Reply{Text: ReplyInvalidPollID}
	}

	view, err := d.svc.GetPoll(ctx, pollID)
	if err != nil {
		return models.Reply{Text: replyFor(err, VerbShow, ReplyInvalidPollID)}
	}

	return models.Reply{Text: ReplyPollFound, Notification: d.notify(view, cmd.ChannelID)}
}

func (d *Dispatcher) notify(view models.PollView, channel string) *models.NotificationPayload {
	payload := notify.Format(view, channel)
	if d.notifier != nil {
		payload.ID = d.notifier.Dispatch(payload)
	}
	return &payload
}

// replyFor maps an engine error to the text shown to the user
func replyFor(err error, verb, invalidInput string) string {
	switch {
	case errors.Is(err, polls.ErrInvalidInput):
		slog.Debug("invalid command input", "verb", verb, "error", err)
		return invalidInput
	case errors.Is(err, polls.ErrNotFound):
		slog.Debug("poll not found", "verb", verb, "error", err)
		return ReplyInvalidPollID
	case errors.Is(err, polls.ErrCorruptRecord):
		slog.Error("corrupt poll record", "verb", verb, "error", err)
		return ReplyCorruptPoll
	default:
		slog.Error("command failed", "verb", verb, "error", err)
		return ReplyError
	}
}
