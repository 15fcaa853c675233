// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/danielhkuo/pollbot/auth"
	"github.com/danielhkuo/pollbot/cliparse"
	"github.com/danielhkuo/pollbot/middleware"
	"github.com/danielhkuo/pollbot/models"
)

// maxCommandBody bounds a slash-command request body
const maxCommandBody = 64 << 10

type CommandHandler struct {
	dispatcher *Dispatcher
	cfg        cliparse.Config
	now        func() time.Time
}

func NewCommandHandler(dispatcher *Dispatcher, cfg cliparse.Config) *CommandHandler {
	return &CommandHandler{dispatcher: dispatcher, cfg: cfg, now: time.Now}
}

// HandleCommand handles POST /slack/commands
// Every accepted request gets 200 with the reply text, including command errors.
func (h *CommandHandler) HandleCommand(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxCommandBody))
	if err != nil {
		middleware.TextResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if h.cfg.SlackSigningSecret != "" {
		err := auth.VerifyRequest(
			h.cfg.SlackSigningSecret,
			r.Header.Get(auth.HeaderTimestamp),
			r.Header.Get(auth.HeaderSignature),
			body,
			h.now(),
		)
		if err != nil {
			slog.Warn("rejected slash command", "error", err, "remote", r.RemoteAddr)
			middleware.TextResponse(w, http.StatusUnauthorized, "invalid signature")
			return
		}
	}

	form, err := url.ParseQuery(string(body))
	if err != nil {
		middleware.TextResponse(w, http.StatusBadRequest, "invalid form body")
		return
	}

	cmd := models.Command{
		Text:      form.Get("text"),
		UserName:  form.Get("user_name"),
		UserID:    form.Get("user_id"),
		ChannelID: form.Get("channel_id"),
	}

	reply := h.dispatcher.Dispatch(r.Context(), cmd)

	slog.Info("command handled",
		"user", cmd.Voter(),
		"channel", cmd.ChannelID,
		"reply", reply.Text,
	)

	middleware.TextResponse(w, http.StatusOK, reply.Text)
}
