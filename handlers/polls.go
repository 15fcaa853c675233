// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/pollbot/cliparse"
	"github.com/danielhkuo/pollbot/middleware"
	"github.com/danielhkuo/pollbot/models"
	"github.com/danielhkuo/pollbot/polls"
)

type PollHandler struct {
	svc PollService
	cfg cliparse.Config
}

func NewPollHandler(svc PollService, cfg cliparse.Config) *PollHandler {
	return &PollHandler{svc: svc, cfg: cfg}
}

// GetPoll handles GET /polls/{id}
// Returns the question and the current tally in choice order.
func (h *PollHandler) GetPoll(w http.ResponseWriter, r *http.Request) {
	pollID, err := polls.ParseID(r.PathValue("id"))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "poll id must be a non-negative integer")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.cfg.StoreTimeout)
	defer cancel()

	view, err := h.svc.GetPoll(ctx, pollID)
	if errors.Is(err, polls.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Poll not found")
		return
	}
	if err != nil {
		slog.Error("failed to load poll", "error", err, "poll_id", pollID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to load poll")
		return
	}

	results := polls.Results(view)
	total := 0
	for _, res := range results {
		total += res.Votes
	}

	middleware.JSONResponse(w, http.StatusOK, models.PollResponse{
		ID:         view.Poll.ID,
		Question:   view.Poll.Question,
		Results:    results,
		TotalVotes: total,
	})
}
