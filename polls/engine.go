// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package polls

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/danielhkuo/pollbot/models"
	"github.com/danielhkuo/pollbot/store"
)

// Engine owns the poll lifecycle: creation, voting, and tallying.
//
// SubmitVote is load, mutate, save with no compare-and-swap. Two voters on
// the same poll at the same moment can lose one of the votes.
type Engine struct {
	ids  *IDAllocator
	repo *Repository
}

func NewEngine(kv store.KeyValueStore) *Engine {
	return &Engine{
		ids:  NewIDAllocator(kv),
		repo: NewRepository(kv),
	}
}

// CreatePoll allocates an id and stores a poll with no votes.
func (e *Engine) CreatePoll(ctx context.Context, question string, choices []string) (models.Poll, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return models.Poll{}, fmt.Errorf("question is required: %w", ErrInvalidInput)
	}
	if len(choices) == 0 {
		return models.Poll{}, fmt.Errorf("at least one choice is required: %w", ErrInvalidInput)
	}
	cleaned := make([]string, len(choices))
	for i, c := range choices {
		cleaned[i] = strings.TrimSpace(c)
		if cleaned[i] == "" {
			return models.Poll{}, fmt.Errorf("choice %d is empty: %w", i+1, ErrInvalidInput)
		}
	}

	id, err := e.ids.Next(ctx)
	if err != nil {
		return models.Poll{}, err
	}

	poll := models.Poll{
		ID:       id,
		Question: question,
		Choices:  cleaned,
		Votes:    make(map[string]models.Choice),
	}
	if err := e.repo.Save(ctx, poll); err != nil {
		return models.Poll{}, err
	}

	slog.Info("poll created", "poll_id", id, "choices", len(cleaned))
	return poll, nil
}

// SubmitVote records voter's choice, replacing any earlier vote by the same
// voter. The choice is stored as given; out-of-range values are kept but
// never counted.
func (e *Engine) SubmitVote(ctx context.Context, pollID int64, voter, choice string) (models.Poll, error) {
	poll, err := e.repo.Load(ctx, pollID)
	if err != nil {
		return models.Poll{}, err
	}

	_, isUpdate := poll.Votes[voter]
	poll.Votes[voter] = models.Choice(choice)

	if err := e.repo.Save(ctx, poll); err != nil {
		return models.Poll{}, err
	}

	slog.Info("vote recorded", "poll_id", pollID, "voter", voter, "is_update", isUpdate)
	return poll, nil
}

// GetPoll loads a poll and computes its tally.
func (e *Engine) GetPoll(ctx context.Context, pollID int64) (models.PollView, error) {
	poll, err := e.repo.Load(ctx, pollID)
	if err != nil {
		return models.PollView{}, err
	}
	return models.PollView{Poll: poll, Tally: Count(poll)}, nil
}
