// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package polls

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/danielhkuo/pollbot/models"
	"github.com/danielhkuo/pollbot/store"
)

const keyPrefix = "poll:"

// Key returns the store key of a poll record.
func Key(id int64) string {
	return keyPrefix + strconv.FormatInt(id, 10)
}

// Repository reads and writes whole poll records as JSON.
type Repository struct {
	kv store.KeyValueStore
}

func NewRepository(kv store.KeyValueStore) *Repository {
	return &Repository{kv: kv}
}

func (r *Repository) Exists(ctx context.Context, id int64) (bool, error) {
	ok, err := r.kv.Exists(ctx, Key(id))
	if err != nil {
		return false, unavailable("check poll", err)
	}
	return ok, nil
}

// Save overwrites the stored record. There is no version check.
func (r *Repository) Save(ctx context.Context, poll models.Poll) error {
	data, err := json.Marshal(poll)
	if err != nil {
		return fmt.Errorf("encode poll %d: %w", poll.ID, err)
	}
	if err := r.kv.Set(ctx, Key(poll.ID), string(data)); err != nil {
		return unavailable("save poll", err)
	}
	return nil
}

func (r *Repository) Load(ctx context.Context, id int64) (models.Poll, error) {
	ok, err := r.Exists(ctx, id)
	if err != nil {
		return models.Poll{}, err
	}
	if !ok {
		return models.Poll{}, fmt.Errorf("poll %d: %w", id, ErrNotFound)
	}

	raw, err := r.kv.Get(ctx, Key(id))
	if errors.Is(err, store.ErrKeyNotFound) {
		return models.Poll{}, fmt.Errorf("poll %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return models.Poll{}, unavailable("load poll", err)
	}

	var poll models.Poll
	if err := json.Unmarshal([]byte(raw), &poll); err != nil {
		return models.Poll{}, fmt.Errorf("poll %d: %w: %v", id, ErrCorruptRecord, err)
	}
	if poll.Votes == nil {
		poll.Votes = make(map[string]models.Choice)
	}
	return poll, nil
}
