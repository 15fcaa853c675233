// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"errors"
)

var ErrKeyNotFound = errors.New("key not found")

// KeyValueStore is the durable backing store for poll records and counters.
// Implementations must be safe for concurrent use.
type KeyValueStore interface {
	// Get returns the value at key, or ErrKeyNotFound.
	Get(ctx context.Context, key string) (string, error)

	// Set writes value at key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// Exists reports whether key holds a value.
	Exists(ctx context.Context, key string) (bool, error)

	// Increment atomically advances the integer counter at key and returns
	// the new value. A missing key is created with value 0, and 0 is returned.
	Increment(ctx context.Context, key string) (int64, error)
}
