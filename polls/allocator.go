// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package polls

import (
	"context"

	"github.com/danielhkuo/pollbot/store"
)

// CounterKey holds the last allocated poll id. It is not numeric and has no
// poll key prefix, so it cannot collide with a poll record.
const CounterKey = "pollCounter"

// IDAllocator hands out poll ids from a shared store counter.
// The first id is 0.
type IDAllocator struct {
	kv  store.KeyValueStore
	key string
}

func NewIDAllocator(kv store.KeyValueStore) *IDAllocator {
	return &IDAllocator{kv: kv, key: CounterKey}
}

// Next returns an id no other caller of this store has received.
func (a *IDAllocator) Next(ctx context.Context) (int64, error) {
	id, err := a.kv.Increment(ctx, a.key)
	if err != nil {
		return 0, unavailable("allocate poll id", err)
	}
	return id, nil
}
