// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store provides the key-value persistence used by the poll engine.

# Interface

KeyValueStore exposes four operations on string keys:

	Get(ctx, key)        // ErrKeyNotFound when absent
	Set(ctx, key, value) // full overwrite
	Exists(ctx, key)
	Increment(ctx, key)  // missing key starts at 0

# Implementations

  - SQLStore: kv_store table on SQLite or PostgreSQL (see package db)
  - MemoryStore: map guarded by a RWMutex, for tests

Increment on SQLStore is one INSERT ... ON CONFLICT DO UPDATE ... RETURNING
statement. There is no separate existence check, so two callers can never
receive the same counter value.
*/
package store
