// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package polls

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrNotFound         = errors.New("poll not found")
	ErrCorruptRecord    = errors.New("corrupt poll record")
	ErrStoreUnavailable = errors.New("store unavailable")
)

// unavailable wraps a store failure so callers can match ErrStoreUnavailable
// and still reach the driver error.
func unavailable(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrStoreUnavailable, err)
}
