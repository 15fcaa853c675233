// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package polls

import (
	"strconv"
	"strings"
)

// ParseNewArgs splits "question, choice1, choice2" into its parts.
// Commas cannot be escaped. Segments are trimmed but kept, so an empty
// segment stays in place and the engine rejects it.
func ParseNewArgs(args []string) (question string, choices []string) {
	segments := strings.Split(strings.Join(args, " "), ",")
	question = strings.TrimSpace(segments[0])
	for _, s := range segments[1:] {
		choices = append(choices, strings.TrimSpace(s))
	}
	return question, choices
}

// ParseID parses a poll id argument.
func ParseID(s string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || id < 0 {
		return 0, ErrNotFound
	}
	return id, nil
}
