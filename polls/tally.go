// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package polls

import (
	"math"
	"strconv"
	"strings"

	"github.com/danielhkuo/pollbot/models"
)

// ChoiceIndex normalizes a raw vote to a choice index.
// "2", " 2 ", "02", "2.0", "0x2" and "0b10" all select choice 2. Anything
// that is not a whole number reports false.
func ChoiceIndex(c models.Choice) (int, bool) {
	s := strings.TrimSpace(string(c))
	if hasRadixPrefix(s) {
		n, err := strconv.ParseInt(s, 0, 64)
		if err != nil || strings.Contains(s, "_") || n > math.MaxInt32 {
			return 0, false
		}
		return int(n), true
	}
	// signed radix literals and hex floats are not numbers
	if strings.ContainsAny(s, "xX_") {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != math.Trunc(f) || math.IsInf(f, 0) {
		return 0, false
	}
	if f < math.MinInt32 || f > math.MaxInt32 {
		return 0, false
	}
	return int(f), true
}

func hasRadixPrefix(s string) bool {
	return len(s) > 2 && s[0] == '0' && strings.ContainsRune("xXoObB", rune(s[1]))
}

// Count builds the tally for every choice, 1 through len(choices).
// Votes outside that range are ignored.
func Count(poll models.Poll) models.Tally {
	tally := make(models.Tally, len(poll.Choices))
	for i := range poll.Choices {
		tally[i+1] = 0
	}
	for _, v := range poll.Votes {
		idx, ok := ChoiceIndex(v)
		if !ok {
			continue
		}
		if _, counted := tally[idx]; counted {
			tally[idx]++
		}
	}
	return tally
}

// Results lists the tally in choice order.
func Results(view models.PollView) []models.ChoiceResult {
	results := make([]models.ChoiceResult, len(view.Poll.Choices))
	for i, label := range view.Poll.Choices {
		results[i] = models.ChoiceResult{
			Index: i + 1,
			Label: label,
			Votes: view.Tally[i+1],
		}
	}
	return results
}
