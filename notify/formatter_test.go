// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/pollbot/models"
)

func TestFormat(t *testing.T) {
	view := models.PollView{
		Poll: models.Poll{
			ID:       0,
			Question: "What day is it?",
			Choices:  []string{"Monday", "Tuesday"},
			Votes:    map[string]models.Choice{"bob": "2"},
		},
		Tally: models.Tally{1: 0, 2: 1},
	}

	p := Format(view, "C123")

	assert.Equal(t, "C123", p.Channel)
	assert.Equal(t, int64(0), p.PollID)
	assert.Equal(t, "What day is it?", p.Question)
	assert.Empty(t, p.ID, "ids are assigned at dispatch")

	assert.Equal(t, "Poll #0 - What day is it?", p.Results.Title)
	assert.Equal(t, ResultsColor, p.Results.Color)
	assert.Equal(t, []models.Field{
		{Title: "1: Monday", Value: "Total Votes: 0"},
		{Title: "2: Tuesday", Value: "Total Votes: 1"},
	}, p.Results.Fields)

	assert.Equal(t, "Poll Bot Instructions", p.Instructions.Title)
	require.Len(t, p.Instructions.Fields, 3)
	assert.Equal(t, "Vote in this poll: /poll vote 0 {choice number}", p.Instructions.Fields[0].Title)
	assert.Equal(t, "*Example:* /poll vote 0 2", p.Instructions.Fields[0].Value)
	assert.Equal(t, "*Example:* /poll show 0", p.Instructions.Fields[2].Value)
}

func TestFormat_EmbedsPollID(t *testing.T) {
	view := models.PollView{
		Poll:  models.Poll{ID: 42, Question: "Q", Choices: []string{"A"}},
		Tally: models.Tally{1: 3},
	}

	p := Format(view, "C1")
	assert.Contains(t, p.Instructions.Fields[0].Title, "/poll vote 42")
	assert.Contains(t, p.Instructions.Fields[2].Value, "/poll show 42")
	assert.Equal(t, "Total Votes: 3", p.Results.Fields[0].Value)
}
