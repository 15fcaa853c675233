// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package notify

import (
	"fmt"

	"github.com/danielhkuo/pollbot/models"
	"github.com/danielhkuo/pollbot/polls"
)

const (
	ResultsColor      = "#019edb"
	InstructionsColor = "#000"
)

var markdownFields = []string{"text", "pretext", "fields"}

// Format renders a poll snapshot for channel. It has no side effects.
func Format(view models.PollView, channel string) models.NotificationPayload {
	poll := view.Poll

	fields := make([]models.Field, 0, len(poll.Choices))
	for _, r := range polls.Results(view) {
		fields = append(fields, models.Field{
			Title: fmt.Sprintf("%d: %s", r.Index, r.Label),
			Value: fmt.Sprintf("Total Votes: %d", r.Votes),
		})
	}

	return models.NotificationPayload{
		Channel:  channel,
		PollID:   poll.ID,
		Question: poll.Question,
		Results: models.Attachment{
			MrkdwnIn: markdownFields,
			Fallback: fmt.Sprintf("Poll #%d - %s", poll.ID, poll.Question),
			Color:    ResultsColor,
			Title:    fmt.Sprintf("Poll #%d - %s", poll.ID, poll.Question),
			Text:     "Here are the votes",
			Fields:   fields,
		},
		Instructions: instructions(poll.ID),
	}
}

func instructions(id int64) models.Attachment {
	return models.Attachment{
		MrkdwnIn: markdownFields,
		Fallback: "Instructions",
		Color:    InstructionsColor,
		Title:    "Poll Bot Instructions",
		Fields: []models.Field{
			{
				Title: fmt.Sprintf("Vote in this poll: /poll vote %d {choice number}", id),
				Value: fmt.Sprintf("*Example:* /poll vote %d 2", id),
			},
			{
				Title: "Create a new poll: /poll new {comma separated list}",
				Value: "*Example:* /poll new What day is it?, Monday, Tuesday, Wednesday",
			},
			{
				Title: "Show a poll: /poll show {poll number}",
				Value: fmt.Sprintf("*Example:* /poll show %d", id),
			},
		},
	}
}
