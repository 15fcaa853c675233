// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines domain, transport, and notification types.

# Domain Types

  - Poll: id, question, ordered choices, voter → choice map
  - Choice: raw vote value (decodes from JSON strings or numbers)
  - Tally: 1-based choice index → vote count, computed on read
  - PollView: a Poll plus its Tally

# Transport Types

  - Command: inbound chat command text with user and channel
  - Reply: synchronous reply text and optional notification

# Notification Types

  - NotificationPayload: channel, poll id, question, results and
    instructions attachments
  - Attachment, Field: Slack attachment shapes
  - SlackMessage, SlackResponse: chat.postMessage request and envelope

# Response Types

JSON bodies for the HTTP read API:

  - PollResponse: id, question, results, total_votes
  - ChoiceResult: index, label, votes
  - ErrorResponse: error, message
*/
package models
