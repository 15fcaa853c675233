// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package notify renders poll snapshots and delivers them to the chat channel.

# Formatting

Format is pure: it turns a PollView into a NotificationPayload with two
attachments, the vote counts per choice and the usage instructions with the
poll id filled in.

# Sinks

  - SlackSink: chat.postMessage, throttled with a token bucket
  - LogSink: logs the payload, for running without a Slack token

# Delivery

Notifier.Dispatch sends on a goroutine with its own timeout and returns
immediately. Notifier.Wait drains in-flight sends during shutdown.
*/
package notify
