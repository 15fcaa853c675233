// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers turns chat commands and HTTP requests into poll engine calls.

# Command Dispatch

Dispatcher parses one command line. The first word is the verb
(case-insensitive), the rest are arguments:

	new <question>, <choice1>, <choice2>, ...
	vote <pollId> <choiceIndex>
	show <pollId>

Anything else gets the Usage text. Each command returns a fixed reply:

	new  → "Poll generated"
	vote → "Successfully voted"
	show → "Poll found"
	unknown or malformed poll id → "Invalid poll id"
	store failure → "there was an error"

Successful commands also render the poll with notify.Format and hand it to
the Notifier, which sends it in the background. Votes notify only when
NOTIFY_VOTES is on.

# Slash Commands

CommandHandler serves POST /slack/commands. It reads the form fields text,
user_name, user_id and channel_id, checks the Slack signature when a signing
secret is configured, and writes the reply as text/plain with status 200.

# Read API

PollHandler serves GET /polls/{id} with the question, per-choice results in
choice order, and the number of counted votes.

# Dependency Injection

	engine := polls.NewEngine(kv)
	notifier := notify.NewNotifier(sink, 0)
	dispatcher := handlers.NewDispatcher(engine, notifier, cfg.StoreTimeout, cfg.NotifyVotes)
	commandHandler := handlers.NewCommandHandler(dispatcher, cfg)
	pollHandler := handlers.NewPollHandler(engine, cfg)
*/
package handlers
