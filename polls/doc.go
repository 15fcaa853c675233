// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package polls implements poll creation, voting, and tallying on top of a
store.KeyValueStore.

# Components

  - IDAllocator: next poll id from the shared counter key (first id is 0)
  - Repository: JSON poll records at "poll:<id>", full overwrite on save
  - Engine: CreatePoll, SubmitVote, GetPoll

# Errors

All errors can be matched with errors.Is:

  - ErrInvalidInput: empty question or no choices
  - ErrNotFound: no record for the poll id
  - ErrCorruptRecord: stored value is not a poll
  - ErrStoreUnavailable: the store call failed or timed out

# Tallying

Votes are stored verbatim. Count normalizes each vote with ChoiceIndex and
only counts whole numbers between 1 and the number of choices:

	choices ["A","B","C"], votes {u1:"1", u2:"2", u3:"1", u4:"9"}
	tally   {1:2, 2:1, 3:0}

# Concurrency

Id allocation is atomic in the store. Voting is not: SubmitVote reads the
record, sets one entry, and writes the whole record back, so concurrent
votes on one poll can overwrite each other.
*/
package polls
