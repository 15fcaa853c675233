// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/pollbot/models"
	"github.com/danielhkuo/pollbot/polls"
	"github.com/danielhkuo/pollbot/store"
	"github.com/danielhkuo/pollbot/testutil"
)

// recordingNotifier keeps every payload instead of sending it
type recordingNotifier struct {
	mu   sync.Mutex
	sent []models.NotificationPayload
}

func (n *recordingNotifier) Dispatch(p models.NotificationPayload) string {
	n.mu.Lock()
	defer n.mu.Unlock()
	p.ID = fmt.Sprintf("n-%d", len(n.sent))
	n.sent = append(n.sent, p)
	return p.ID
}

func (n *recordingNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.sent)
}

// stubService returns a fixed error from every call
type stubService struct {
	err error
}

func (s stubService) CreatePoll(context.Context, string, []string) (models.Poll, error) {
	return models.Poll{}, s.err
}

func (s stubService) SubmitVote(context.Context, int64, string, string) (models.Poll, error) {
	return models.Poll{}, s.err
}

func (s stubService) GetPoll(context.Context, int64) (models.PollView, error) {
	return models.PollView{}, s.err
}

func newTestDispatcher(t *testing.T) (*Dispatcher, *polls.Engine, *recordingNotifier) {
	t.Helper()
	engine := polls.NewEngine(testutil.SetupTestStore(t))
	n := &recordingNotifier{}
	return NewDispatcher(engine, n, 2*time.Second, true), engine, n
}

func command(text, user string) models.Command {
	return models.Command{Text: text, UserName: user, ChannelID: "C1"}
}

func TestDispatch_EndToEnd(t *testing.T) {
	d, engine, n := newTestDispatcher(t)
	ctx := context.Background()

	reply := d.Dispatch(ctx, command("new What day is it?, Monday, Tuesday", "alice"))
	assert.Equal(t, ReplyPollGenerated, reply.Text)
	require.NotNil(t, reply.Notification)
	assert.Equal(t, int64(0), reply.Notification.PollID)

	view, err := engine.GetPoll(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, "What day is it?", view.Poll.Question)
	assert.Equal(t, []string{"Monday", "Tuesday"}, view.Poll.Choices)

	reply = d.Dispatch(ctx, command("vote 0 2", "bob"))
	assert.Equal(t, ReplyVoted, reply.Text)

	view, err = engine.GetPoll(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, models.Tally{1: 0, 2: 1}, view.Tally)

	reply = d.Dispatch(ctx, command("show 0", "carol"))
	assert.Equal(t, ReplyPollFound, reply.Text)
	require.NotNil(t, reply.Notification)
	assert.Equal(t, "C1", reply.Notification.Channel)
	assert.Equal(t, []models.Field{
		{Title: "1: Monday", Value: "Total Votes: 0"},
		{Title: "2: Tuesday", Value: "Total Votes: 1"},
	}, reply.Notification.Results.Fields)

	// new, vote and show each notified
	assert.Equal(t, 3, n.count())
	assert.Equal(t, "n-2", reply.Notification.ID)
}

func TestDispatch_VerbIsCaseInsensitive(t *testing.T) {
	d, _, _ := newTestDispatcher(t)
	ctx := context.Background()

	assert.Equal(t, ReplyPollGenerated, d.Dispatch(ctx, command("NEW Q, A", "a")).Text)
	assert.Equal(t, ReplyVoted, d.Dispatch(ctx, command("Vote 0 1", "a")).Text)
	assert.Equal(t, ReplyPollFound, d.Dispatch(ctx, command("sHoW 0", "a")).Text)
}

func TestDispatch_Replies(t *testing.T) {
	d, _, _ := newTestDispatcher(t)
	ctx := context.Background()
	require.Equal(t, ReplyPollGenerated, d.Dispatch(ctx, command("new Q, A, B", "a")).Text)

	tests := []struct {
		text string
		want string
	}{
		{"", Usage},
		{"   ", Usage},
		{"delete 0", Usage},
		{"new", ReplyInvalidPoll},
		{"new Question only", ReplyInvalidPoll},
		{"new , A", ReplyInvalidPoll},
		{"new Q, A, , B", ReplyInvalidPoll},
		{"new Q, A,", ReplyInvalidPoll},
		{"vote", ReplyInvalidPollID},
		{"vote abc 1", ReplyInvalidPollID},
		{"vote 9999 1", ReplyInvalidPollID},
		{"vote 0", ReplyInvalidVote},
		{"vote 0 7", ReplyVoted},
		{"show", ReplyInvalidPollID},
		{"show 9999", ReplyInvalidPollID},
		{"show -1", ReplyInvalidPollID},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, d.Dispatch(ctx, command(tt.text, "bob")).Text)
		})
	}
}

func TestDispatch_BlankChoiceRejectsPoll(t *testing.T) {
	d, engine, n := newTestDispatcher(t)
	ctx := context.Background()

	assert.Equal(t, ReplyInvalidPoll, d.Dispatch(ctx, command("new Q, A, , B", "a")).Text)
	_, err := engine.GetPoll(ctx, 0)
	assert.ErrorIs(t, err, polls.ErrNotFound)
	assert.Equal(t, 0, n.count())

	require.Equal(t, ReplyPollGenerated, d.Dispatch(ctx, command("new Q, A, C, B", "a")).Text)
	view, err := engine.GetPoll(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C", "B"}, view.Poll.Choices)
}

func TestDispatch_NoNotificationOnFailure(t *testing.T) {
	d, _, n := newTestDispatcher(t)
	ctx := context.Background()

	reply := d.Dispatch(ctx, command("show 5", "a"))
	assert.Nil(t, reply.Notification)
	reply = d.Dispatch(ctx, command("help", "a"))
	assert.Nil(t, reply.Notification)
	assert.Equal(t, 0, n.count())
}

func TestDispatch_VoteNotificationsDisabled(t *testing.T) {
	engine := polls.NewEngine(store.NewMemoryStore())
	n := &recordingNotifier{}
	d := NewDispatcher(engine, n, time.Second, false)
	ctx := context.Background()

	d.Dispatch(ctx, command("new Q, A", "a"))
	reply := d.Dispatch(ctx, command("vote 0 1", "a"))

	assert.Equal(t, ReplyVoted, reply.Text)
	assert.Nil(t, reply.Notification)
	assert.Equal(t, 1, n.count())
}

func TestDispatch_VoterFallsBackToUserID(t *testing.T) {
	engine := polls.NewEngine(store.NewMemoryStore())
	d := NewDispatcher(engine, nil, time.Second, true)
	ctx := context.Background()

	d.Dispatch(ctx, command("new Q, A", "a"))
	d.Dispatch(ctx, models.Command{Text: "vote 0 1", UserID: "U42", ChannelID: "C1"})

	view, err := engine.GetPoll(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, models.Choice("1"), view.Poll.Votes["U42"])
}

func TestDispatch_ErrorReplies(t *testing.T) {
	tests := []struct {
		name string
		err  error
		text string
		want string
	}{
		{"store down on new", fmt.Errorf("x: %w", polls.ErrStoreUnavailable), "new Q, A", ReplyError},
		{"store down on vote", polls.ErrStoreUnavailable, "vote 1 1", ReplyError},
		{"store down on show", polls.ErrStoreUnavailable, "show 1", ReplyError},
		{"corrupt on show", fmt.Errorf("poll 1: %w", polls.ErrCorruptRecord), "show 1", ReplyCorruptPoll},
		{"corrupt on vote", polls.ErrCorruptRecord, "vote 1 1", ReplyCorruptPoll},
		{"unexpected error", errors.New("boom"), "show 1", ReplyError},
		{"timeout", context.DeadlineExceeded, "show 1", ReplyError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := &recordingNotifier{}
			d := NewDispatcher(stubService{err: tt.err}, n, time.Second, true)

			reply := d.Dispatch(context.Background(), command(tt.text, "a"))
			assert.Equal(t, tt.want, reply.Text)
			assert.Nil(t, reply.Notification)
			assert.Equal(t, 0, n.count())
		})
	}
}
