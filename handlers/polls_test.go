// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/pollbot/models"
	"github.com/danielhkuo/pollbot/polls"
	"github.com/danielhkuo/pollbot/testutil"
)

func TestGetPoll(t *testing.T) {
	engine := polls.NewEngine(testutil.SetupTestStore(t))
	handler := NewPollHandler(engine, testutil.GetTestConfig())
	ctx := context.Background()

	poll, err := engine.CreatePoll(ctx, "Lunch?", []string{"Tacos", "Ramen", "Salad"})
	if err != nil {
		t.Fatal(err)
	}
	for voter, choice := range map[string]string{"a": "1", "b": "2", "c": "1", "d": "nope"} {
		if _, err := engine.SubmitVote(ctx, poll.ID, voter, choice); err != nil {
			t.Fatal(err)
		}
	}

	tests := []struct {
		name           string
		pollID         string
		expectedStatus int
	}{
		{"existing poll", "0", http.StatusOK},
		{"missing poll", "41", http.StatusNotFound},
		{"non-numeric id", "abc", http.StatusBadRequest},
		{"negative id", "-3", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("GET", "/polls/"+tt.pollID, nil, nil)
			req.SetPathValue("id", tt.pollID)
			w := httptest.NewRecorder()

			handler.GetPoll(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)
			if tt.expectedStatus != http.StatusOK {
				var resp models.ErrorResponse
				testutil.AssertJSON(t, w, &resp)
				if resp.Message == "" {
					t.Error("Expected error message")
				}
				return
			}

			var resp models.PollResponse
			testutil.AssertJSON(t, w, &resp)
			if resp.Question != "Lunch?" {
				t.Errorf("Expected question 'Lunch?', got '%s'", resp.Question)
			}
			if resp.TotalVotes != 3 {
				t.Errorf("Expected 3 counted votes, got %d", resp.TotalVotes)
			}
			want := []models.ChoiceResult{
				{Index: 1, Label: "Tacos", Votes: 2},
				{Index: 2, Label: "Ramen", Votes: 1},
				{Index: 3, Label: "Salad", Votes: 0},
			}
			if len(resp.Results) != len(want) {
				t.Fatalf("Expected %d results, got %d", len(want), len(resp.Results))
			}
			for i := range want {
				if resp.Results[i] != want[i] {
					t.Errorf("Result %d: expected %+v, got %+v", i, want[i], resp.Results[i])
				}
			}
		})
	}
}

func TestGetPoll_StoreError(t *testing.T) {
	handler := NewPollHandler(stubService{err: polls.ErrStoreUnavailable}, testutil.GetTestConfig())

	req := testutil.MakeRequest("GET", "/polls/1", nil, nil)
	req.SetPathValue("id", "1")
	w := httptest.NewRecorder()

	handler.GetPoll(w, req)

	testutil.AssertStatus(t, w, http.StatusInternalServerError)
}
