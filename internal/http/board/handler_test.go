package board

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	boarddao "github.com/ferryhill/kanbord/internal/dao/board"
	pgdao "github.com/ferryhill/kanbord/internal/dao/postgres"
)

const (
	taskID    = "7b0c9a4e-66d1-4d5f-9a51-0a6f7a46d001"
	columnID  = "7b0c9a4e-66d1-4d5f-9a51-0a6f7a46d002"
	projectID = "7b0c9a4e-66d1-4d5f-9a51-0a6f7a46d003"
)

func newServer(mock *boarddao.MockBoard) *httptest.Server {
	h := &Handler{Mover: mock, Stats: mock, Boards: mock}
	return httptest.NewServer(h.Routes())
}

func TestMoveEndpointSuccess(t *testing.T) {
	mock := &boarddao.MockBoard{MoveResults: map[string]*pgdao.MoveResult{
		taskID: {Success: true, TaskID: taskID, FromColumn: "Backlog", ToColumn: "Doing", TimelineID: "tl-1", Message: "moved"},
	}}
	srv := newServer(mock)
	defer srv.Close()

	body := strings.NewReader(`{"column_id":"` + columnID + `","sort_order":2,"actor_email":"ana@example.com"}`)
	resp, err := http.Post(srv.URL+"/v1/tasks/"+taskID+"/move", "application/json", body)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if resp.Header.Get("X-Request-Id") == "" {
		t.Fatal("expected a request id header")
	}
	var res pgdao.MoveResult
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		t.Fatal(err)
	}
	if !res.Success || res.TimelineID != "tl-1" {
		t.Fatalf("unexpected result: %+v", res)
	}
	if mock.LastMoveActor != "ana@example.com" {
		t.Fatalf("actor not forwarded: %q", mock.LastMoveActor)
	}
}

func TestMoveEndpointFailureStillHTTP200(t *testing.T) {
	mock := &boarddao.MockBoard{MoveResults: map[string]*pgdao.MoveResult{
		taskID: {Success: false, TaskID: taskID, Error: "column_not_found", Message: "destination column not found or inactive"},
	}}
	srv := newServer(mock)
	defer srv.Close()

	body := strings.NewReader(`{"column_id":"` + columnID + `"}`)
	resp, err := http.Post(srv.URL+"/v1/tasks/"+taskID+"/move", "application/json", body)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("move failures report through the body, expected 200, got %d", resp.StatusCode)
	}
	var res pgdao.MoveResult
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		t.Fatal(err)
	}
	if res.Success || res.Error != "column_not_found" {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestMoveEndpointRejectsBadIDs(t *testing.T) {
	srv := newServer(&boarddao.MockBoard{})
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/v1/tasks/not-a-uuid/move", "application/json", strings.NewReader(`{"column_id":"`+columnID+`"}`))
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad task id, got %d", resp.StatusCode)
	}

	resp, err = http.Post(srv.URL+"/v1/tasks/"+taskID+"/move", "application/json", strings.NewReader(`{"column_id":"nope"}`))
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad column id, got %d", resp.StatusCode)
	}
}

func TestRefreshEndpoint(t *testing.T) {
	mock := &boarddao.MockBoard{RefreshOut: pgdao.RefreshedFullFallback}
	srv := newServer(mock)
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/v1/stats/refresh", "application/json", nil)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	var out map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatal(err)
	}
	if out["status"] != "full-fallback" {
		t.Fatalf("unexpected status: %v", out)
	}
	if mock.RefreshCalls != 1 {
		t.Fatalf("expected one refresh call, got %d", mock.RefreshCalls)
	}
}

func TestRefreshEndpointPropagatesFailure(t *testing.T) {
	mock := &boarddao.MockBoard{RefreshOut: pgdao.RefreshFailed, RefreshErr: errors.New("view missing")}
	srv := newServer(mock)
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/v1/stats/refresh", "application/json", nil)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("refresh failure is fatal to the caller, expected 500, got %d", resp.StatusCode)
	}
}

func TestBoardEndpoint(t *testing.T) {
	due := time.Now().Add(-time.Hour)
	mock := &boarddao.MockBoard{Boards: map[string][]pgdao.BoardColumn{
		projectID: {
			{
				Column: pgdao.Column{ID: columnID, Name: "Doing", Position: 1},
				Tasks: []pgdao.Task{{
					ID: taskID, Title: "Ship it", Status: pgdao.StatusActive,
					Priority: pgdao.PriorityUrgent, SortOrder: 1,
					DueDate: sql.NullTime{Valid: true, Time: due},
				}},
			},
			{Column: pgdao.Column{ID: "x", Name: "Done", Position: 2}},
		},
	}}
	srv := newServer(mock)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/v1/projects/" + projectID + "/board")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	var cols []boardColumn
	if err := json.NewDecoder(resp.Body).Decode(&cols); err != nil {
		t.Fatal(err)
	}
	if len(cols) != 2 || cols[0].Name != "Doing" {
		t.Fatalf("unexpected board: %+v", cols)
	}
	if len(cols[0].Tasks) != 1 || !cols[0].Tasks[0].Overdue {
		t.Fatalf("expected one overdue task: %+v", cols[0].Tasks)
	}
	if cols[1].Tasks == nil || len(cols[1].Tasks) != 0 {
		t.Fatalf("empty column must serialize as an empty list: %+v", cols[1].Tasks)
	}
}
