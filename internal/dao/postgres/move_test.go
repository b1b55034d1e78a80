package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type fakeRow struct {
	err  error
	vals []string
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	for i := range dest {
		if i >= len(r.vals) {
			break
		}
		if p, ok := dest[i].(*string); ok {
			*p = r.vals[i]
		}
	}
	return nil
}

// fakeTx feeds scripted rows/tags to MoveTask and records what it was asked.
type fakeTx struct {
	rows     []fakeRow
	execTag  pgconn.CommandTag
	execErr  error
	queries  []string
	queryArg [][]any
	execs    []string
}

func (f *fakeTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	f.queries = append(f.queries, sql)
	f.queryArg = append(f.queryArg, args)
	r := f.rows[0]
	f.rows = f.rows[1:]
	return r
}

func (f *fakeTx) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	f.execs = append(f.execs, sql)
	return f.execTag, f.execErr
}

func TestMoveTaskSuccess(t *testing.T) {
	tx := &fakeTx{
		rows: []fakeRow{
			{vals: []string{"col-from", "Backlog"}}, // task + source column
			{vals: []string{"Doing"}},               // destination column
			{vals: []string{"tl-1"}},                // timeline insert
		},
		execTag: pgconn.NewCommandTag("UPDATE 1"),
	}
	r, err := MoveTask(context.Background(), tx, "task-1", "col-to", 3, "ana@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.FromColumn != "Backlog" || r.ToColumn != "Doing" || r.TimelineID != "tl-1" {
		t.Fatalf("unexpected receipt: %+v", r)
	}
	if len(tx.execs) != 1 || len(tx.queries) != 3 {
		t.Fatalf("expected 1 update and 3 queries, got %d/%d", len(tx.execs), len(tx.queries))
	}
	// The timeline insert carries a snapshot payload with ids and names.
	ins := tx.queries[2]
	if !strings.Contains(ins, "task_timeline") || !strings.Contains(ins, "'moved'") {
		t.Fatalf("unexpected timeline insert: %s", ins)
	}
	detailsJSON, ok := tx.queryArg[2][1].([]byte)
	if !ok {
		t.Fatalf("expected json details arg, got %T", tx.queryArg[2][1])
	}
	var p MovePayload
	if err := json.Unmarshal(detailsJSON, &p); err != nil {
		t.Fatal(err)
	}
	want := MovePayload{FromColumnID: "col-from", FromColumn: "Backlog", ToColumnID: "col-to", ToColumn: "Doing", SortOrder: 3}
	if p != want {
		t.Fatalf("payload mismatch: got %+v want %+v", p, want)
	}
	if got := tx.queryArg[2][2]; got != "ana@example.com" {
		t.Fatalf("unexpected actor: %v", got)
	}
}

func TestMoveTaskDefaultsActorToSystem(t *testing.T) {
	tx := &fakeTx{
		rows: []fakeRow{
			{vals: []string{"col-from", "Backlog"}},
			{vals: []string{"Doing"}},
			{vals: []string{"tl-1"}},
		},
		execTag: pgconn.NewCommandTag("UPDATE 1"),
	}
	if _, err := MoveTask(context.Background(), tx, "task-1", "col-to", 0, ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := tx.queryArg[2][2]; got != "system" {
		t.Fatalf("expected system actor, got %v", got)
	}
}

func TestMoveTaskNotFound(t *testing.T) {
	tx := &fakeTx{rows: []fakeRow{{err: pgx.ErrNoRows}}}
	_, err := MoveTask(context.Background(), tx, "missing", "col-to", 0, "")
	if !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound, got %v", err)
	}
	if len(tx.execs) != 0 {
		t.Fatal("no update may run when the task is missing")
	}
	if len(tx.queries) != 1 {
		t.Fatalf("expected to stop after the task lookup, ran %d queries", len(tx.queries))
	}
}

func TestMoveTaskColumnNotFound(t *testing.T) {
	tx := &fakeTx{rows: []fakeRow{
		{vals: []string{"col-from", "Backlog"}},
		{err: pgx.ErrNoRows},
	}}
	_, err := MoveTask(context.Background(), tx, "task-1", "gone", 0, "")
	if !errors.Is(err, ErrColumnNotFound) {
		t.Fatalf("expected ErrColumnNotFound, got %v", err)
	}
	if len(tx.execs) != 0 {
		t.Fatal("task row must stay untouched when the destination is invalid")
	}
}

func TestMoveTaskConflict(t *testing.T) {
	tx := &fakeTx{
		rows: []fakeRow{
			{vals: []string{"col-from", "Backlog"}},
			{vals: []string{"Doing"}},
		},
		execTag: pgconn.NewCommandTag("UPDATE 0"),
	}
	_, err := MoveTask(context.Background(), tx, "task-1", "col-to", 0, "")
	if !errors.Is(err, ErrMoveConflict) {
		t.Fatalf("expected ErrMoveConflict, got %v", err)
	}
	if len(tx.queries) != 2 {
		t.Fatal("no timeline entry may be written on conflict")
	}
}

func TestMoveResultShapes(t *testing.T) {
	ok := moveResult("task-1", &MoveReceipt{TaskID: "task-1", FromColumn: "A", ToColumn: "B", TimelineID: "tl-9"}, nil)
	if !ok.Success || ok.TimelineID != "tl-9" || ok.Error != "" {
		t.Fatalf("unexpected success result: %+v", ok)
	}
	b, _ := json.Marshal(ok)
	for _, key := range []string{`"success":true`, `"task_id":"task-1"`, `"from_column":"A"`, `"to_column":"B"`, `"timeline_id":"tl-9"`} {
		if !strings.Contains(string(b), key) {
			t.Fatalf("success JSON missing %s: %s", key, b)
		}
	}

	cases := []struct {
		err  error
		kind string
	}{
		{ErrTaskNotFound, "task_not_found"},
		{ErrColumnNotFound, "column_not_found"},
		{ErrMoveConflict, "move_conflict"},
		{errors.New("disk on fire"), "unknown"},
	}
	for _, tc := range cases {
		res := moveResult("task-1", nil, tc.err)
		if res.Success {
			t.Fatalf("%v: failure result must not report success", tc.err)
		}
		if res.Error != tc.kind {
			t.Fatalf("%v: got kind %q want %q", tc.err, res.Error, tc.kind)
		}
		if res.TaskID != "task-1" || res.Message == "" {
			t.Fatalf("failure result must carry task id and message: %+v", res)
		}
		b, _ := json.Marshal(res)
		if strings.Contains(string(b), "timeline_id") {
			t.Fatalf("failure JSON must omit timeline_id: %s", b)
		}
	}
}
