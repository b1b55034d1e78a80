package postgres

import (
	"database/sql"
	"testing"
	"time"
)

func TestIsOverdue(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	past := sql.NullTime{Valid: true, Time: now.Add(-time.Hour)}
	future := sql.NullTime{Valid: true, Time: now.Add(time.Hour)}
	exactly := sql.NullTime{Valid: true, Time: now}

	if !IsOverdue(past, StatusActive, now) {
		t.Fatal("past due active task is overdue")
	}
	if IsOverdue(past, StatusDone, now) {
		t.Fatal("completed task past its due date is not overdue")
	}
	if IsOverdue(past, StatusArchived, now) {
		t.Fatal("archived task is not overdue")
	}
	if IsOverdue(future, StatusActive, now) {
		t.Fatal("future due date is not overdue")
	}
	if IsOverdue(exactly, StatusActive, now) {
		t.Fatal("due date must be strictly before now")
	}
	if IsOverdue(sql.NullTime{}, StatusActive, now) {
		t.Fatal("task without a due date is never overdue")
	}
}
