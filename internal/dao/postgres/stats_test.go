package postgres

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestProjectStatsJSONCarriesLastTaskUpdate(t *testing.T) {
	when := time.Date(2026, 8, 1, 10, 30, 0, 0, time.UTC)
	s := ProjectStats{
		ProjectID:      "p-1",
		ProjectName:    "demo",
		TotalTasks:     4,
		ActiveTasks:    3,
		LastTaskUpdate: &when,
	}
	b, err := json.Marshal(s)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(b), `"last_task_update":"2026-08-01T10:30:00Z"`) {
		t.Fatalf("last_task_update missing from JSON: %s", b)
	}

	var back ProjectStats
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatal(err)
	}
	if back.LastTaskUpdate == nil || !back.LastTaskUpdate.Equal(when) {
		t.Fatalf("last_task_update did not round-trip: %+v", back.LastTaskUpdate)
	}
}

func TestProjectStatsJSONNullWhenNoTasks(t *testing.T) {
	b, err := json.Marshal(ProjectStats{ProjectID: "p-1", ProjectName: "empty"})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(b), `"last_task_update":null`) {
		t.Fatalf("expected explicit null for last_task_update: %s", b)
	}
}
