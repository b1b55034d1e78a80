package postgres

import (
	"encoding/json"
	"testing"
)

func TestDetailsValueNilMapBecomesSQLNull(t *testing.T) {
	if got := detailsValue(nil); got != nil {
		t.Fatalf("expected nil for nil details, got %v", got)
	}
}

func TestDetailsValueMarshalsMap(t *testing.T) {
	got := detailsValue(map[string]any{"from_column": "Backlog"})
	b, ok := got.([]byte)
	if !ok {
		t.Fatalf("expected json bytes, got %T", got)
	}
	var back map[string]any
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatal(err)
	}
	if back["from_column"] != "Backlog" {
		t.Fatalf("unexpected payload: %v", back)
	}
	if got := detailsValue(map[string]any{}); got == nil {
		t.Fatal("empty map should still marshal, not become NULL")
	}
}
