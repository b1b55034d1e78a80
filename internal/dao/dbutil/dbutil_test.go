package dbutil

import (
	"database/sql"
	"errors"
	"testing"
	"time"
)

func TestParamSummary(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want string
	}{
		{"nil", nil, "p=null"},
		{"empty string", "", "p=empty"},
		{"string", "abcd", "p=len=4"},
		{"int", 42, "p=42"},
		{"bool", true, "p=true"},
		{"slice", []string{"a", "b"}, "p=len=2"},
		{"null string", sql.NullString{}, "p=null"},
		{"valid string", sql.NullString{Valid: true, String: "xy"}, "p=len=2"},
		{"null time", sql.NullTime{}, "p=null"},
		{"zero time", time.Time{}, "p=zero-time"},
		{"set time", time.Unix(1700000000, 0), "p=non-zero-time"},
		{"null int32", sql.NullInt32{}, "p=null"},
		{"valid int32", sql.NullInt32{Valid: true, Int32: 7}, "p=7"},
	}
	for _, tc := range cases {
		if got := ParamSummary("p", tc.in); got != tc.want {
			t.Errorf("%s: got %q want %q", tc.name, got, tc.want)
		}
	}
}

func TestParamSummaryNilPointer(t *testing.T) {
	var s *string
	if got := ParamSummary("p", s); got != "p=null" {
		t.Fatalf("got %q", got)
	}
	v := "hello"
	if got := ParamSummary("p", &v); got != "p=len=5" {
		t.Fatalf("got %q", got)
	}
}

func TestErrWrap(t *testing.T) {
	if ErrWrap("op", nil) != nil {
		t.Fatal("nil error must stay nil")
	}
	base := errors.New("boom")
	err := ErrWrap("task.move", base, ParamSummary("task", "t1"), ParamSummary("col", ""))
	if !errors.Is(err, base) {
		t.Fatal("wrapped error must unwrap to cause")
	}
	want := "task.move: boom; task=len=2,col=empty"
	if err.Error() != want {
		t.Fatalf("got %q want %q", err.Error(), want)
	}
}
