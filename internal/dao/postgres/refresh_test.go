package postgres

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

type fakeExecer struct {
	concurrentErr error
	fullErr       error
	calls         []string
}

func (f *fakeExecer) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	f.calls = append(f.calls, sql)
	if strings.Contains(sql, "CONCURRENTLY") {
		return pgconn.CommandTag{}, f.concurrentErr
	}
	return pgconn.CommandTag{}, f.fullErr
}

func TestRefreshConcurrentPath(t *testing.T) {
	db := &fakeExecer{}
	out, err := RefreshProjectStats(context.Background(), db)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != RefreshedConcurrently {
		t.Fatalf("expected concurrent outcome, got %v", out)
	}
	if len(db.calls) != 1 {
		t.Fatalf("fallback must not run when concurrent succeeds, got %d calls", len(db.calls))
	}
}

func TestRefreshFallsBackToFull(t *testing.T) {
	db := &fakeExecer{concurrentErr: errors.New("no unique index")}
	out, err := RefreshProjectStats(context.Background(), db)
	if err != nil {
		t.Fatalf("fallback success must not surface the concurrent failure: %v", err)
	}
	if out != RefreshedFullFallback {
		t.Fatalf("expected fallback outcome, got %v", out)
	}
	if len(db.calls) != 2 {
		t.Fatalf("expected concurrent then full, got %d calls", len(db.calls))
	}
	if strings.Contains(db.calls[1], "CONCURRENTLY") {
		t.Fatalf("second attempt must be the blocking refresh: %s", db.calls[1])
	}
}

func TestRefreshBothPathsFail(t *testing.T) {
	cerr := errors.New("lock contention")
	ferr := errors.New("view missing")
	db := &fakeExecer{concurrentErr: cerr, fullErr: ferr}
	out, err := RefreshProjectStats(context.Background(), db)
	if err == nil {
		t.Fatal("expected error when both refresh paths fail")
	}
	if out != RefreshFailed {
		t.Fatalf("expected failed outcome, got %v", out)
	}
	if !errors.Is(err, ferr) {
		t.Fatal("error must unwrap to the fallback cause")
	}
	if !strings.Contains(err.Error(), cerr.Error()) {
		t.Fatal("error must mention the concurrent cause")
	}
}

func TestRefreshOutcomeString(t *testing.T) {
	if RefreshedConcurrently.String() != "concurrent" ||
		RefreshedFullFallback.String() != "full-fallback" ||
		RefreshFailed.String() != "failed" {
		t.Fatal("unexpected outcome strings")
	}
}
