package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// RefreshOutcome reports which refresh strategy succeeded.
type RefreshOutcome int

const (
	RefreshFailed RefreshOutcome = iota
	RefreshedConcurrently
	RefreshedFullFallback
)

func (o RefreshOutcome) String() string {
	switch o {
	case RefreshedConcurrently:
		return "concurrent"
	case RefreshedFullFallback:
		return "full-fallback"
	default:
		return "failed"
	}
}

// statsExecer is satisfied by *pgxpool.Pool; tests substitute a fake.
type statsExecer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// RefreshProjectStats recomputes the project_kanban_stats materialized view.
// It first tries a concurrent refresh, which does not block readers but
// requires the unique index on project_id; on any error it falls back to a
// blocking full refresh. Only the failure of both paths is returned to the
// caller.
func RefreshProjectStats(ctx context.Context, db statsExecer) (RefreshOutcome, error) {
	_, cerr := db.Exec(ctx, `REFRESH MATERIALIZED VIEW CONCURRENTLY project_kanban_stats`)
	if cerr == nil {
		return RefreshedConcurrently, nil
	}
	if _, err := db.Exec(ctx, `REFRESH MATERIALIZED VIEW project_kanban_stats`); err != nil {
		return RefreshFailed, fmt.Errorf("stats.refresh: full refresh failed: %w (concurrent refresh: %v)", err, cerr)
	}
	return RefreshedFullFallback, nil
}
