package board

import (
	"context"

	pgdao "github.com/ferryhill/kanbord/internal/dao/postgres"
)

// TaskMover relocates tasks between columns, reporting outcome through the
// MoveResult success flag rather than an error.
type TaskMover interface {
	MoveTaskSafe(ctx context.Context, taskID, columnID string, sortOrder int, actorEmail string) *pgdao.MoveResult
}

// StatsRefresher recomputes and reads the per-project stats view.
type StatsRefresher interface {
	RefreshProjectStats(ctx context.Context) (pgdao.RefreshOutcome, error)
	ListProjectStats(ctx context.Context) ([]pgdao.ProjectStats, error)
}

// BoardReader loads the column/task read model for one project.
type BoardReader interface {
	GetBoard(ctx context.Context, projectID string) ([]pgdao.BoardColumn, error)
}
