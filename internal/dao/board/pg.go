package board

import (
	"context"

	pgdao "github.com/ferryhill/kanbord/internal/dao/postgres"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgBoard adapts the postgres DAO functions to the board interfaces.
type PgBoard struct {
	Pool *pgxpool.Pool
}

func NewPgBoard(pool *pgxpool.Pool) *PgBoard { return &PgBoard{Pool: pool} }

func (b *PgBoard) MoveTaskSafe(ctx context.Context, taskID, columnID string, sortOrder int, actorEmail string) *pgdao.MoveResult {
	return pgdao.MoveTaskSafe(ctx, b.Pool, taskID, columnID, sortOrder, actorEmail)
}

func (b *PgBoard) RefreshProjectStats(ctx context.Context) (pgdao.RefreshOutcome, error) {
	return pgdao.RefreshProjectStats(ctx, b.Pool)
}

func (b *PgBoard) ListProjectStats(ctx context.Context) ([]pgdao.ProjectStats, error) {
	return pgdao.ListProjectStats(ctx, b.Pool)
}

func (b *PgBoard) GetBoard(ctx context.Context, projectID string) ([]pgdao.BoardColumn, error) {
	return pgdao.GetBoard(ctx, b.Pool, projectID)
}
