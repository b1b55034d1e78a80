package postgres

import (
	"context"
	"database/sql"
	"time"

	dbutil "github.com/ferryhill/kanbord/internal/dao/dbutil"
	"github.com/jackc/pgx/v5/pgxpool"
)

// BoardColumn is one column of the board read model with its active tasks in
// sort order.
type BoardColumn struct {
	Column
	Tasks []Task
}

// GetBoard loads a project's active columns with their active tasks.
func GetBoard(ctx context.Context, db *pgxpool.Pool, projectID string) ([]BoardColumn, error) {
	cols, err := ListColumns(ctx, db, projectID, false)
	if err != nil {
		return nil, err
	}
	tasks, err := ListTasks(ctx, db, projectID, "", StatusActive, 0, 0)
	if err != nil {
		return nil, err
	}
	byColumn := make(map[string][]Task, len(cols))
	for _, t := range tasks {
		byColumn[t.ColumnID] = append(byColumn[t.ColumnID], t)
	}
	out := make([]BoardColumn, 0, len(cols))
	for _, c := range cols {
		out = append(out, BoardColumn{Column: c, Tasks: byColumn[c.ID]})
	}
	if len(out) == 0 {
		// Distinguish "empty board" from "no such project"
		if _, err := GetProjectByID(ctx, db, projectID); err != nil {
			return nil, dbutil.ErrWrap("board.get", err, dbutil.ParamSummary("project", projectID))
		}
	}
	return out, nil
}

// IsOverdue reports whether a task counts as overdue: a due date strictly in
// the past and still active. Matches the overdue_tasks predicate of the stats
// view.
func IsOverdue(due sql.NullTime, status string, now time.Time) bool {
	return due.Valid && due.Time.Before(now) && status == StatusActive
}
