package postgres

import (
	"context"
	"time"

	dbutil "github.com/ferryhill/kanbord/internal/dao/dbutil"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ProjectStats is one row of the project_kanban_stats materialized view.
// Values are as of the last refresh, not live. LastTaskUpdate is nil for
// projects with no tasks and serializes as JSON null.
type ProjectStats struct {
	ProjectID        string     `json:"project_id"`
	ProjectName      string     `json:"project_name"`
	TotalTasks       int64      `json:"total_tasks"`
	ActiveTasks      int64      `json:"active_tasks"`
	UrgentTasks      int64      `json:"urgent_tasks"`
	OverdueTasks     int64      `json:"overdue_tasks"`
	ActiveColumns    int64      `json:"active_columns"`
	ActiveCategories int64      `json:"active_categories"`
	LastTaskUpdate   *time.Time `json:"last_task_update"`
}

const statsColumns = `project_id, project_name, total_tasks, active_tasks, urgent_tasks,
       overdue_tasks, active_columns, active_categories, last_task_update`

// GetProjectStats fetches the stats row for one project.
func GetProjectStats(ctx context.Context, db *pgxpool.Pool, projectID string) (*ProjectStats, error) {
	q := `SELECT ` + statsColumns + ` FROM project_kanban_stats WHERE project_id=$1::uuid`
	var s ProjectStats
	if err := db.QueryRow(ctx, q, projectID).Scan(
		&s.ProjectID, &s.ProjectName, &s.TotalTasks, &s.ActiveTasks, &s.UrgentTasks,
		&s.OverdueTasks, &s.ActiveColumns, &s.ActiveCategories, &s.LastTaskUpdate,
	); err != nil {
		return nil, dbutil.ErrWrap("stats.get", err, dbutil.ParamSummary("project", projectID))
	}
	return &s, nil
}

// ListProjectStats returns stats for every project, ordered by project name.
func ListProjectStats(ctx context.Context, db *pgxpool.Pool) ([]ProjectStats, error) {
	q := `SELECT ` + statsColumns + ` FROM project_kanban_stats ORDER BY project_name ASC`
	rows, err := db.Query(ctx, q)
	if err != nil {
		return nil, dbutil.ErrWrap("stats.list", err)
	}
	defer rows.Close()
	var out []ProjectStats
	for rows.Next() {
		var s ProjectStats
		if err := rows.Scan(
			&s.ProjectID, &s.ProjectName, &s.TotalTasks, &s.ActiveTasks, &s.UrgentTasks,
			&s.OverdueTasks, &s.ActiveColumns, &s.ActiveCategories, &s.LastTaskUpdate,
		); err != nil {
			return nil, dbutil.ErrWrap("stats.list.scan", err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, dbutil.ErrWrap("stats.list", err)
	}
	return out, nil
}
