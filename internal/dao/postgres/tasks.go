package postgres

import (
	"context"
	"database/sql"

	dbutil "github.com/ferryhill/kanbord/internal/dao/dbutil"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Task statuses and priorities stored in kanban_tasks.
const (
	StatusActive   = "active"
	StatusDone     = "done"
	StatusArchived = "archived"

	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

type Task struct {
	ID          string
	ProjectID   string
	ColumnID    string
	Title       string
	Description sql.NullString
	Status      string
	Priority    string
	DueDate     sql.NullTime
	SortOrder   int
	Created     sql.NullTime
	Updated     sql.NullTime
}

// CreateTask inserts a task into a column. Status and priority default to
// active/medium when empty.
func CreateTask(ctx context.Context, db *pgxpool.Pool, t *Task) error {
	if t.Status == "" {
		t.Status = StatusActive
	}
	if t.Priority == "" {
		t.Priority = PriorityMedium
	}
	q := `INSERT INTO kanban_tasks (project_id, column_id, title, description, status, priority, due_date, sort_order)
          VALUES ($1::uuid, $2::uuid, $3, NULLIF($4,''), $5, $6, $7, $8)
          RETURNING id, created, updated`
	if err := db.QueryRow(ctx, q,
		t.ProjectID, t.ColumnID, t.Title, stringOrEmpty(t.Description), t.Status, t.Priority, nullOrTime(t.DueDate), t.SortOrder,
	).Scan(&t.ID, &t.Created, &t.Updated); err != nil {
		return dbutil.ErrWrap("task.create", err, dbutil.ParamSummary("project", t.ProjectID), dbutil.ParamSummary("title", t.Title))
	}
	return nil
}

// GetTaskByID fetches a task by id.
func GetTaskByID(ctx context.Context, db *pgxpool.Pool, id string) (*Task, error) {
	q := `SELECT id, project_id, column_id, title, description, status, priority, due_date, sort_order, created, updated
          FROM kanban_tasks WHERE id=$1::uuid`
	var t Task
	if err := db.QueryRow(ctx, q, id).Scan(
		&t.ID, &t.ProjectID, &t.ColumnID, &t.Title, &t.Description, &t.Status, &t.Priority, &t.DueDate, &t.SortOrder, &t.Created, &t.Updated,
	); err != nil {
		return nil, dbutil.ErrWrap("task.get", err, dbutil.ParamSummary("id", id))
	}
	return &t, nil
}

// ListTasks lists a project's tasks, optionally narrowed to one column and/or
// one status, ordered by column position then sort order.
func ListTasks(ctx context.Context, db *pgxpool.Pool, projectID, columnID, status string, limit, offset int) ([]Task, error) {
	if limit <= 0 {
		limit = 200
	}
	if offset < 0 {
		offset = 0
	}
	q := `SELECT t.id, t.project_id, t.column_id, t.title, t.description, t.status, t.priority, t.due_date, t.sort_order, t.created, t.updated
          FROM kanban_tasks t
          JOIN kanban_columns c ON c.id = t.column_id
          WHERE t.project_id=$1::uuid
            AND ($2 = '' OR t.column_id = $2::uuid)
            AND ($3 = '' OR t.status = $3)
          ORDER BY c.position ASC, t.sort_order ASC, t.created ASC
          LIMIT $4 OFFSET $5`
	rows, err := db.Query(ctx, q, projectID, columnID, status, limit, offset)
	if err != nil {
		return nil, dbutil.ErrWrap("task.list", err, dbutil.ParamSummary("project", projectID))
	}
	defer rows.Close()
	var out []Task
	for rows.Next() {
		var t Task
		if err := rows.Scan(&t.ID, &t.ProjectID, &t.ColumnID, &t.Title, &t.Description, &t.Status, &t.Priority, &t.DueDate, &t.SortOrder, &t.Created, &t.Updated); err != nil {
			return nil, dbutil.ErrWrap("task.list.scan", err)
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, dbutil.ErrWrap("task.list", err)
	}
	return out, nil
}

// UpdateTaskFields updates the mutable task fields (title, description,
// priority, due date, status). Empty strings leave the current value in place;
// clearDue removes the due date.
func UpdateTaskFields(ctx context.Context, db *pgxpool.Pool, id, title, description, priority, status string, due sql.NullTime, clearDue bool) (int64, error) {
	q := `UPDATE kanban_tasks SET
            title = COALESCE(NULLIF($2,''), title),
            description = COALESCE(NULLIF($3,''), description),
            priority = COALESCE(NULLIF($4,''), priority),
            status = COALESCE(NULLIF($5,''), status),
            due_date = CASE WHEN $7 THEN NULL ELSE COALESCE($6, due_date) END,
            updated = now()
          WHERE id=$1::uuid`
	ct, err := db.Exec(ctx, q, id, title, description, priority, status, nullOrTime(due), clearDue)
	if err != nil {
		return 0, dbutil.ErrWrap("task.update", err, dbutil.ParamSummary("id", id))
	}
	return ct.RowsAffected(), nil
}

// ArchiveTask soft-deletes a task by flipping its status.
func ArchiveTask(ctx context.Context, db *pgxpool.Pool, id string) (int64, error) {
	ct, err := db.Exec(ctx, `UPDATE kanban_tasks SET status=$2, updated=now() WHERE id=$1::uuid`, id, StatusArchived)
	if err != nil {
		return 0, dbutil.ErrWrap("task.archive", err, dbutil.ParamSummary("id", id))
	}
	return ct.RowsAffected(), nil
}

// DeleteTask removes a task row. Timeline entries stay behind as the
// immutable record of what happened to it.
func DeleteTask(ctx context.Context, db *pgxpool.Pool, id string) (int64, error) {
	ct, err := db.Exec(ctx, `DELETE FROM kanban_tasks WHERE id=$1::uuid`, id)
	if err != nil {
		return 0, dbutil.ErrWrap("task.delete", err, dbutil.ParamSummary("id", id))
	}
	return ct.RowsAffected(), nil
}

func nullOrTime(nt sql.NullTime) any {
	if nt.Valid {
		return nt.Time
	}
	return nil
}
