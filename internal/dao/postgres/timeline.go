package postgres

import (
	"context"
	"encoding/json"
	"time"

	dbutil "github.com/ferryhill/kanbord/internal/dao/dbutil"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TimelineEntry is one immutable audit-log row for a task. There is no
// update or delete surface for this table on purpose.
type TimelineEntry struct {
	ID         string
	TaskID     string
	Action     string
	Details    map[string]any
	ActorEmail string
	Created    time.Time
}

// AppendTimeline writes one audit entry for a task.
func AppendTimeline(ctx context.Context, db *pgxpool.Pool, e *TimelineEntry) error {
	if e.ActorEmail == "" {
		e.ActorEmail = "system"
	}
	q := `INSERT INTO task_timeline (task_id, action, details, actor_email)
          VALUES ($1::uuid, $2, COALESCE($3,'{}'::jsonb), $4)
          RETURNING id, created`
	if err := db.QueryRow(ctx, q, e.TaskID, e.Action, detailsValue(e.Details), e.ActorEmail).Scan(&e.ID, &e.Created); err != nil {
		return dbutil.ErrWrap("timeline.append", err, dbutil.ParamSummary("task", e.TaskID), dbutil.ParamSummary("action", e.Action))
	}
	return nil
}

// detailsValue converts a details map to its jsonb insert parameter. A nil
// map becomes SQL NULL so the COALESCE default applies; marshaling a nil map
// would instead store the non-NULL jsonb value 'null'.
func detailsValue(m map[string]any) any {
	if m == nil {
		return nil
	}
	b, _ := json.Marshal(m)
	return b
}

// ListTimeline returns a task's audit entries, newest first.
func ListTimeline(ctx context.Context, db *pgxpool.Pool, taskID string, limit, offset int) ([]TimelineEntry, error) {
	if limit <= 0 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	q := `SELECT id, task_id, action, details, actor_email, created
          FROM task_timeline WHERE task_id=$1::uuid
          ORDER BY created DESC LIMIT $2 OFFSET $3`
	rows, err := db.Query(ctx, q, taskID, limit, offset)
	if err != nil {
		return nil, dbutil.ErrWrap("timeline.list", err, dbutil.ParamSummary("task", taskID))
	}
	defer rows.Close()
	var out []TimelineEntry
	for rows.Next() {
		var e TimelineEntry
		var detailsJSON []byte
		if err := rows.Scan(&e.ID, &e.TaskID, &e.Action, &detailsJSON, &e.ActorEmail, &e.Created); err != nil {
			return nil, dbutil.ErrWrap("timeline.list.scan", err)
		}
		if len(detailsJSON) > 0 {
			_ = json.Unmarshal(detailsJSON, &e.Details)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, dbutil.ErrWrap("timeline.list", err)
	}
	return out, nil
}
