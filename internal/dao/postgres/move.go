package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	dbutil "github.com/ferryhill/kanbord/internal/dao/dbutil"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Tagged move failures. Callers can branch on these instead of parsing
// messages.
var (
	ErrTaskNotFound   = errors.New("task not found or not active")
	ErrColumnNotFound = errors.New("destination column not found or inactive")
	ErrMoveConflict   = errors.New("task changed concurrently during move")
)

// boardTx is the slice of pgx.Tx the move needs. Tests substitute a fake.
type boardTx interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// MovePayload is the timeline detail written for a "moved" action. It
// snapshots the column names so the audit entry stays meaningful if columns
// are later renamed or deleted.
type MovePayload struct {
	FromColumnID string `json:"from_column_id"`
	FromColumn   string `json:"from_column"`
	ToColumnID   string `json:"to_column_id"`
	ToColumn     string `json:"to_column"`
	SortOrder    int    `json:"sort_order"`
}

// MoveReceipt describes a completed move.
type MoveReceipt struct {
	TaskID     string
	FromColumn string
	ToColumn   string
	TimelineID string
}

// MoveResult is the swallow-and-report shape returned by MoveTaskSafe.
// Callers must branch on Success; no error escapes the call.
type MoveResult struct {
	Success    bool   `json:"success"`
	TaskID     string `json:"task_id"`
	FromColumn string `json:"from_column,omitempty"`
	ToColumn   string `json:"to_column,omitempty"`
	TimelineID string `json:"timeline_id,omitempty"`
	Error      string `json:"error,omitempty"`
	Message    string `json:"message"`
}

// MoveTask relocates an active task to an active column and appends one
// timeline entry, all on the supplied transaction. It returns a tagged error
// on any failure; the caller owns commit/rollback, so a failed move leaves no
// partial state behind.
func MoveTask(ctx context.Context, tx boardTx, taskID, columnID string, sortOrder int, actorEmail string) (*MoveReceipt, error) {
	if actorEmail == "" {
		actorEmail = "system"
	}
	var fromColumnID, fromColumn string
	err := tx.QueryRow(ctx,
		`SELECT t.column_id, c.name
         FROM kanban_tasks t
         JOIN kanban_columns c ON c.id = t.column_id
         WHERE t.id=$1::uuid AND t.status='active'`, taskID,
	).Scan(&fromColumnID, &fromColumn)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTaskNotFound
		}
		return nil, dbutil.ErrWrap("task.move.load", err, dbutil.ParamSummary("task", taskID))
	}

	var toColumn string
	err = tx.QueryRow(ctx,
		`SELECT name FROM kanban_columns WHERE id=$1::uuid AND is_active`, columnID,
	).Scan(&toColumn)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrColumnNotFound
		}
		return nil, dbutil.ErrWrap("task.move.column", err, dbutil.ParamSummary("column", columnID))
	}

	ct, err := tx.Exec(ctx,
		`UPDATE kanban_tasks SET column_id=$2::uuid, sort_order=$3, updated=now()
         WHERE id=$1::uuid AND status='active'`, taskID, columnID, sortOrder)
	if err != nil {
		return nil, dbutil.ErrWrap("task.move.update", err, dbutil.ParamSummary("task", taskID))
	}
	if ct.RowsAffected() == 0 {
		return nil, ErrMoveConflict
	}

	detailsJSON, _ := json.Marshal(MovePayload{
		FromColumnID: fromColumnID,
		FromColumn:   fromColumn,
		ToColumnID:   columnID,
		ToColumn:     toColumn,
		SortOrder:    sortOrder,
	})
	var timelineID string
	err = tx.QueryRow(ctx,
		`INSERT INTO task_timeline (task_id, action, details, actor_email)
         VALUES ($1::uuid, 'moved', $2, $3) RETURNING id`,
		taskID, detailsJSON, actorEmail,
	).Scan(&timelineID)
	if err != nil {
		return nil, dbutil.ErrWrap("task.move.timeline", err, dbutil.ParamSummary("task", taskID))
	}

	return &MoveReceipt{TaskID: taskID, FromColumn: fromColumn, ToColumn: toColumn, TimelineID: timelineID}, nil
}

// MoveTaskSafe runs MoveTask in its own transaction and converts any failure
// into a MoveResult instead of an error, mirroring the RPC contract where the
// caller inspects the success flag rather than transaction semantics.
func MoveTaskSafe(ctx context.Context, db *pgxpool.Pool, taskID, columnID string, sortOrder int, actorEmail string) *MoveResult {
	receipt, err := func() (*MoveReceipt, error) {
		tx, err := db.Begin(ctx)
		if err != nil {
			return nil, dbutil.ErrWrap("task.move.begin", err)
		}
		defer func() { _ = tx.Rollback(ctx) }()
		r, err := MoveTask(ctx, tx, taskID, columnID, sortOrder, actorEmail)
		if err != nil {
			return nil, err
		}
		if err := tx.Commit(ctx); err != nil {
			return nil, dbutil.ErrWrap("task.move.commit", err)
		}
		return r, nil
	}()
	return moveResult(taskID, receipt, err)
}

func moveResult(taskID string, receipt *MoveReceipt, err error) *MoveResult {
	if err != nil {
		return &MoveResult{
			Success: false,
			TaskID:  taskID,
			Error:   moveErrorKind(err),
			Message: err.Error(),
		}
	}
	return &MoveResult{
		Success:    true,
		TaskID:     receipt.TaskID,
		FromColumn: receipt.FromColumn,
		ToColumn:   receipt.ToColumn,
		TimelineID: receipt.TimelineID,
		Message:    fmt.Sprintf("task moved from %q to %q", receipt.FromColumn, receipt.ToColumn),
	}
}

func moveErrorKind(err error) string {
	switch {
	case errors.Is(err, ErrTaskNotFound):
		return "task_not_found"
	case errors.Is(err, ErrColumnNotFound):
		return "column_not_found"
	case errors.Is(err, ErrMoveConflict):
		return "move_conflict"
	default:
		return "unknown"
	}
}
