package postgres

import (
	"context"
	"database/sql"

	dbutil "github.com/ferryhill/kanbord/internal/dao/dbutil"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Column struct {
	ID        string
	ProjectID string
	Name      string
	Position  int
	IsActive  bool
	Created   sql.NullTime
	Updated   sql.NullTime
}

// UpsertColumn inserts or updates a column identified by (project_id, name).
func UpsertColumn(ctx context.Context, db *pgxpool.Pool, c *Column) error {
	q := `INSERT INTO kanban_columns (project_id, name, position, is_active)
          VALUES ($1::uuid, $2, $3, $4)
          ON CONFLICT (project_id, name) DO UPDATE SET
            position = EXCLUDED.position,
            is_active = EXCLUDED.is_active,
            updated = now()
          RETURNING id, created, updated`
	if err := db.QueryRow(ctx, q, c.ProjectID, c.Name, c.Position, c.IsActive).Scan(&c.ID, &c.Created, &c.Updated); err != nil {
		return dbutil.ErrWrap("column.upsert", err, dbutil.ParamSummary("project", c.ProjectID), dbutil.ParamSummary("name", c.Name))
	}
	return nil
}

// GetColumnByID fetches a column by id.
func GetColumnByID(ctx context.Context, db *pgxpool.Pool, id string) (*Column, error) {
	q := `SELECT id, project_id, name, position, is_active, created, updated
          FROM kanban_columns WHERE id=$1::uuid`
	var c Column
	if err := db.QueryRow(ctx, q, id).Scan(&c.ID, &c.ProjectID, &c.Name, &c.Position, &c.IsActive, &c.Created, &c.Updated); err != nil {
		return nil, dbutil.ErrWrap("column.get", err, dbutil.ParamSummary("id", id))
	}
	return &c, nil
}

// ListColumns returns a project's columns ordered by position. Inactive
// columns are included only when all is true.
func ListColumns(ctx context.Context, db *pgxpool.Pool, projectID string, all bool) ([]Column, error) {
	q := `SELECT id, project_id, name, position, is_active, created, updated
          FROM kanban_columns WHERE project_id=$1::uuid AND (is_active OR $2)
          ORDER BY position ASC, name ASC`
	rows, err := db.Query(ctx, q, projectID, all)
	if err != nil {
		return nil, dbutil.ErrWrap("column.list", err, dbutil.ParamSummary("project", projectID))
	}
	defer rows.Close()
	var out []Column
	for rows.Next() {
		var c Column
		if err := rows.Scan(&c.ID, &c.ProjectID, &c.Name, &c.Position, &c.IsActive, &c.Created, &c.Updated); err != nil {
			return nil, dbutil.ErrWrap("column.list.scan", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, dbutil.ErrWrap("column.list", err)
	}
	return out, nil
}

// DeactivateColumn flips is_active off; tasks keep their reference but the
// column stops being a valid move destination.
func DeactivateColumn(ctx context.Context, db *pgxpool.Pool, id string) (int64, error) {
	ct, err := db.Exec(ctx, `UPDATE kanban_columns SET is_active=FALSE, updated=now() WHERE id=$1::uuid`, id)
	if err != nil {
		return 0, dbutil.ErrWrap("column.deactivate", err, dbutil.ParamSummary("id", id))
	}
	return ct.RowsAffected(), nil
}

// DeleteColumn removes a column. Fails if tasks still reference it.
func DeleteColumn(ctx context.Context, db *pgxpool.Pool, id string) (int64, error) {
	ct, err := db.Exec(ctx, `DELETE FROM kanban_columns WHERE id=$1::uuid`, id)
	if err != nil {
		return 0, dbutil.ErrWrap("column.delete", err, dbutil.ParamSummary("id", id))
	}
	return ct.RowsAffected(), nil
}
