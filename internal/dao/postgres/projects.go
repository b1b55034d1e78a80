package postgres

import (
	"context"
	"database/sql"

	dbutil "github.com/ferryhill/kanbord/internal/dao/dbutil"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Project struct {
	ID          string
	Name        string
	Description sql.NullString
	Created     sql.NullTime
	Updated     sql.NullTime
}

// UpsertProject inserts or updates a project identified by name.
func UpsertProject(ctx context.Context, db *pgxpool.Pool, p *Project) error {
	q := `INSERT INTO projects (name, description)
          VALUES ($1, NULLIF($2,''))
          ON CONFLICT (name) DO UPDATE SET
            description = EXCLUDED.description,
            updated = now()
          RETURNING id, created, updated`
	if err := db.QueryRow(ctx, q, p.Name, stringOrEmpty(p.Description)).Scan(&p.ID, &p.Created, &p.Updated); err != nil {
		return dbutil.ErrWrap("project.upsert", err, dbutil.ParamSummary("name", p.Name))
	}
	return nil
}

// GetProjectByName fetches a project by its unique name.
func GetProjectByName(ctx context.Context, db *pgxpool.Pool, name string) (*Project, error) {
	q := `SELECT id, name, description, created, updated FROM projects WHERE name=$1`
	var p Project
	if err := db.QueryRow(ctx, q, name).Scan(&p.ID, &p.Name, &p.Description, &p.Created, &p.Updated); err != nil {
		return nil, dbutil.ErrWrap("project.get", err, dbutil.ParamSummary("name", name))
	}
	return &p, nil
}

// GetProjectByID fetches a project by id.
func GetProjectByID(ctx context.Context, db *pgxpool.Pool, id string) (*Project, error) {
	q := `SELECT id, name, description, created, updated FROM projects WHERE id=$1::uuid`
	var p Project
	if err := db.QueryRow(ctx, q, id).Scan(&p.ID, &p.Name, &p.Description, &p.Created, &p.Updated); err != nil {
		return nil, dbutil.ErrWrap("project.get", err, dbutil.ParamSummary("id", id))
	}
	return &p, nil
}

// ListProjects returns projects ordered by name.
func ListProjects(ctx context.Context, db *pgxpool.Pool, limit, offset int) ([]Project, error) {
	if limit <= 0 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	q := `SELECT id, name, description, created, updated FROM projects ORDER BY name ASC LIMIT $1 OFFSET $2`
	rows, err := db.Query(ctx, q, limit, offset)
	if err != nil {
		return nil, dbutil.ErrWrap("project.list", err)
	}
	defer rows.Close()
	var out []Project
	for rows.Next() {
		var p Project
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Created, &p.Updated); err != nil {
			return nil, dbutil.ErrWrap("project.list.scan", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, dbutil.ErrWrap("project.list", err)
	}
	return out, nil
}

// DeleteProject removes a project by name. Columns, tasks and categories
// cascade with it.
func DeleteProject(ctx context.Context, db *pgxpool.Pool, name string) (int64, error) {
	ct, err := db.Exec(ctx, `DELETE FROM projects WHERE name=$1`, name)
	if err != nil {
		return 0, dbutil.ErrWrap("project.delete", err, dbutil.ParamSummary("name", name))
	}
	return ct.RowsAffected(), nil
}

func stringOrEmpty(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}
