package postgres

import (
	"context"
	"database/sql"

	dbutil "github.com/ferryhill/kanbord/internal/dao/dbutil"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Category struct {
	ID        string
	ProjectID string
	Name      string
	IsActive  bool
	Created   sql.NullTime
	Updated   sql.NullTime
}

type CategoryOption struct {
	ID             string
	CategoryID     string
	ParentOptionID sql.NullString
	Name           string
	SortOrder      int
	IsActive       bool
	Created        sql.NullTime
}

// UpsertCategory inserts or updates a category identified by (project_id, name).
func UpsertCategory(ctx context.Context, db *pgxpool.Pool, c *Category) error {
	q := `INSERT INTO kanban_categories (project_id, name, is_active)
          VALUES ($1::uuid, $2, $3)
          ON CONFLICT (project_id, name) DO UPDATE SET
            is_active = EXCLUDED.is_active,
            updated = now()
          RETURNING id, created, updated`
	if err := db.QueryRow(ctx, q, c.ProjectID, c.Name, c.IsActive).Scan(&c.ID, &c.Created, &c.Updated); err != nil {
		return dbutil.ErrWrap("category.upsert", err, dbutil.ParamSummary("project", c.ProjectID), dbutil.ParamSummary("name", c.Name))
	}
	return nil
}

// ListCategories returns a project's categories ordered by name.
func ListCategories(ctx context.Context, db *pgxpool.Pool, projectID string, all bool) ([]Category, error) {
	q := `SELECT id, project_id, name, is_active, created, updated
          FROM kanban_categories WHERE project_id=$1::uuid AND (is_active OR $2)
          ORDER BY name ASC`
	rows, err := db.Query(ctx, q, projectID, all)
	if err != nil {
		return nil, dbutil.ErrWrap("category.list", err, dbutil.ParamSummary("project", projectID))
	}
	defer rows.Close()
	var out []Category
	for rows.Next() {
		var c Category
		if err := rows.Scan(&c.ID, &c.ProjectID, &c.Name, &c.IsActive, &c.Created, &c.Updated); err != nil {
			return nil, dbutil.ErrWrap("category.list.scan", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, dbutil.ErrWrap("category.list", err)
	}
	return out, nil
}

// AddCategoryOption inserts an option for a category. A non-empty
// ParentOptionID makes it a subcategory option.
func AddCategoryOption(ctx context.Context, db *pgxpool.Pool, o *CategoryOption) error {
	q := `INSERT INTO category_options (category_id, parent_option_id, name, sort_order, is_active)
          VALUES ($1::uuid, CASE WHEN $2='' THEN NULL ELSE $2::uuid END, $3, $4, $5)
          RETURNING id, created`
	if err := db.QueryRow(ctx, q, o.CategoryID, stringOrEmpty(o.ParentOptionID), o.Name, o.SortOrder, o.IsActive).Scan(&o.ID, &o.Created); err != nil {
		return dbutil.ErrWrap("category.option.add", err, dbutil.ParamSummary("category", o.CategoryID), dbutil.ParamSummary("name", o.Name))
	}
	return nil
}

// ListCategoryOptions returns a category's options, parents before children.
func ListCategoryOptions(ctx context.Context, db *pgxpool.Pool, categoryID string) ([]CategoryOption, error) {
	q := `SELECT id, category_id, parent_option_id, name, sort_order, is_active, created
          FROM category_options WHERE category_id=$1::uuid
          ORDER BY parent_option_id NULLS FIRST, sort_order ASC, name ASC`
	rows, err := db.Query(ctx, q, categoryID)
	if err != nil {
		return nil, dbutil.ErrWrap("category.option.list", err, dbutil.ParamSummary("category", categoryID))
	}
	defer rows.Close()
	var out []CategoryOption
	for rows.Next() {
		var o CategoryOption
		if err := rows.Scan(&o.ID, &o.CategoryID, &o.ParentOptionID, &o.Name, &o.SortOrder, &o.IsActive, &o.Created); err != nil {
			return nil, dbutil.ErrWrap("category.option.list.scan", err)
		}
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, dbutil.ErrWrap("category.option.list", err)
	}
	return out, nil
}

// TaskCategory is one task-to-category link, joined with the category and
// option names for display.
type TaskCategory struct {
	TaskID       string
	CategoryID   string
	CategoryName string
	OptionID     sql.NullString
	OptionName   sql.NullString
	IsPrimary    bool
	SortOrder    int
}

// ListTaskCategories returns a task's category links, primary first.
func ListTaskCategories(ctx context.Context, db *pgxpool.Pool, taskID string) ([]TaskCategory, error) {
	q := `SELECT m.task_id, m.category_id, c.name, m.option_id, o.name, m.is_primary, m.sort_order
          FROM task_category_mappings m
          JOIN kanban_categories c ON c.id = m.category_id
          LEFT JOIN category_options o ON o.id = m.option_id
          WHERE m.task_id=$1::uuid
          ORDER BY m.is_primary DESC, m.sort_order ASC, c.name ASC`
	rows, err := db.Query(ctx, q, taskID)
	if err != nil {
		return nil, dbutil.ErrWrap("task.category.list", err, dbutil.ParamSummary("task", taskID))
	}
	defer rows.Close()
	var out []TaskCategory
	for rows.Next() {
		var m TaskCategory
		if err := rows.Scan(&m.TaskID, &m.CategoryID, &m.CategoryName, &m.OptionID, &m.OptionName, &m.IsPrimary, &m.SortOrder); err != nil {
			return nil, dbutil.ErrWrap("task.category.list.scan", err)
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, dbutil.ErrWrap("task.category.list", err)
	}
	return out, nil
}

// AssignTaskCategory links a task to a category, optionally with an option.
// Re-assigning the same category replaces the option and flags.
func AssignTaskCategory(ctx context.Context, db *pgxpool.Pool, taskID, categoryID, optionID string, primary bool, sortOrder int) error {
	q := `INSERT INTO task_category_mappings (task_id, category_id, option_id, is_primary, sort_order)
          VALUES ($1::uuid, $2::uuid, CASE WHEN $3='' THEN NULL ELSE $3::uuid END, $4, $5)
          ON CONFLICT (task_id, category_id) DO UPDATE SET
            option_id = EXCLUDED.option_id,
            is_primary = EXCLUDED.is_primary,
            sort_order = EXCLUDED.sort_order`
	if _, err := db.Exec(ctx, q, taskID, categoryID, optionID, primary, sortOrder); err != nil {
		return dbutil.ErrWrap("task.category.assign", err, dbutil.ParamSummary("task", taskID), dbutil.ParamSummary("category", categoryID))
	}
	return nil
}

// ClearTaskCategory removes a task's link to a category.
func ClearTaskCategory(ctx context.Context, db *pgxpool.Pool, taskID, categoryID string) (int64, error) {
	ct, err := db.Exec(ctx, `DELETE FROM task_category_mappings WHERE task_id=$1::uuid AND category_id=$2::uuid`, taskID, categoryID)
	if err != nil {
		return 0, dbutil.ErrWrap("task.category.clear", err, dbutil.ParamSummary("task", taskID), dbutil.ParamSummary("category", categoryID))
	}
	return ct.RowsAffected(), nil
}
