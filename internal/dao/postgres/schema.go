package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// EnsureSchema creates the required tables, triggers and the stats
// materialized view if they do not exist.
func EnsureSchema(ctx context.Context, db *pgxpool.Pool) error {
	stmts := []string{
		// Enable pgcrypto for gen_random_uuid()
		`CREATE EXTENSION IF NOT EXISTS pgcrypto`,
		// Projects table
		`CREATE TABLE IF NOT EXISTS projects (
            id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
            name TEXT NOT NULL UNIQUE,
            description TEXT,
            created TIMESTAMPTZ NOT NULL DEFAULT now(),
            updated TIMESTAMPTZ NOT NULL DEFAULT now()
        )`,
		// Board columns; position orders them left to right
		`CREATE TABLE IF NOT EXISTS kanban_columns (
            id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
            project_id UUID NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
            name TEXT NOT NULL,
            position INTEGER NOT NULL DEFAULT 0,
            is_active BOOLEAN NOT NULL DEFAULT TRUE,
            created TIMESTAMPTZ NOT NULL DEFAULT now(),
            updated TIMESTAMPTZ NOT NULL DEFAULT now(),
            UNIQUE (project_id, name)
        )`,
		`CREATE INDEX IF NOT EXISTS idx_kanban_columns_project ON kanban_columns(project_id)`,
		// Tasks; status 'active' drives board visibility, 'archived'/'done' hide
		`CREATE TABLE IF NOT EXISTS kanban_tasks (
            id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
            project_id UUID NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
            column_id UUID NOT NULL REFERENCES kanban_columns(id),
            title TEXT NOT NULL,
            description TEXT,
            status TEXT NOT NULL DEFAULT 'active',
            priority TEXT NOT NULL DEFAULT 'medium',
            due_date TIMESTAMPTZ,
            sort_order INTEGER NOT NULL DEFAULT 0,
            created TIMESTAMPTZ NOT NULL DEFAULT now(),
            updated TIMESTAMPTZ NOT NULL DEFAULT now()
        )`,
		`CREATE INDEX IF NOT EXISTS idx_kanban_tasks_project ON kanban_tasks(project_id)`,
		`CREATE INDEX IF NOT EXISTS idx_kanban_tasks_column ON kanban_tasks(column_id, sort_order)`,
		`CREATE INDEX IF NOT EXISTS idx_kanban_tasks_status ON kanban_tasks(status)`,
		// Categories and their options; options may nest one level via parent_option_id
		`CREATE TABLE IF NOT EXISTS kanban_categories (
            id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
            project_id UUID NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
            name TEXT NOT NULL,
            is_active BOOLEAN NOT NULL DEFAULT TRUE,
            created TIMESTAMPTZ NOT NULL DEFAULT now(),
            updated TIMESTAMPTZ NOT NULL DEFAULT now(),
            UNIQUE (project_id, name)
        )`,
		`CREATE TABLE IF NOT EXISTS category_options (
            id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
            category_id UUID NOT NULL REFERENCES kanban_categories(id) ON DELETE CASCADE,
            parent_option_id UUID REFERENCES category_options(id) ON DELETE CASCADE,
            name TEXT NOT NULL,
            sort_order INTEGER NOT NULL DEFAULT 0,
            is_active BOOLEAN NOT NULL DEFAULT TRUE,
            created TIMESTAMPTZ NOT NULL DEFAULT now()
        )`,
		`CREATE INDEX IF NOT EXISTS idx_category_options_category ON category_options(category_id)`,
		// Task to category assignments
		`CREATE TABLE IF NOT EXISTS task_category_mappings (
            task_id UUID NOT NULL REFERENCES kanban_tasks(id) ON DELETE CASCADE,
            category_id UUID NOT NULL REFERENCES kanban_categories(id) ON DELETE CASCADE,
            option_id UUID REFERENCES category_options(id),
            is_primary BOOLEAN NOT NULL DEFAULT FALSE,
            sort_order INTEGER NOT NULL DEFAULT 0,
            created TIMESTAMPTZ NOT NULL DEFAULT now(),
            PRIMARY KEY (task_id, category_id)
        )`,
		// Append-only audit log; rows are never updated or deleted
		`CREATE TABLE IF NOT EXISTS task_timeline (
            id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
            task_id UUID NOT NULL,
            action TEXT NOT NULL,
            details JSONB NOT NULL DEFAULT '{}'::jsonb,
            actor_email TEXT NOT NULL DEFAULT 'system',
            created TIMESTAMPTZ NOT NULL DEFAULT now()
        )`,
		`CREATE INDEX IF NOT EXISTS idx_task_timeline_task ON task_timeline(task_id, created DESC)`,
		// JIRA display-name mapping, unique per (user, project key, integration owner)
		`CREATE TABLE IF NOT EXISTS jira_user_mappings (
            id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
            user_email TEXT NOT NULL,
            project_key TEXT NOT NULL,
            integration_owner TEXT NOT NULL,
            jira_assignee_name TEXT,
            jira_reporter_name TEXT,
            created TIMESTAMPTZ NOT NULL DEFAULT now(),
            updated TIMESTAMPTZ NOT NULL DEFAULT now(),
            UNIQUE (user_email, project_key, integration_owner)
        )`,
		// Trigger function to maintain 'updated' on mutable tables
		`CREATE OR REPLACE FUNCTION set_updated()
         RETURNS TRIGGER AS $$
         BEGIN
            NEW.updated = now();
            RETURN NEW;
         END;
         $$ LANGUAGE plpgsql;`,
		`DO $$ BEGIN
            IF NOT EXISTS (
                SELECT 1 FROM pg_trigger WHERE tgname = 'projects_set_updated'
            ) THEN
                CREATE TRIGGER projects_set_updated
                BEFORE UPDATE ON projects
                FOR EACH ROW
                EXECUTE PROCEDURE set_updated();
            END IF;
        END $$;`,
		`DO $$ BEGIN
            IF NOT EXISTS (
                SELECT 1 FROM pg_trigger WHERE tgname = 'kanban_columns_set_updated'
            ) THEN
                CREATE TRIGGER kanban_columns_set_updated
                BEFORE UPDATE ON kanban_columns
                FOR EACH ROW
                EXECUTE PROCEDURE set_updated();
            END IF;
        END $$;`,
		`DO $$ BEGIN
            IF NOT EXISTS (
                SELECT 1 FROM pg_trigger WHERE tgname = 'kanban_tasks_set_updated'
            ) THEN
                CREATE TRIGGER kanban_tasks_set_updated
                BEFORE UPDATE ON kanban_tasks
                FOR EACH ROW
                EXECUTE PROCEDURE set_updated();
            END IF;
        END $$;`,
		`DO $$ BEGIN
            IF NOT EXISTS (
                SELECT 1 FROM pg_trigger WHERE tgname = 'kanban_categories_set_updated'
            ) THEN
                CREATE TRIGGER kanban_categories_set_updated
                BEFORE UPDATE ON kanban_categories
                FOR EACH ROW
                EXECUTE PROCEDURE set_updated();
            END IF;
        END $$;`,
		`DO $$ BEGIN
            IF NOT EXISTS (
                SELECT 1 FROM pg_trigger WHERE tgname = 'jira_user_mappings_set_updated'
            ) THEN
                CREATE TRIGGER jira_user_mappings_set_updated
                BEFORE UPDATE ON jira_user_mappings
                FOR EACH ROW
                EXECUTE PROCEDURE set_updated();
            END IF;
        END $$;`,
		// Per-project denormalized counters. Outer joins keep empty projects
		// visible with zero counts.
		`CREATE MATERIALIZED VIEW IF NOT EXISTS project_kanban_stats AS
         SELECT p.id AS project_id,
                p.name AS project_name,
                COUNT(DISTINCT t.id) AS total_tasks,
                COUNT(DISTINCT t.id) FILTER (WHERE t.status = 'active') AS active_tasks,
                COUNT(DISTINCT t.id) FILTER (WHERE t.priority = 'urgent') AS urgent_tasks,
                COUNT(DISTINCT t.id) FILTER (WHERE t.due_date < now() AND t.status = 'active') AS overdue_tasks,
                COUNT(DISTINCT c.id) FILTER (WHERE c.is_active) AS active_columns,
                COUNT(DISTINCT cat.id) FILTER (WHERE cat.is_active) AS active_categories,
                MAX(t.updated) AS last_task_update
         FROM projects p
         LEFT JOIN kanban_tasks t ON t.project_id = p.id
         LEFT JOIN kanban_columns c ON c.project_id = p.id
         LEFT JOIN kanban_categories cat ON cat.project_id = p.id
         GROUP BY p.id, p.name`,
		// Unique index is the corequisite for REFRESH ... CONCURRENTLY
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_project_kanban_stats_project ON project_kanban_stats(project_id)`,
	}
	for _, s := range stmts {
		if _, err := db.Exec(ctx, s); err != nil {
			return err
		}
	}
	return nil
}
