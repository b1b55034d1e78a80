package postgres

import (
	"context"
	"database/sql"

	dbutil "github.com/ferryhill/kanbord/internal/dao/dbutil"
	"github.com/jackc/pgx/v5/pgxpool"
)

// JiraUserMapping maps an internal user email to JIRA display names, scoped
// by project key and the integration owner who configured it.
type JiraUserMapping struct {
	ID               string
	UserEmail        string
	ProjectKey       string
	IntegrationOwner string
	AssigneeName     sql.NullString
	ReporterName     sql.NullString
	Created          sql.NullTime
	Updated          sql.NullTime
}

// UpsertJiraUserMapping inserts or updates a mapping keyed on the
// (user_email, project_key, integration_owner) triple.
func UpsertJiraUserMapping(ctx context.Context, db *pgxpool.Pool, m *JiraUserMapping) error {
	q := `INSERT INTO jira_user_mappings (user_email, project_key, integration_owner, jira_assignee_name, jira_reporter_name)
          VALUES ($1, $2, $3, NULLIF($4,''), NULLIF($5,''))
          ON CONFLICT (user_email, project_key, integration_owner) DO UPDATE SET
            jira_assignee_name = EXCLUDED.jira_assignee_name,
            jira_reporter_name = EXCLUDED.jira_reporter_name,
            updated = now()
          RETURNING id, created, updated`
	if err := db.QueryRow(ctx, q,
		m.UserEmail, m.ProjectKey, m.IntegrationOwner, stringOrEmpty(m.AssigneeName), stringOrEmpty(m.ReporterName),
	).Scan(&m.ID, &m.Created, &m.Updated); err != nil {
		return dbutil.ErrWrap("jira.upsert", err,
			dbutil.ParamSummary("user", m.UserEmail),
			dbutil.ParamSummary("project_key", m.ProjectKey),
			dbutil.ParamSummary("owner", m.IntegrationOwner))
	}
	return nil
}

// ListJiraUserMappings lists mappings, optionally narrowed to one project key.
func ListJiraUserMappings(ctx context.Context, db *pgxpool.Pool, projectKey string, limit, offset int) ([]JiraUserMapping, error) {
	if limit <= 0 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	q := `SELECT id, user_email, project_key, integration_owner, jira_assignee_name, jira_reporter_name, created, updated
          FROM jira_user_mappings
          WHERE $1 = '' OR project_key = $1
          ORDER BY project_key ASC, user_email ASC LIMIT $2 OFFSET $3`
	rows, err := db.Query(ctx, q, projectKey, limit, offset)
	if err != nil {
		return nil, dbutil.ErrWrap("jira.list", err, dbutil.ParamSummary("project_key", projectKey))
	}
	defer rows.Close()
	var out []JiraUserMapping
	for rows.Next() {
		var m JiraUserMapping
		if err := rows.Scan(&m.ID, &m.UserEmail, &m.ProjectKey, &m.IntegrationOwner, &m.AssigneeName, &m.ReporterName, &m.Created, &m.Updated); err != nil {
			return nil, dbutil.ErrWrap("jira.list.scan", err)
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, dbutil.ErrWrap("jira.list", err)
	}
	return out, nil
}

// DeleteJiraUserMapping removes a mapping by its identifying triple.
func DeleteJiraUserMapping(ctx context.Context, db *pgxpool.Pool, userEmail, projectKey, owner string) (int64, error) {
	ct, err := db.Exec(ctx,
		`DELETE FROM jira_user_mappings WHERE user_email=$1 AND project_key=$2 AND integration_owner=$3`,
		userEmail, projectKey, owner)
	if err != nil {
		return 0, dbutil.ErrWrap("jira.delete", err,
			dbutil.ParamSummary("user", userEmail),
			dbutil.ParamSummary("project_key", projectKey))
	}
	return ct.RowsAffected(), nil
}
