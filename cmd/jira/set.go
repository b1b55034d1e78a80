package jira

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"os"
	"time"

	cfgpkg "github.com/ferryhill/kanbord/internal/config"
	pgdao "github.com/ferryhill/kanbord/internal/dao/postgres"
	"github.com/spf13/cobra"
)

var (
	flagSetOwner    string
	flagSetAssignee string
	flagSetReporter string
)

var setCmd = &cobra.Command{
	Use:   "set <user-email> <project-key>",
	Short: "Create or update a JIRA name mapping for a user",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if flagSetOwner == "" {
			return errors.New("--owner is required")
		}
		cfg, err := cfgpkg.Load()
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		db, err := pgdao.OpenApp(ctx, cfg)
		if err != nil {
			return err
		}
		defer db.Close()
		m := &pgdao.JiraUserMapping{
			UserEmail:        args[0],
			ProjectKey:       args[1],
			IntegrationOwner: flagSetOwner,
		}
		if flagSetAssignee != "" {
			m.AssigneeName = sql.NullString{Valid: true, String: flagSetAssignee}
		}
		if flagSetReporter != "" {
			m.ReporterName = sql.NullString{Valid: true, String: flagSetReporter}
		}
		if err := pgdao.UpsertJiraUserMapping(ctx, db, m); err != nil {
			return err
		}
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"id": m.ID, "user_email": m.UserEmail, "project_key": m.ProjectKey, "integration_owner": m.IntegrationOwner,
		})
	},
}

func init() {
	JiraCmd.AddCommand(setCmd)
	setCmd.Flags().StringVar(&flagSetOwner, "owner", "", "Integration owner email (required)")
	setCmd.Flags().StringVar(&flagSetAssignee, "assignee", "", "JIRA assignee display name")
	setCmd.Flags().StringVar(&flagSetReporter, "reporter", "", "JIRA reporter display name")
}
