package jira

import (
	"context"
	"encoding/json"
	"os"
	"strconv"
	"time"

	cfgpkg "github.com/ferryhill/kanbord/internal/config"
	pgdao "github.com/ferryhill/kanbord/internal/dao/postgres"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var (
	flagListProjectKey string
	flagListLimit      int
	flagListOffset     int
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List JIRA user mappings",
	RunE: func(cmd *cobra.Command, args []string) error {
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
		mappings, err := pgdao.ListJiraUserMappings(ctx, db, flagListProjectKey, flagListLimit, flagListOffset)
		if err != nil {
			return err
		}

		table := tablewriter.NewWriter(os.Stderr)
		table.SetHeader([]string{"User", "Project Key", "Owner", "Assignee", "Reporter"})
		out := make([]map[string]any, 0, len(mappings))
		for _, m := range mappings {
			assignee, reporter := "", ""
			if m.AssigneeName.Valid {
				assignee = m.AssigneeName.String
			}
			if m.ReporterName.Valid {
				reporter = m.ReporterName.String
			}
			table.Append([]string{m.UserEmail, m.ProjectKey, m.IntegrationOwner, assignee, reporter})
			row := map[string]any{
				"id":                m.ID,
				"user_email":        m.UserEmail,
				"project_key":       m.ProjectKey,
				"integration_owner": m.IntegrationOwner,
			}
			if assignee != "" {
				row["jira_assignee_name"] = assignee
			}
			if reporter != "" {
				row["jira_reporter_name"] = reporter
			}
			out = append(out, row)
		}
		table.SetFooter([]string{"total", strconv.Itoa(len(mappings)), "", "", ""})
		table.Render()
		return json.NewEncoder(os.Stdout).Encode(out)
	},
}

func init() {
	JiraCmd.AddCommand(listCmd)
	listCmd.Flags().StringVar(&flagListProjectKey, "project-key", "", "Limit to one JIRA project key")
	listCmd.Flags().IntVar(&flagListLimit, "limit", 100, "Max rows")
	listCmd.Flags().IntVar(&flagListOffset, "offset", 0, "Rows to skip")
}
