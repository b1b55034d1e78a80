package stats

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

var flagShowProject string

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show per-project statistics as of the last refresh",
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

		var rows []pgdao.ProjectStats
		if flagShowProject != "" {
			p, err := pgdao.GetProjectByName(ctx, db, flagShowProject)
			if err != nil {
				return err
			}
			s, err := pgdao.GetProjectStats(ctx, db, p.ID)
			if err != nil {
				return err
			}
			rows = []pgdao.ProjectStats{*s}
		} else {
			rows, err = pgdao.ListProjectStats(ctx, db)
			if err != nil {
				return err
			}
		}

		table := tablewriter.NewWriter(os.Stderr)
		table.SetHeader([]string{"Project", "Total", "Active", "Urgent", "Overdue", "Columns", "Categories", "Last Update"})
		for _, s := range rows {
			last := ""
			if s.LastTaskUpdate != nil {
				last = s.LastTaskUpdate.Format(time.RFC3339)
			}
			table.Append([]string{
				s.ProjectName,
				strconv.FormatInt(s.TotalTasks, 10),
				strconv.FormatInt(s.ActiveTasks, 10),
				strconv.FormatInt(s.UrgentTasks, 10),
				strconv.FormatInt(s.OverdueTasks, 10),
				strconv.FormatInt(s.ActiveColumns, 10),
				strconv.FormatInt(s.ActiveCategories, 10),
				last,
			})
		}
		table.Render()
		if rows == nil {
			rows = []pgdao.ProjectStats{}
		}
		return json.NewEncoder(os.Stdout).Encode(rows)
	},
}

func init() {
	StatsCmd.AddCommand(showCmd)
	showCmd.Flags().StringVar(&flagShowProject, "project", "", "Limit to one project by name")
}
