package task

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"strconv"
	"time"

	cfgpkg "github.com/ferryhill/kanbord/internal/config"
	pgdao "github.com/ferryhill/kanbord/internal/dao/postgres"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var (
	flagListProject string
	flagListColumn  string
	flagListStatus  string
	flagListLimit   int
	flagListOffset  int
	flagListBoard   bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List a project's tasks",
	RunE: func(cmd *cobra.Command, args []string) error {
		if flagListProject == "" {
			return errors.New("--project is required")
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
		p, err := pgdao.GetProjectByName(ctx, db, flagListProject)
		if err != nil {
			return err
		}
		if flagListBoard {
			return renderBoard(ctx, db, p.ID)
		}
		tasks, err := pgdao.ListTasks(ctx, db, p.ID, flagListColumn, flagListStatus, flagListLimit, flagListOffset)
		if err != nil {
			return err
		}

		now := time.Now()
		table := tablewriter.NewWriter(os.Stderr)
		table.SetHeader([]string{"Title", "Status", "Priority", "Due", "Overdue", "ID"})
		out := make([]map[string]any, 0, len(tasks))
		for _, t := range tasks {
			due := ""
			if t.DueDate.Valid {
				due = t.DueDate.Time.Format("2006-01-02")
			}
			overdue := pgdao.IsOverdue(t.DueDate, t.Status, now)
			table.Append([]string{t.Title, t.Status, t.Priority, due, strconv.FormatBool(overdue), t.ID})
			row := map[string]any{
				"id": t.ID, "title": t.Title, "column_id": t.ColumnID,
				"status": t.Status, "priority": t.Priority, "sort_order": t.SortOrder, "overdue": overdue,
			}
			if t.DueDate.Valid {
				row["due_date"] = t.DueDate.Time.Format(time.RFC3339)
			}
			out = append(out, row)
		}
		table.Render()
		return json.NewEncoder(os.Stdout).Encode(out)
	},
}

// renderBoard prints the active columns with their active tasks, grouped the
// way the board endpoint serves them.
func renderBoard(ctx context.Context, db *pgxpool.Pool, projectID string) error {
	cols, err := pgdao.GetBoard(ctx, db, projectID)
	if err != nil {
		return err
	}
	now := time.Now()
	table := tablewriter.NewWriter(os.Stderr)
	table.SetHeader([]string{"Column", "Title", "Priority", "Due", "Overdue", "ID"})
	out := make([]map[string]any, 0, len(cols))
	for _, c := range cols {
		tasks := make([]map[string]any, 0, len(c.Tasks))
		for _, t := range c.Tasks {
			due := ""
			if t.DueDate.Valid {
				due = t.DueDate.Time.Format("2006-01-02")
			}
			overdue := pgdao.IsOverdue(t.DueDate, t.Status, now)
			table.Append([]string{c.Name, t.Title, t.Priority, due, strconv.FormatBool(overdue), t.ID})
			row := map[string]any{
				"id": t.ID, "title": t.Title, "priority": t.Priority, "sort_order": t.SortOrder, "overdue": overdue,
			}
			if t.DueDate.Valid {
				row["due_date"] = t.DueDate.Time.Format(time.RFC3339)
			}
			tasks = append(tasks, row)
		}
		out = append(out, map[string]any{
			"id": c.ID, "name": c.Name, "position": c.Position, "tasks": tasks,
		})
	}
	table.Render()
	return json.NewEncoder(os.Stdout).Encode(out)
}

func init() {
	TaskCmd.AddCommand(listCmd)
	listCmd.Flags().StringVar(&flagListProject, "project", "", "Project name (required)")
	listCmd.Flags().StringVar(&flagListColumn, "column", "", "Narrow to one column id")
	listCmd.Flags().StringVar(&flagListStatus, "status", "", "Narrow to one status")
	listCmd.Flags().IntVar(&flagListLimit, "limit", 200, "Max rows")
	listCmd.Flags().IntVar(&flagListOffset, "offset", 0, "Rows to skip")
	listCmd.Flags().BoolVar(&flagListBoard, "board", false, "Group active tasks by column")
}
