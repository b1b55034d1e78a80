package task

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	cfgpkg "github.com/ferryhill/kanbord/internal/config"
	pgdao "github.com/ferryhill/kanbord/internal/dao/postgres"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Get a task by id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := uuid.Parse(args[0]); err != nil {
			return fmt.Errorf("invalid task id: %w", err)
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
		t, err := pgdao.GetTaskByID(ctx, db, args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "task id=%s title=%q status=%s priority=%s\n", t.ID, t.Title, t.Status, t.Priority)
		out := map[string]any{
			"id": t.ID, "project_id": t.ProjectID, "column_id": t.ColumnID,
			"title": t.Title, "status": t.Status, "priority": t.Priority, "sort_order": t.SortOrder,
		}
		if t.Description.Valid {
			out["description"] = t.Description.String
		}
		if t.DueDate.Valid {
			out["due_date"] = t.DueDate.Time.Format(time.RFC3339Nano)
			out["overdue"] = pgdao.IsOverdue(t.DueDate, t.Status, time.Now())
		}
		if t.Created.Valid {
			out["created"] = t.Created.Time.Format(time.RFC3339Nano)
		}
		if t.Updated.Valid {
			out["updated"] = t.Updated.Time.Format(time.RFC3339Nano)
		}
		cats, err := pgdao.ListTaskCategories(ctx, db, t.ID)
		if err != nil {
			return err
		}
		if len(cats) > 0 {
			rows := make([]map[string]any, 0, len(cats))
			for _, c := range cats {
				row := map[string]any{"category_id": c.CategoryID, "category": c.CategoryName, "is_primary": c.IsPrimary}
				if c.OptionID.Valid {
					row["option_id"] = c.OptionID.String
				}
				if c.OptionName.Valid {
					row["option"] = c.OptionName.String
				}
				rows = append(rows, row)
			}
			out["categories"] = rows
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	},
}

func init() {
	TaskCmd.AddCommand(getCmd)
}
