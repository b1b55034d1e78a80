package task

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	cfgpkg "github.com/ferryhill/kanbord/internal/config"
	pgdao "github.com/ferryhill/kanbord/internal/dao/postgres"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	flagSetProject     string
	flagSetColumn      string
	flagSetDescription string
	flagSetPriority    string
	flagSetDue         string
	flagSetSortOrder   int
)

var setCmd = &cobra.Command{
	Use:   "set <title>",
	Short: "Create a task in a column",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		title := strings.TrimSpace(args[0])
		if title == "" {
			return errors.New("title must not be empty")
		}
		if flagSetProject == "" || flagSetColumn == "" {
			return errors.New("--project and --column are required")
		}
		if _, err := uuid.Parse(flagSetColumn); err != nil {
			return fmt.Errorf("invalid column id: %w", err)
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
		p, err := pgdao.GetProjectByName(ctx, db, flagSetProject)
		if err != nil {
			return err
		}
		t := &pgdao.Task{
			ProjectID: p.ID,
			ColumnID:  flagSetColumn,
			Title:     title,
			Priority:  flagSetPriority,
			SortOrder: flagSetSortOrder,
		}
		if flagSetDescription != "" {
			t.Description = sql.NullString{Valid: true, String: flagSetDescription}
		}
		if flagSetDue != "" {
			due, err := time.Parse(time.RFC3339, flagSetDue)
			if err != nil {
				return fmt.Errorf("invalid --due (want RFC3339): %w", err)
			}
			t.DueDate = sql.NullTime{Valid: true, Time: due}
		}
		if err := pgdao.CreateTask(ctx, db, t); err != nil {
			return err
		}
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"id": t.ID, "title": t.Title, "column_id": t.ColumnID, "status": t.Status, "priority": t.Priority,
		})
	},
}

func init() {
	TaskCmd.AddCommand(setCmd)
	setCmd.Flags().StringVar(&flagSetProject, "project", "", "Project name (required)")
	setCmd.Flags().StringVar(&flagSetColumn, "column", "", "Column id (required)")
	setCmd.Flags().StringVar(&flagSetDescription, "description", "", "Task description")
	setCmd.Flags().StringVar(&flagSetPriority, "priority", "", "Priority: low|medium|high|urgent")
	setCmd.Flags().StringVar(&flagSetDue, "due", "", "Due date, RFC3339")
	setCmd.Flags().IntVar(&flagSetSortOrder, "sort-order", 0, "Position within the column")
}
