package task

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	cfgpkg "github.com/ferryhill/kanbord/internal/config"
	pgdao "github.com/ferryhill/kanbord/internal/dao/postgres"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	flagUpdateTitle       string
	flagUpdateDescription string
	flagUpdatePriority    string
	flagUpdateStatus      string
	flagUpdateDue         string
	flagUpdateClearDue    bool
)

var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update task fields",
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
		var due sql.NullTime
		if flagUpdateDue != "" {
			d, err := time.Parse(time.RFC3339, flagUpdateDue)
			if err != nil {
				return fmt.Errorf("invalid --due (want RFC3339): %w", err)
			}
			due = sql.NullTime{Valid: true, Time: d}
		}
		n, err := pgdao.UpdateTaskFields(ctx, db, args[0],
			flagUpdateTitle, flagUpdateDescription, flagUpdatePriority, flagUpdateStatus, due, flagUpdateClearDue)
		if err != nil {
			return err
		}
		if n == 0 {
			return fmt.Errorf("task not found: %s", args[0])
		}
		fmt.Fprintf(os.Stderr, "updated task %s\n", args[0])
		return nil
	},
}

func init() {
	TaskCmd.AddCommand(updateCmd)
	updateCmd.Flags().StringVar(&flagUpdateTitle, "title", "", "New title")
	updateCmd.Flags().StringVar(&flagUpdateDescription, "description", "", "New description")
	updateCmd.Flags().StringVar(&flagUpdatePriority, "priority", "", "New priority")
	updateCmd.Flags().StringVar(&flagUpdateStatus, "status", "", "New status")
	updateCmd.Flags().StringVar(&flagUpdateDue, "due", "", "New due date, RFC3339")
	updateCmd.Flags().BoolVar(&flagUpdateClearDue, "clear-due", false, "Remove the due date")
}
