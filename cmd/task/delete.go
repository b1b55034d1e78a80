package task

import (
	"context"
	"fmt"
	"os"
	"time"

	cfgpkg "github.com/ferryhill/kanbord/internal/config"
	pgdao "github.com/ferryhill/kanbord/internal/dao/postgres"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var flagDeleteHard bool

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Archive a task, or remove it with --hard",
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
		var n int64
		if flagDeleteHard {
			n, err = pgdao.DeleteTask(ctx, db, args[0])
		} else {
			n, err = pgdao.ArchiveTask(ctx, db, args[0])
		}
		if err != nil {
			return err
		}
		if n == 0 {
			return fmt.Errorf("task not found: %s", args[0])
		}
		if flagDeleteHard {
			fmt.Fprintf(os.Stderr, "deleted task %s\n", args[0])
		} else {
			fmt.Fprintf(os.Stderr, "archived task %s\n", args[0])
		}
		return nil
	},
}

func init() {
	TaskCmd.AddCommand(deleteCmd)
	deleteCmd.Flags().BoolVar(&flagDeleteHard, "hard", false, "Remove the row instead of archiving")
}
