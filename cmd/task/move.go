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

var (
	flagMoveColumn    string
	flagMoveSortOrder int
	flagMoveActor     string
)

var moveCmd = &cobra.Command{
	Use:   "move <id>",
	Short: "Move a task to another column and record a timeline entry",
	Long: `Atomically relocates an active task to an active column and appends one
"moved" entry to its timeline. The result is reported through the JSON body:
check the success flag, not the exit code, to tell the failure kind.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := uuid.Parse(args[0]); err != nil {
			return fmt.Errorf("invalid task id: %w", err)
		}
		if _, err := uuid.Parse(flagMoveColumn); err != nil {
			return fmt.Errorf("invalid --to column id: %w", err)
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
		res := pgdao.MoveTaskSafe(ctx, db, args[0], flagMoveColumn, flagMoveSortOrder, flagMoveActor)
		if res.Success {
			fmt.Fprintf(os.Stderr, "%s\n", res.Message)
		} else {
			fmt.Fprintf(os.Stderr, "move failed (%s): %s\n", res.Error, res.Message)
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	},
}

func init() {
	TaskCmd.AddCommand(moveCmd)
	moveCmd.Flags().StringVar(&flagMoveColumn, "to", "", "Destination column id (required)")
	moveCmd.Flags().IntVar(&flagMoveSortOrder, "sort-order", 0, "Position within the destination column")
	moveCmd.Flags().StringVar(&flagMoveActor, "actor", "", "Acting user email (defaults to system)")
	_ = moveCmd.MarkFlagRequired("to")
}
