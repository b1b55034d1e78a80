package category

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

var (
	flagAssignOption    string
	flagAssignPrimary   bool
	flagAssignSortOrder int
)

var assignCmd = &cobra.Command{
	Use:   "assign <task-id> <category-id>",
	Short: "Link a task to a category",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := uuid.Parse(args[0]); err != nil {
			return fmt.Errorf("invalid task id: %w", err)
		}
		if _, err := uuid.Parse(args[1]); err != nil {
			return fmt.Errorf("invalid category id: %w", err)
		}
		if flagAssignOption != "" {
			if _, err := uuid.Parse(flagAssignOption); err != nil {
				return fmt.Errorf("invalid --option id: %w", err)
			}
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
		if err := pgdao.AssignTaskCategory(ctx, db, args[0], args[1], flagAssignOption, flagAssignPrimary, flagAssignSortOrder); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "assigned category %s to task %s\n", args[1], args[0])
		return nil
	},
}

var clearCmd = &cobra.Command{
	Use:   "clear <task-id> <category-id>",
	Short: "Remove a task's link to a category",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := uuid.Parse(args[0]); err != nil {
			return fmt.Errorf("invalid task id: %w", err)
		}
		if _, err := uuid.Parse(args[1]); err != nil {
			return fmt.Errorf("invalid category id: %w", err)
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
		n, err := pgdao.ClearTaskCategory(ctx, db, args[0], args[1])
		if err != nil {
			return err
		}
		if n == 0 {
			return fmt.Errorf("no mapping for task %s and category %s", args[0], args[1])
		}
		fmt.Fprintf(os.Stderr, "cleared category %s from task %s\n", args[1], args[0])
		return nil
	},
}

func init() {
	CategoryCmd.AddCommand(assignCmd)
	CategoryCmd.AddCommand(clearCmd)
	assignCmd.Flags().StringVar(&flagAssignOption, "option", "", "Option id within the category")
	assignCmd.Flags().BoolVar(&flagAssignPrimary, "primary", false, "Mark this as the task's primary category")
	assignCmd.Flags().IntVar(&flagAssignSortOrder, "sort-order", 0, "Display order among the task's categories")
}
