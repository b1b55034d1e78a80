package jira

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	cfgpkg "github.com/ferryhill/kanbord/internal/config"
	pgdao "github.com/ferryhill/kanbord/internal/dao/postgres"
	"github.com/spf13/cobra"
)

var flagDeleteOwner string

var deleteCmd = &cobra.Command{
	Use:   "delete <user-email> <project-key>",
	Short: "Remove a JIRA name mapping",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if flagDeleteOwner == "" {
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
		n, err := pgdao.DeleteJiraUserMapping(ctx, db, args[0], args[1], flagDeleteOwner)
		if err != nil {
			return err
		}
		if n == 0 {
			return fmt.Errorf("no mapping for %s in %s", args[0], args[1])
		}
		fmt.Fprintf(os.Stderr, "deleted mapping for %s in %s\n", args[0], args[1])
		return nil
	},
}

func init() {
	JiraCmd.AddCommand(deleteCmd)
	deleteCmd.Flags().StringVar(&flagDeleteOwner, "owner", "", "Integration owner email (required)")
}
