package project

import (
	"context"
	"fmt"
	"os"
	"time"

	cfgpkg "github.com/ferryhill/kanbord/internal/config"
	pgdao "github.com/ferryhill/kanbord/internal/dao/postgres"
	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a project and everything under it",
	Args:  cobra.ExactArgs(1),
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
		n, err := pgdao.DeleteProject(ctx, db, args[0])
		if err != nil {
			return err
		}
		if n == 0 {
			return fmt.Errorf("project not found: %s", args[0])
		}
		fmt.Fprintf(os.Stderr, "deleted project %q\n", args[0])
		return nil
	},
}

func init() {
	ProjectCmd.AddCommand(deleteCmd)
}
