package db

import (
	"context"
	"fmt"
	"os"
	"time"

	cfgpkg "github.com/ferryhill/kanbord/internal/config"
	pgdao "github.com/ferryhill/kanbord/internal/dao/postgres"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Report connectivity and schema presence",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := cfgpkg.Load()
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		db, err := pgdao.OpenApp(ctx, cfg)
		if err != nil {
			return fmt.Errorf("connect: %w", err)
		}
		defer db.Close()

		var version string
		if err := db.QueryRow(ctx, `SELECT version()`).Scan(&version); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "connected: %s\n", version)

		var hasTasks, hasView bool
		if err := db.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM information_schema.tables WHERE table_schema='public' AND table_name='kanban_tasks')`,
		).Scan(&hasTasks); err != nil {
			return err
		}
		if err := db.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM pg_matviews WHERE schemaname='public' AND matviewname='project_kanban_stats')`,
		).Scan(&hasView); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "kanban_tasks table: %v\n", hasTasks)
		fmt.Fprintf(os.Stderr, "project_kanban_stats view: %v\n", hasView)
		if !hasTasks || !hasView {
			fmt.Fprintln(os.Stderr, "run `kbc db init` to create missing objects")
		}
		return nil
	},
}

func init() {
	DBCmd.AddCommand(statusCmd)
}
