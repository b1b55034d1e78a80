package stats

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	cfgpkg "github.com/ferryhill/kanbord/internal/config"
	pgdao "github.com/ferryhill/kanbord/internal/dao/postgres"
	"github.com/spf13/cobra"
)

var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Refresh the project statistics view",
	Long: `Refresh the project_kanban_stats materialized view. The refresh is
attempted concurrently first so readers are not blocked; if that fails
(typically right after schema creation, before the first full refresh)
a blocking full refresh runs instead.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := cfgpkg.Load()
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()
		db, err := pgdao.OpenApp(ctx, cfg)
		if err != nil {
			return err
		}
		defer db.Close()
		outcome, err := pgdao.RefreshProjectStats(ctx, db)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "stats refreshed (%s)\n", outcome)
		return json.NewEncoder(os.Stdout).Encode(map[string]any{"status": outcome.String()})
	},
}

func init() {
	StatsCmd.AddCommand(refreshCmd)
}
