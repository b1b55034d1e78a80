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

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create tables, triggers and the stats view if missing",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := cfgpkg.Load()
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()
		db, err := pgdao.OpenAdmin(ctx, cfg)
		if err != nil {
			return err
		}
		defer db.Close()
		if err := pgdao.EnsureSchema(ctx, db); err != nil {
			return err
		}
		fmt.Fprintln(os.Stderr, "schema ensured")
		return nil
	},
}

func init() {
	DBCmd.AddCommand(initCmd)
}
