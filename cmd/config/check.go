package configcmd

import (
	"context"
	"fmt"
	"os"
	"time"

	cfgpkg "github.com/ferryhill/kanbord/internal/config"
	pgdao "github.com/ferryhill/kanbord/internal/dao/postgres"
	"github.com/spf13/cobra"
)

var flagVerify bool

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check configuration and report issues",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := cfgpkg.Load()
		if err != nil {
			return err
		}
		issues := 0
		if cfg.Postgres.Host == "" {
			fmt.Fprintln(os.Stderr, "issue: postgres host is empty")
			issues++
		}
		if cfg.Postgres.DBName == "" {
			fmt.Fprintln(os.Stderr, "issue: postgres dbname is empty")
			issues++
		}
		if cfg.Postgres.App.User == "" {
			fmt.Fprintln(os.Stderr, "issue: postgres app user is empty")
			issues++
		}
		if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
			fmt.Fprintf(os.Stderr, "issue: server port out of range: %d\n", cfg.Server.Port)
			issues++
		}
		if flagVerify {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			db, err := pgdao.OpenApp(ctx, cfg)
			if err != nil {
				fmt.Fprintf(os.Stderr, "issue: postgres connection failed: %v\n", err)
				issues++
			} else {
				db.Close()
				fmt.Fprintln(os.Stderr, "postgres: connection ok")
			}
		}
		if issues > 0 {
			return fmt.Errorf("%d issue(s) found", issues)
		}
		fmt.Fprintln(os.Stderr, "config: ok")
		return nil
	},
}

func init() {
	ConfigCmd.AddCommand(checkCmd)
	checkCmd.Flags().BoolVar(&flagVerify, "verify", false, "Attempt a live Postgres connection")
}
