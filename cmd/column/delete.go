package column

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
	Short: "Deactivate a column (or remove it with --hard)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := uuid.Parse(args[0]); err != nil {
			return fmt.Errorf("invalid column id: %w", err)
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
			n, err = pgdao.DeleteColumn(ctx, db, args[0])
		} else {
			n, err = pgdao.DeactivateColumn(ctx, db, args[0])
		}
		if err != nil {
			return err
		}
		if n == 0 {
			return fmt.Errorf("column not found: %s", args[0])
		}
		if flagDeleteHard {
			fmt.Fprintf(os.Stderr, "deleted column %s\n", args[0])
		} else {
			fmt.Fprintf(os.Stderr, "deactivated column %s\n", args[0])
		}
		return nil
	},
}

func init() {
	ColumnCmd.AddCommand(deleteCmd)
	deleteCmd.Flags().BoolVar(&flagDeleteHard, "hard", false, "Remove the row instead of deactivating")
}
