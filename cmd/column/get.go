package column

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

var getCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Get a column by id",
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
		c, err := pgdao.GetColumnByID(ctx, db, args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "column id=%s name=%q project=%s\n", c.ID, c.Name, c.ProjectID)
		out := map[string]any{
			"id": c.ID, "project_id": c.ProjectID, "name": c.Name, "position": c.Position, "is_active": c.IsActive,
		}
		if c.Created.Valid {
			out["created"] = c.Created.Time.Format(time.RFC3339Nano)
		}
		if c.Updated.Valid {
			out["updated"] = c.Updated.Time.Format(time.RFC3339Nano)
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	},
}

func init() {
	ColumnCmd.AddCommand(getCmd)
}
