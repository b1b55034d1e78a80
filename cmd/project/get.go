package project

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

var getCmd = &cobra.Command{
	Use:   "get <name>",
	Short: "Get a project by name",
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
		p, err := pgdao.GetProjectByName(ctx, db, args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "project id=%s name=%q\n", p.ID, p.Name)
		out := map[string]any{"id": p.ID, "name": p.Name}
		if p.Description.Valid {
			out["description"] = p.Description.String
		}
		if p.Created.Valid {
			out["created"] = p.Created.Time.Format(time.RFC3339Nano)
		}
		if p.Updated.Valid {
			out["updated"] = p.Updated.Time.Format(time.RFC3339Nano)
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	},
}

func init() {
	ProjectCmd.AddCommand(getCmd)
}
