package column

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"strconv"
	"time"

	cfgpkg "github.com/ferryhill/kanbord/internal/config"
	pgdao "github.com/ferryhill/kanbord/internal/dao/postgres"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var (
	flagListProject string
	flagListAll     bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List a project's columns",
	RunE: func(cmd *cobra.Command, args []string) error {
		if flagListProject == "" {
			return errors.New("--project is required")
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
		p, err := pgdao.GetProjectByName(ctx, db, flagListProject)
		if err != nil {
			return err
		}
		cols, err := pgdao.ListColumns(ctx, db, p.ID, flagListAll)
		if err != nil {
			return err
		}

		table := tablewriter.NewWriter(os.Stderr)
		table.SetHeader([]string{"Position", "Name", "Active", "ID"})
		out := make([]map[string]any, 0, len(cols))
		for _, c := range cols {
			table.Append([]string{strconv.Itoa(c.Position), c.Name, strconv.FormatBool(c.IsActive), c.ID})
			out = append(out, map[string]any{
				"id": c.ID, "name": c.Name, "position": c.Position, "is_active": c.IsActive,
			})
		}
		table.Render()
		return json.NewEncoder(os.Stdout).Encode(out)
	},
}

func init() {
	ColumnCmd.AddCommand(listCmd)
	listCmd.Flags().StringVar(&flagListProject, "project", "", "Project name (required)")
	listCmd.Flags().BoolVar(&flagListAll, "all", false, "Include inactive columns")
}
