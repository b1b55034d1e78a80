package project

import (
	"context"
	"encoding/json"
	"os"
	"strconv"
	"time"

	cfgpkg "github.com/ferryhill/kanbord/internal/config"
	pgdao "github.com/ferryhill/kanbord/internal/dao/postgres"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var (
	flagListLimit  int
	flagListOffset int
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List projects",
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
		projects, err := pgdao.ListProjects(ctx, db, flagListLimit, flagListOffset)
		if err != nil {
			return err
		}

		table := tablewriter.NewWriter(os.Stderr)
		table.SetHeader([]string{"Name", "ID", "Updated"})
		out := make([]map[string]any, 0, len(projects))
		for _, p := range projects {
			updated := ""
			if p.Updated.Valid {
				updated = p.Updated.Time.Format(time.RFC3339)
			}
			table.Append([]string{p.Name, p.ID, updated})
			row := map[string]any{"id": p.ID, "name": p.Name}
			if p.Description.Valid {
				row["description"] = p.Description.String
			}
			out = append(out, row)
		}
		table.SetFooter([]string{"total", strconv.Itoa(len(projects)), ""})
		table.Render()
		return json.NewEncoder(os.Stdout).Encode(out)
	},
}

func init() {
	ProjectCmd.AddCommand(listCmd)
	listCmd.Flags().IntVar(&flagListLimit, "limit", 100, "Max rows")
	listCmd.Flags().IntVar(&flagListOffset, "offset", 0, "Rows to skip")
}
