package category

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
	Short: "List a project's categories",
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
		cats, err := pgdao.ListCategories(ctx, db, p.ID, flagListAll)
		if err != nil {
			return err
		}

		table := tablewriter.NewWriter(os.Stderr)
		table.SetHeader([]string{"Name", "ID", "Active"})
		out := make([]map[string]any, 0, len(cats))
		for _, c := range cats {
			table.Append([]string{c.Name, c.ID, strconv.FormatBool(c.IsActive)})
			out = append(out, map[string]any{"id": c.ID, "name": c.Name, "is_active": c.IsActive})
		}
		table.SetFooter([]string{"total", strconv.Itoa(len(cats)), ""})
		table.Render()
		return json.NewEncoder(os.Stdout).Encode(out)
	},
}

func init() {
	CategoryCmd.AddCommand(listCmd)
	listCmd.Flags().StringVar(&flagListProject, "project", "", "Project name (required)")
	listCmd.Flags().BoolVar(&flagListAll, "all", false, "Include inactive categories")
}
