package column

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"strings"
	"time"

	cfgpkg "github.com/ferryhill/kanbord/internal/config"
	pgdao "github.com/ferryhill/kanbord/internal/dao/postgres"
	"github.com/spf13/cobra"
)

var (
	flagSetProject  string
	flagSetPosition int
	flagSetInactive bool
)

var setCmd = &cobra.Command{
	Use:   "set <name>",
	Short: "Create or update a column in a project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := strings.TrimSpace(args[0])
		if name == "" {
			return errors.New("name must not be empty")
		}
		if flagSetProject == "" {
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
		p, err := pgdao.GetProjectByName(ctx, db, flagSetProject)
		if err != nil {
			return err
		}
		c := &pgdao.Column{
			ProjectID: p.ID,
			Name:      name,
			Position:  flagSetPosition,
			IsActive:  !flagSetInactive,
		}
		if err := pgdao.UpsertColumn(ctx, db, c); err != nil {
			return err
		}
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"id": c.ID, "project_id": c.ProjectID, "name": c.Name, "position": c.Position, "is_active": c.IsActive,
		})
	},
}

func init() {
	ColumnCmd.AddCommand(setCmd)
	setCmd.Flags().StringVar(&flagSetProject, "project", "", "Project name (required)")
	setCmd.Flags().IntVar(&flagSetPosition, "position", 0, "Column position on the board")
	setCmd.Flags().BoolVar(&flagSetInactive, "inactive", false, "Mark the column inactive")
}
