package project

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"os"
	"strings"
	"time"

	cfgpkg "github.com/ferryhill/kanbord/internal/config"
	pgdao "github.com/ferryhill/kanbord/internal/dao/postgres"
	"github.com/spf13/cobra"
)

var flagSetDescription string

var setCmd = &cobra.Command{
	Use:   "set <name>",
	Short: "Create or update a project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := strings.TrimSpace(args[0])
		if name == "" {
			return errors.New("name must not be empty")
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
		p := &pgdao.Project{Name: name}
		if flagSetDescription != "" {
			p.Description = sql.NullString{Valid: true, String: flagSetDescription}
		}
		if err := pgdao.UpsertProject(ctx, db, p); err != nil {
			return err
		}
		enc := json.NewEncoder(os.Stdout)
		return enc.Encode(map[string]any{"id": p.ID, "name": p.Name})
	},
}

func init() {
	ProjectCmd.AddCommand(setCmd)
	setCmd.Flags().StringVar(&flagSetDescription, "description", "", "Project description")
}
