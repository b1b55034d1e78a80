package timeline

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

var (
	flagAddActor   string
	flagAddDetails string
)

var addCmd = &cobra.Command{
	Use:   "add <task-id> <action>",
	Short: "Append a manual audit entry to a task",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := uuid.Parse(args[0]); err != nil {
			return fmt.Errorf("invalid task id: %w", err)
		}
		var details map[string]any
		if flagAddDetails != "" {
			if err := json.Unmarshal([]byte(flagAddDetails), &details); err != nil {
				return fmt.Errorf("invalid --details (want a JSON object): %w", err)
			}
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
		e := &pgdao.TimelineEntry{
			TaskID:     args[0],
			Action:     args[1],
			Details:    details,
			ActorEmail: flagAddActor,
		}
		if err := pgdao.AppendTimeline(ctx, db, e); err != nil {
			return err
		}
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"id": e.ID, "task_id": e.TaskID, "action": e.Action, "created": e.Created.Format(time.RFC3339),
		})
	},
}

func init() {
	TimelineCmd.AddCommand(addCmd)
	addCmd.Flags().StringVar(&flagAddActor, "actor", "", "Actor email recorded on the entry")
	addCmd.Flags().StringVar(&flagAddDetails, "details", "", "JSON object stored with the entry")
}
