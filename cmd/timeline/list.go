package timeline

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	cfgpkg "github.com/ferryhill/kanbord/internal/config"
	pgdao "github.com/ferryhill/kanbord/internal/dao/postgres"
	"github.com/google/uuid"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var (
	flagListLimit  int
	flagListOffset int
)

var listCmd = &cobra.Command{
	Use:   "list <task-id>",
	Short: "List a task's timeline entries, newest first",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := uuid.Parse(args[0]); err != nil {
			return fmt.Errorf("invalid task id: %w", err)
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
		entries, err := pgdao.ListTimeline(ctx, db, args[0], flagListLimit, flagListOffset)
		if err != nil {
			return err
		}

		table := tablewriter.NewWriter(os.Stderr)
		table.SetHeader([]string{"Created", "Action", "Actor", "ID"})
		out := make([]map[string]any, 0, len(entries))
		for _, e := range entries {
			table.Append([]string{e.Created.Format(time.RFC3339), e.Action, e.ActorEmail, e.ID})
			row := map[string]any{
				"id":          e.ID,
				"task_id":     e.TaskID,
				"action":      e.Action,
				"actor_email": e.ActorEmail,
				"created":     e.Created.Format(time.RFC3339),
			}
			if len(e.Details) > 0 {
				row["details"] = e.Details
			}
			out = append(out, row)
		}
		table.SetFooter([]string{"total", strconv.Itoa(len(entries)), "", ""})
		table.Render()
		return json.NewEncoder(os.Stdout).Encode(out)
	},
}

func init() {
	TimelineCmd.AddCommand(listCmd)
	listCmd.Flags().IntVar(&flagListLimit, "limit", 100, "Max rows")
	listCmd.Flags().IntVar(&flagListOffset, "offset", 0, "Rows to skip")
}
