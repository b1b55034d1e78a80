package stats

import "github.com/spf13/cobra"

// StatsCmd is the root for `kbc stats` commands.
var StatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Refresh and read per-project kanban statistics",
}
