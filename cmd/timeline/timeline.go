package timeline

import "github.com/spf13/cobra"

// TimelineCmd is the root for `kbc timeline` commands.
var TimelineCmd = &cobra.Command{
	Use:   "timeline",
	Short: "Inspect a task's audit history",
}
