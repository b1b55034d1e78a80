package task

import "github.com/spf13/cobra"

// TaskCmd is the root for `kbc task` commands.
var TaskCmd = &cobra.Command{
	Use:   "task",
	Short: "Manage kanban tasks",
}
