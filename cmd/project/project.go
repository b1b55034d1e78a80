package project

import "github.com/spf13/cobra"

// ProjectCmd is the root for `kbc project` commands.
var ProjectCmd = &cobra.Command{
	Use:   "project",
	Short: "Manage kanban projects",
}
