package db

import "github.com/spf13/cobra"

// DBCmd is the root for `kbc db` commands.
var DBCmd = &cobra.Command{
	Use:   "db",
	Short: "Database schema and diagnostics",
}
