package server

import (
	"github.com/spf13/cobra"
)

// ServerCmd is the root for `kbc server` commands.
var ServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Administer the local board HTTP server",
}

func init() {
	ServerCmd.AddCommand(startCmd)
	ServerCmd.AddCommand(stopCmd)
	ServerCmd.AddCommand(statusCmd)
}
