package configcmd

import "github.com/spf13/cobra"

// ConfigCmd is the root for `kbc config` commands.
var ConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the global config.yaml",
}
