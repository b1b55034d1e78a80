package column

import "github.com/spf13/cobra"

// ColumnCmd is the root for `kbc column` commands.
var ColumnCmd = &cobra.Command{
	Use:   "column",
	Short: "Manage board columns",
}
