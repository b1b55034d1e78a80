package category

import "github.com/spf13/cobra"

// CategoryCmd is the root for `kbc category` commands.
var CategoryCmd = &cobra.Command{
	Use:   "category",
	Short: "Manage task categories and their options",
}
