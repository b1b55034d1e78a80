package jira

import "github.com/spf13/cobra"

// JiraCmd is the root for `kbc jira` commands.
var JiraCmd = &cobra.Command{
	Use:   "jira",
	Short: "Manage JIRA user name mappings",
}
