package cmd

import (
	catcmd "github.com/ferryhill/kanbord/cmd/category"
	colcmd "github.com/ferryhill/kanbord/cmd/column"
	configcmd "github.com/ferryhill/kanbord/cmd/config"
	dbcmd "github.com/ferryhill/kanbord/cmd/db"
	jiracmd "github.com/ferryhill/kanbord/cmd/jira"
	prjcmd "github.com/ferryhill/kanbord/cmd/project"
	srvcmd "github.com/ferryhill/kanbord/cmd/server"
	statscmd "github.com/ferryhill/kanbord/cmd/stats"
	taskcmd "github.com/ferryhill/kanbord/cmd/task"
	tlcmd "github.com/ferryhill/kanbord/cmd/timeline"
	vaultcmd "github.com/ferryhill/kanbord/cmd/vault"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "kbc",
	Short: "Kanban board toolkit backed by Postgres",
	Long:  "kbc manages kanban projects, columns, tasks, categories and the per-project stats view, over a Postgres database.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(configcmd.ConfigCmd)
	rootCmd.AddCommand(dbcmd.DBCmd)
	rootCmd.AddCommand(prjcmd.ProjectCmd)
	rootCmd.AddCommand(colcmd.ColumnCmd)
	rootCmd.AddCommand(taskcmd.TaskCmd)
	rootCmd.AddCommand(catcmd.CategoryCmd)
	rootCmd.AddCommand(tlcmd.TimelineCmd)
	rootCmd.AddCommand(statscmd.StatsCmd)
	rootCmd.AddCommand(jiracmd.JiraCmd)
	rootCmd.AddCommand(vaultcmd.VaultCmd)
	rootCmd.AddCommand(srvcmd.ServerCmd)
}
