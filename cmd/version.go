package cmd

import (
	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags.
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the logsweep version",
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Println("logsweep " + version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
