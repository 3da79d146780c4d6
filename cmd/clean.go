package cmd

import (
	"github.com/spf13/cobra"
)

// cleanCmd represents the clean command. It is the explicit spelling of
// the root command's default behavior.
var cleanCmd = newCleanCmd()

func newCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean [paths...]",
		Short: "Remove and rewrite debug console statements",
		Long: `Clean walks the given roots and transforms each candidate file:
emoji-tagged, marker-tagged, separator and verbose console.log calls are
removed; the remaining console.log calls become logger.debug calls with
a structured-logger import injected once per file. Files are rewritten
in place only when their content actually changed.`,
		RunE: func(_ *cobra.Command, args []string) error {
			return runClean(args)
		},
	}
	cmd.Flags().BoolVarP(&dryRunFlag, "dry-run", "n", false, "compute and report changes without writing any file")
	cmd.Flags().StringVar(&stripLevelsFlag, "strip-levels", "", "emoji removal policy: info (console.log only) or all")

	return cmd
}

func init() {
	rootCmd.AddCommand(cleanCmd)
}
