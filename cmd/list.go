package cmd

import (
	"github.com/spf13/cobra"

	"github.com/sweeplab/logsweep/internal/domain"
)

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [paths...]",
		Short: "List candidate files and loggable statement counts",
		Long: `List scans the given roots and prints each candidate file together
with the number of console statements the cleanup would remove or
rewrite. Nothing is modified.`,
		RunE: func(_ *cobra.Command, args []string) error {
			applyVerbosity()

			paths := parsePaths(args)

			rules, err := loadRules(paths)
			if err != nil {
				return err
			}

			return workflow.List(domain.ListArgs{
				Paths: paths,
				Rules: rules,
			})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
