// Package cmd provides the root command and CLI setup for logsweep.
package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sweeplab/logsweep/internal/adapter"
	"github.com/sweeplab/logsweep/internal/config"
	"github.com/sweeplab/logsweep/internal/controller"
	"github.com/sweeplab/logsweep/internal/domain"
	m "github.com/sweeplab/logsweep/internal/model"
)

var fsAdapter adapter.SourceFSAdapter
var ui controller.UI
var workflow domain.Workflow
var log = logrus.New()

func init() {
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	fsAdapter = adapter.NewLocalSourceFSAdapter()
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	workflow = domain.NewWorkflow(fsAdapter, ui, log)
}

var verboseFlag bool
var configFileFlag string
var dryRunFlag bool
var stripLevelsFlag string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logsweep [paths...]",
		Short: "Strip debug console statements from a source tree",
		Long: `Logsweep walks a JavaScript/TypeScript source tree and cleans up debug
console output: emoji-tagged and marker-tagged console.log calls are
removed, remaining console.log calls are rewritten to logger.debug with
a one-time structured-logger import per file. console.warn and
console.error are preserved by default.

Paths may be directories (walked recursively) or single files; the
current directory is used when none are given.`,
		RunE: func(_ *cobra.Command, args []string) error {
			return runClean(args)
		},
	}
	cmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable debug logging")
	cmd.PersistentFlags().StringVarP(&configFileFlag, "config", "c", "", "explicit rule config file (default: .logsweep.yaml in the target root)")
	cmd.Flags().BoolVarP(&dryRunFlag, "dry-run", "n", false, "compute and report changes without writing any file")
	cmd.Flags().StringVar(&stripLevelsFlag, "strip-levels", "", "emoji removal policy: info (console.log only) or all")

	return cmd
}

func runClean(args []string) error {
	applyVerbosity()

	paths := parsePaths(args)

	rules, err := loadRules(paths)
	if err != nil {
		return err
	}

	return workflow.Clean(domain.CleanArgs{
		Paths:  paths,
		Rules:  rules,
		DryRun: dryRunFlag,
	})
}

func applyVerbosity() {
	if verboseFlag {
		log.SetLevel(logrus.DebugLevel)
	}
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}

// loadRules resolves the rule set for this run. Config discovery is
// rooted at the first directory argument, falling back to the current
// directory.
func loadRules(paths []m.Path) (config.Rules, error) {
	root := "."

	if len(paths) > 0 {
		if info, err := os.Stat(string(paths[0])); err == nil && info.IsDir() {
			root = string(paths[0])
		}
	}

	rules, err := config.Load(root, configFileFlag)
	if err != nil {
		return config.Rules{}, err
	}

	if stripLevelsFlag != "" {
		rules.StripLevels = stripLevelsFlag
		if err := rules.Validate(); err != nil {
			return config.Rules{}, err
		}
	}

	return rules, nil
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
