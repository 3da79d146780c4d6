package controller

import (
	"bytes"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/sweeplab/logsweep/internal/model"
)

var (
	cleanedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	noticeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

// SimpleUI implements UI with plain line output and a tablewriter summary.
// It is used whenever stdout is not an interactive terminal.
type SimpleUI struct {
	cmd    *cobra.Command
	dryRun bool
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(options ...StartOption) error {
	var cfg StartConfig
	for _, opt := range options {
		opt(&cfg)
	}

	s.dryRun = cfg.dryRun

	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close() {
}

// DisplayScanInfo prints how many candidate files the walk discovered.
func (s *SimpleUI) DisplayScanInfo(files int) {
	s.printf("Found %d files to process\n", files)

	if s.dryRun {
		s.printf("%s\n", noticeStyle.Render("Dry run: no files will be modified"))
	}
}

// DisplayFileResult prints one line per touched or failed file. Untouched
// files stay silent to keep large runs readable.
func (s *SimpleUI) DisplayFileResult(stats m.FileStats) {
	switch {
	case stats.Err != nil:
		s.printf("%s\n", errorStyle.Render(fmt.Sprintf("Error: %s: %v", stats.Path, stats.Err)))
	case stats.Changed && s.dryRun:
		s.printf("Would clean: %s (removed %d, replaced %d)\n", stats.Path, stats.Removed, stats.Replaced)
	case stats.Changed:
		s.printf("%s\n", cleanedStyle.Render(fmt.Sprintf("Cleaned: %s (removed %d, replaced %d)", stats.Path, stats.Removed, stats.Replaced)))
	}
}

// DisplaySummary renders the run totals as a table.
func (s *SimpleUI) DisplaySummary(run m.RunStats) error {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Metric", "Count"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})

	rows := [][]string{
		{"Files scanned", fmt.Sprintf("%d", run.FilesScanned)},
		{"Files changed", fmt.Sprintf("%d", run.FilesChanged)},
		{"Statements removed", fmt.Sprintf("%d", run.StatementsRemoved)},
		{"Statements replaced", fmt.Sprintf("%d", run.StatementsReplaced)},
		{"Logger imports added", fmt.Sprintf("%d", run.ImportsAdded)},
		{"Injections skipped", fmt.Sprintf("%d", run.InjectionsSkipped)},
		{"Errors", fmt.Sprintf("%d", run.Errors)},
	}

	for _, row := range rows {
		table.Append(row)
	}

	table.Render()
	s.printf("\n%s\n", tableBuffer.String())

	if s.dryRun {
		s.printf("%s\n", noticeStyle.Render("Dry run: nothing was written. Run without --dry-run to apply."))
	} else {
		s.printf("%s\n", cleanedStyle.Render("Cleanup complete"))
	}

	return nil
}

// DisplayList renders the scan-only listing of candidate files.
func (s *SimpleUI) DisplayList(counts []FileCount) error {
	if len(counts) == 0 {
		s.printf("No candidate files found\n")
		return nil
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Statements"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER})

	total := 0

	for _, fc := range counts {
		table.Append([]string{string(fc.Path), fmt.Sprintf("%d", fc.Statements)})
		total += fc.Statements
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(counts)),
		fmt.Sprintf("%d", total),
	})

	table.Render()
	s.printf("\n%s", tableBuffer.String())

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
