package controller

import (
	"bytes"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/olekukonko/tablewriter"

	m "github.com/sweeplab/logsweep/internal/model"
)

// TUI implements UI with a Bubble Tea live progress display. It forwards
// workflow events to the running program; the model does the rendering.
type TUI struct {
	output  io.Writer
	program *tea.Program
	done    chan error
	stopped bool
}

// NewTUI creates a new TUI writing to output.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// Start launches the Bubble Tea program in the background.
func (t *TUI) Start(options ...StartOption) error {
	var cfg StartConfig
	for _, opt := range options {
		opt(&cfg)
	}

	t.program = tea.NewProgram(newSweepModel(cfg.dryRun), tea.WithOutput(t.output))
	t.done = make(chan error, 1)

	go func() {
		_, err := t.program.Run()
		t.done <- err
	}()

	return nil
}

// Close stops the program if it is still running.
func (t *TUI) Close() {
	if t.program == nil || t.stopped {
		return
	}

	t.program.Quit()
	<-t.done
	t.stopped = true
}

// DisplayScanInfo forwards the discovered file count to the model.
func (t *TUI) DisplayScanInfo(files int) {
	t.program.Send(scanInfoMsg{files: files})
}

// DisplayFileResult forwards one file's outcome to the model.
func (t *TUI) DisplayFileResult(stats m.FileStats) {
	t.program.Send(fileResultMsg{stats: stats})
}

// DisplaySummary sends the final totals and waits for the program to
// finish so the summary view stays on screen.
func (t *TUI) DisplaySummary(run m.RunStats) error {
	t.program.Send(summaryMsg{run: run})

	err := <-t.done
	t.stopped = true

	return err
}

// DisplayList renders the scan-only listing. Listing is a plain table
// even on a TTY; there is no progress worth animating.
func (t *TUI) DisplayList(counts []FileCount) error {
	t.Close()

	if len(counts) == 0 {
		_, err := fmt.Fprintln(t.output, "No candidate files found")
		return err
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

	_, err := fmt.Fprintf(t.output, "\n%s", tableBuffer.String())

	return err
}
