package controller

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/sweeplab/logsweep/internal/model"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Padding(1, 0, 0, 2)

	statStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Padding(0, 0, 0, 2)

	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	pathStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))

	doneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10")).
			Bold(true).
			Padding(1, 0, 1, 2)
)

// sweepModel renders live progress while the workflow grinds through the
// file list. It only mirrors workflow events; all counting happens in the
// domain layer.
type sweepModel struct {
	width     int
	spin      spinner.Model
	bar       progress.Model
	dryRun    bool
	total     int
	processed int
	changed   int
	errors    int
	lastPath  m.Path
	finished  bool
	run       m.RunStats
}

func newSweepModel(dryRun bool) sweepModel {
	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = accentStyle

	bar := progress.New(progress.WithDefaultGradient())

	return sweepModel{
		spin:   spin,
		bar:    bar,
		dryRun: dryRun,
	}
}

func (sm sweepModel) Init() tea.Cmd {
	return sm.spin.Tick
}

func (sm sweepModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		sm.width = msg.Width
		sm.bar.Width = msg.Width - 8

	case tea.KeyMsg:
		if msg.String() == "q" || msg.String() == "ctrl+c" {
			return sm, tea.Quit
		}

	case spinner.TickMsg:
		var cmd tea.Cmd

		sm.spin, cmd = sm.spin.Update(msg)

		return sm, cmd

	case scanInfoMsg:
		sm.total = msg.files

	case fileResultMsg:
		sm.processed++
		sm.lastPath = msg.stats.Path

		if msg.stats.Err != nil {
			sm.errors++
		} else if msg.stats.Changed {
			sm.changed++
		}

	case summaryMsg:
		sm.run = msg.run
		sm.finished = true

		return sm, tea.Quit
	}

	return sm, nil
}

func (sm sweepModel) View() string {
	if sm.finished {
		return sm.summaryView()
	}

	title := titleStyle.Render("logsweep " + sm.modeLabel())

	var percent float64
	if sm.total > 0 {
		percent = float64(sm.processed) / float64(sm.total)
	}

	counts := statStyle.Render(fmt.Sprintf(
		"%s %s of %s files   changed: %s   errors: %s",
		sm.spin.View(),
		accentStyle.Render(fmt.Sprintf("%d", sm.processed)),
		accentStyle.Render(fmt.Sprintf("%d", sm.total)),
		accentStyle.Render(fmt.Sprintf("%d", sm.changed)),
		accentStyle.Render(fmt.Sprintf("%d", sm.errors)),
	))

	current := ""
	if sm.lastPath != "" {
		current = statStyle.Render(pathStyle.Render(string(sm.lastPath)))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		counts,
		statStyle.Render(sm.bar.ViewAs(percent)),
		current,
	)
}

func (sm sweepModel) summaryView() string {
	title := titleStyle.Render("logsweep " + sm.modeLabel())

	lines := []string{
		fmt.Sprintf("Files scanned:       %d", sm.run.FilesScanned),
		fmt.Sprintf("Files changed:       %d", sm.run.FilesChanged),
		fmt.Sprintf("Statements removed:  %d", sm.run.StatementsRemoved),
		fmt.Sprintf("Statements replaced: %d", sm.run.StatementsReplaced),
		fmt.Sprintf("Imports added:       %d", sm.run.ImportsAdded),
		fmt.Sprintf("Injections skipped:  %d", sm.run.InjectionsSkipped),
		fmt.Sprintf("Errors:              %d", sm.run.Errors),
	}

	body := make([]string, 0, len(lines)+2)
	body = append(body, title)

	for _, line := range lines {
		body = append(body, statStyle.Render(line))
	}

	if sm.dryRun {
		body = append(body, doneStyle.Render("Dry run: nothing was written"))
	} else {
		body = append(body, doneStyle.Render("Cleanup complete"))
	}

	return lipgloss.JoinVertical(lipgloss.Left, body...) + "\n"
}

func (sm sweepModel) modeLabel() string {
	if sm.dryRun {
		return "(dry run)"
	}

	return ""
}
