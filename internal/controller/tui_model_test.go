package controller

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/sweeplab/logsweep/internal/model"
)

func updated(t *testing.T, sm sweepModel, msg tea.Msg) (sweepModel, tea.Cmd) {
	t.Helper()

	next, cmd := sm.Update(msg)

	model, ok := next.(sweepModel)
	require.True(t, ok)

	return model, cmd
}

func TestSweepModel_ProgressCounting(t *testing.T) {
	sm := newSweepModel(false)

	sm, _ = updated(t, sm, scanInfoMsg{files: 3})
	assert.Equal(t, 3, sm.total)

	sm, _ = updated(t, sm, fileResultMsg{stats: m.FileStats{Path: "a.ts", Changed: true}})
	sm, _ = updated(t, sm, fileResultMsg{stats: m.FileStats{Path: "b.ts"}})
	sm, _ = updated(t, sm, fileResultMsg{stats: m.FileStats{Path: "c.ts", Err: errors.New("boom")}})

	assert.Equal(t, 3, sm.processed)
	assert.Equal(t, 1, sm.changed)
	assert.Equal(t, 1, sm.errors)
	assert.Equal(t, m.Path("c.ts"), sm.lastPath)
}

func TestSweepModel_SummaryQuits(t *testing.T) {
	sm := newSweepModel(false)

	run := m.RunStats{FilesScanned: 5, FilesChanged: 2, StatementsRemoved: 4}

	sm, cmd := updated(t, sm, summaryMsg{run: run})

	assert.True(t, sm.finished)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())

	view := sm.View()
	assert.Contains(t, view, "Files scanned:       5")
	assert.Contains(t, view, "Statements removed:  4")
	assert.Contains(t, view, "Cleanup complete")
}

func TestSweepModel_DryRunSummary(t *testing.T) {
	sm := newSweepModel(true)

	sm, _ = updated(t, sm, summaryMsg{run: m.RunStats{}})

	view := sm.View()
	assert.Contains(t, view, "(dry run)")
	assert.Contains(t, view, "Dry run: nothing was written")
	assert.NotContains(t, view, "Cleanup complete")
}

func TestSweepModel_QuitKeys(t *testing.T) {
	sm := newSweepModel(false)

	for _, key := range []string{"q", "ctrl+c"} {
		var msg tea.Msg
		if key == "q" {
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}
		} else {
			msg = tea.KeyMsg{Type: tea.KeyCtrlC}
		}

		_, cmd := updated(t, sm, msg)
		require.NotNil(t, cmd, key)
		assert.Equal(t, tea.Quit(), cmd(), key)
	}
}

func TestSweepModel_ProgressView(t *testing.T) {
	sm := newSweepModel(false)
	sm, _ = updated(t, sm, tea.WindowSizeMsg{Width: 80, Height: 24})
	sm, _ = updated(t, sm, scanInfoMsg{files: 2})
	sm, _ = updated(t, sm, fileResultMsg{stats: m.FileStats{Path: "src/app.ts", Changed: true}})

	view := sm.View()
	assert.Contains(t, view, "1")
	assert.Contains(t, view, "2")
	assert.Contains(t, view, "src/app.ts")
}
