package controller

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUI(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.SetOut(&bytes.Buffer{})

	ui := NewUI(cmd, true)
	assert.IsType(t, &TUI{}, ui)

	ui = NewUI(cmd, false)
	assert.IsType(t, &SimpleUI{}, ui)
}

func TestIsTTY(t *testing.T) {
	assert.False(t, IsTTY(&bytes.Buffer{}), "non-file writers are never TTYs")

	file, err := os.Create(filepath.Join(t.TempDir(), "out.log"))
	require.NoError(t, err)
	defer file.Close()

	assert.False(t, IsTTY(file), "regular files are not TTYs")
}
