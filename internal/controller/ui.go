// Package controller provides output controllers for displaying cleanup
// progress and results.
package controller

import (
	m "github.com/sweeplab/logsweep/internal/model"
)

// FileCount pairs a candidate file with the number of loggable statements
// detected in it, for the scan-only listing.
type FileCount struct {
	Path       m.Path
	Statements int
}

// StartOption is a functional option for the Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	dryRun bool
}

// WithDryRun marks the run as compute-only so output wording reflects
// that nothing is written.
func WithDryRun() StartOption {
	return func(c *StartConfig) {
		c.dryRun = true
	}
}

// UI defines the interface for displaying cleanup progress and results.
// Implementations can use different output methods (simple text, TUI).
// Display methods are purely observational and never influence
// transformation decisions.
type UI interface {
	Start(options ...StartOption) error
	Close()
	DisplayScanInfo(files int)
	DisplayFileResult(stats m.FileStats)
	DisplaySummary(run m.RunStats) error
	DisplayList(counts []FileCount) error
}
