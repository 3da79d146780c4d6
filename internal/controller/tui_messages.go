package controller

import (
	m "github.com/sweeplab/logsweep/internal/model"
)

// scanInfoMsg announces how many candidate files the walk discovered.
type scanInfoMsg struct {
	files int
}

// fileResultMsg carries the outcome of one file's transform.
type fileResultMsg struct {
	stats m.FileStats
}

// summaryMsg carries the final run totals and ends the program.
type summaryMsg struct {
	run m.RunStats
}
