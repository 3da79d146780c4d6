// Package domain holds the core cleanup pipeline: statement assembly,
// classification, file transformation and the run workflow.
package domain

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/sweeplab/logsweep/internal/adapter"
	"github.com/sweeplab/logsweep/internal/config"
	"github.com/sweeplab/logsweep/internal/controller"
	m "github.com/sweeplab/logsweep/internal/model"
)

// CleanArgs parameterizes a cleanup run.
type CleanArgs struct {
	Paths  []m.Path
	Rules  config.Rules
	DryRun bool
}

// ListArgs parameterizes a scan-only listing.
type ListArgs struct {
	Paths []m.Path
	Rules config.Rules
}

// Workflow defines the cleanup operations exposed to the CLI.
type Workflow interface {
	Clean(args CleanArgs) error
	List(args ListArgs) error
}

type workflow struct {
	fs  adapter.SourceFSAdapter
	ui  controller.UI
	log *logrus.Logger
}

// NewWorkflow creates a Workflow with the provided adapters.
func NewWorkflow(fs adapter.SourceFSAdapter, ui controller.UI, log *logrus.Logger) Workflow {
	return &workflow{fs: fs, ui: ui, log: log}
}

// Clean walks the roots and transforms each candidate file in turn.
// Files are processed strictly sequentially; one file's failure is
// reported and never aborts the run.
func (w *workflow) Clean(args CleanArgs) error {
	transformer, err := NewTransformer(args.Rules)
	if err != nil {
		return fmt.Errorf("build transformer: %w", err)
	}

	files, err := w.fs.Get(args.Paths, args.Rules)
	if err != nil {
		return fmt.Errorf("get sources: %w", err)
	}

	var options []controller.StartOption
	if args.DryRun {
		options = append(options, controller.WithDryRun())
	}

	if err := w.ui.Start(options...); err != nil {
		return fmt.Errorf("start ui: %w", err)
	}
	defer w.ui.Close()

	w.ui.DisplayScanInfo(len(files))

	var run m.RunStats

	for _, path := range files {
		stats := w.cleanFile(transformer, path, args.DryRun)
		run.Add(stats)
		w.ui.DisplayFileResult(stats)
	}

	return w.ui.DisplaySummary(run)
}

// cleanFile reads, transforms and conditionally rewrites one file. The
// write is the last step, so a failure anywhere earlier leaves the
// original untouched.
func (w *workflow) cleanFile(t *Transformer, path m.Path, dryRun bool) m.FileStats {
	content, err := w.fs.ReadFile(path)
	if err != nil {
		w.log.WithError(err).WithField("path", path).Error("read failed")

		return m.FileStats{Path: path, Err: err}
	}

	newContent, stats := t.Transform(path, content)

	if stats.InjectionSkipped {
		w.log.WithField("path", path).Warn("no declaration anchor found, logger instance insertion skipped")
	}

	if stats.Changed && !dryRun {
		if err := w.fs.WriteFile(path, newContent, 0o644); err != nil {
			w.log.WithError(err).WithField("path", path).Error("write failed")

			stats.Err = err

			return stats
		}
	}

	w.log.WithFields(logrus.Fields{
		"path":     path,
		"removed":  stats.Removed,
		"replaced": stats.Replaced,
		"changed":  stats.Changed,
	}).Debug("processed")

	return stats
}

// List scans the roots and reports candidate statement counts per file
// without computing or writing any rewrites.
func (w *workflow) List(args ListArgs) error {
	transformer, err := NewTransformer(args.Rules)
	if err != nil {
		return fmt.Errorf("build transformer: %w", err)
	}

	files, err := w.fs.Get(args.Paths, args.Rules)
	if err != nil {
		return fmt.Errorf("get sources: %w", err)
	}

	if err := w.ui.Start(); err != nil {
		return fmt.Errorf("start ui: %w", err)
	}
	defer w.ui.Close()

	counts := make([]controller.FileCount, 0, len(files))

	for _, path := range files {
		content, err := w.fs.ReadFile(path)
		if err != nil {
			w.log.WithError(err).WithField("path", path).Error("read failed")
			continue
		}

		counts = append(counts, controller.FileCount{
			Path:       path,
			Statements: transformer.CountCandidates(content),
		})
	}

	return w.ui.DisplayList(counts)
}
