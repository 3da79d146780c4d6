package model

// FileStats holds the per-file outcome of one transform. It is produced
// by the pure transform function and aggregated by the workflow; nothing
// here is shared or mutated across files.
type FileStats struct {
	Path             Path
	Removed          int // statements removed
	Replaced         int // statements rewritten to the structured logger
	ImportAdded      bool
	InjectionSkipped bool // no anchor found for the logger instance
	Changed          bool
	Err              error
}

// RunStats accumulates counters for a whole invocation. It is threaded
// through the workflow by value and only read once at the end.
type RunStats struct {
	FilesScanned       int
	FilesChanged       int
	StatementsRemoved  int
	StatementsReplaced int
	ImportsAdded       int
	InjectionsSkipped  int
	Errors             int
}

// Add folds one file's stats into the run totals.
func (r *RunStats) Add(fs FileStats) {
	r.FilesScanned++

	if fs.Err != nil {
		r.Errors++
		return
	}

	r.StatementsRemoved += fs.Removed
	r.StatementsReplaced += fs.Replaced

	if fs.ImportAdded {
		r.ImportsAdded++
	}

	if fs.InjectionSkipped {
		r.InjectionsSkipped++
	}

	if fs.Changed {
		r.FilesChanged++
	}
}
