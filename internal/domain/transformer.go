package domain

import (
	"bytes"
	"strings"

	"github.com/sweeplab/logsweep/internal/config"
	m "github.com/sweeplab/logsweep/internal/model"
)

// Transformer applies the assembler/matcher pipeline to one file's text.
// Transform is pure: (path, content) -> (new content, per-file stats),
// with no filesystem access and no shared state, so the workflow can
// decide separately whether anything gets written.
type Transformer struct {
	assembler *Assembler
	matcher   *Matcher
	inj       injector
}

// NewTransformer builds a Transformer from the rule set.
func NewTransformer(rules config.Rules) (*Transformer, error) {
	matcher, err := NewMatcher(rules)
	if err != nil {
		return nil, err
	}

	return &Transformer{
		assembler: NewAssembler(),
		matcher:   matcher,
		inj:       injector{rules: rules},
	}, nil
}

// Transform rewrites one file's content in memory. Changed is set only
// when the reconstructed text differs byte for byte from the original.
func (t *Transformer) Transform(path m.Path, content []byte) ([]byte, m.FileStats) {
	stats := m.FileStats{Path: path}

	if !bytes.Contains(content, []byte("console.")) {
		return content, stats
	}

	lines := strings.Split(string(content), "\n")

	out := make([]string, 0, len(lines))
	needsLogger := false

	for i := 0; i < len(lines); {
		stmt, ok := t.assembler.At(lines, i)
		if !ok {
			out = append(out, lines[i])
			i++

			continue
		}

		decision := t.matcher.Classify(stmt)

		switch decision.Kind {
		case m.Remove:
			stats.Removed++
		case m.Replace:
			out = append(out, decision.Rewritten...)
			stats.Replaced++
		default:
			out = append(out, lines[stmt.Start:stmt.End+1]...)
		}

		if decision.NeedsLogger {
			needsLogger = true
		}

		i = stmt.End + 1
	}

	// No decision fired: the file must come back byte-identical, including
	// any pre-existing blank-line runs.
	if stats.Removed == 0 && stats.Replaced == 0 {
		return content, stats
	}

	if needsLogger && !t.inj.hasImport(out) {
		var skipped bool

		out, skipped = t.inj.inject(out, path)
		stats.ImportAdded = true
		stats.InjectionSkipped = skipped
	}

	out = collapseBlankRuns(out)

	result := []byte(strings.Join(out, "\n"))
	stats.Changed = !bytes.Equal(result, content)

	return result, stats
}

// CountCandidates returns how many statements in content the matcher
// would remove or replace. Used by the scan-only listing.
func (t *Transformer) CountCandidates(content []byte) int {
	if !bytes.Contains(content, []byte("console.")) {
		return 0
	}

	lines := strings.Split(string(content), "\n")
	count := 0

	for i := 0; i < len(lines); {
		stmt, ok := t.assembler.At(lines, i)
		if !ok {
			i++
			continue
		}

		if t.matcher.Classify(stmt).Kind != m.Keep {
			count++
		}

		i = stmt.End + 1
	}

	return count
}

// collapseBlankRuns squashes any run of 3 or more consecutive blank lines
// down to a single blank line; runs of 1 or 2 stay untouched.
func collapseBlankRuns(lines []string) []string {
	out := make([]string, 0, len(lines))

	for i := 0; i < len(lines); {
		if strings.TrimSpace(lines[i]) != "" {
			out = append(out, lines[i])
			i++

			continue
		}

		j := i
		for j < len(lines) && strings.TrimSpace(lines[j]) == "" {
			j++
		}

		if j-i >= 3 {
			out = append(out, "")
		} else {
			out = append(out, lines[i:j]...)
		}

		i = j
	}

	return out
}
