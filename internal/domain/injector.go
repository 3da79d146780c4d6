package domain

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/sweeplab/logsweep/internal/config"
	m "github.com/sweeplab/logsweep/internal/model"
)

var (
	importLinePattern = regexp.MustCompile(`^import .* from ['"].*['"];?\s*$`)
	exportedPattern   = regexp.MustCompile(`^export\s+(default\s+)?(async\s+)?(const|let|var|function|class)\b`)
	topLevelPattern   = regexp.MustCompile(`^(async\s+)?(const|let|var|function|class)\b`)
)

// injector inserts the logger import and instance declaration into a file
// that gained at least one replacement. The injected lines are byte-stable
// so a second run never duplicates them.
type injector struct {
	rules config.Rules
}

// hasImport reports whether the file already imports the structured logger.
func (in injector) hasImport(lines []string) bool {
	content := strings.Join(lines, "\n")

	for _, marker := range in.rules.ImportMarkers {
		if strings.Contains(content, marker) {
			return true
		}
	}

	return false
}

// inject adds the import line and the logger instance declaration.
// The import goes after the last top-level import, or at the top of the
// file when there is none. The instance anchor is resolved by a fallback
// chain: first exported declaration, then first top-level declaration.
// When neither exists the instance is skipped and reported, never
// silently dropped.
func (in injector) inject(lines []string, path m.Path) (out []string, skipped bool) {
	instance := fmt.Sprintf(in.rules.InstanceTemplate, loggerContext(path))

	lastImport := -1

	for i, line := range lines {
		if importLinePattern.MatchString(line) {
			lastImport = i
		}
	}

	out = make([]string, 0, len(lines)+3)

	if lastImport >= 0 {
		out = append(out, lines[:lastImport+1]...)
		out = append(out, in.rules.ImportLine)
		out = append(out, lines[lastImport+1:]...)
	} else {
		out = append(out, in.rules.ImportLine, "")
		out = append(out, lines...)
	}

	anchor := findAnchor(out)
	if anchor < 0 {
		return out, true
	}

	withInstance := make([]string, 0, len(out)+2)
	withInstance = append(withInstance, out[:anchor]...)

	if anchor > 0 && strings.TrimSpace(out[anchor-1]) != "" {
		withInstance = append(withInstance, "")
	}

	withInstance = append(withInstance, instance)
	withInstance = append(withInstance, out[anchor:]...)

	return withInstance, false
}

func findAnchor(lines []string) int {
	for i, line := range lines {
		if exportedPattern.MatchString(line) {
			return i
		}
	}

	for i, line := range lines {
		if line == "" || importLinePattern.MatchString(line) {
			continue
		}

		if topLevelPattern.MatchString(line) {
			return i
		}
	}

	return -1
}

// loggerContext derives the logger name from the file's base name.
func loggerContext(path m.Path) string {
	base := filepath.Base(string(path))
	return strings.TrimSuffix(base, filepath.Ext(base))
}
