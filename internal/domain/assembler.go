package domain

import (
	"regexp"
	"strings"

	m "github.com/sweeplab/logsweep/internal/model"
)

// openerPattern matches the start of a console call at any level.
var openerPattern = regexp.MustCompile(`console\.(log|warn|error)\s*\(`)

// Assembler groups raw lines into logical statements. A console call whose
// parentheses stay unbalanced at the end of its first line pulls following
// lines into the same statement until the balance returns to zero.
//
// This is a delimiter-balance heuristic, not a parser: parentheses are
// counted outside of ' " ` string literals and line comments, so template
// interpolation and pathological nesting can still misdetect a boundary.
// An unclosed call degrades to ending at end of file.
type Assembler struct{}

// NewAssembler creates an Assembler.
func NewAssembler() *Assembler {
	return &Assembler{}
}

// At reports whether a console call starts on lines[i] and, if so, returns
// the full statement spanning from line i through its closing line.
func (a *Assembler) At(lines []string, i int) (m.Statement, bool) {
	loc := openerPattern.FindStringIndex(lines[i])
	if loc == nil {
		return m.Statement{}, false
	}

	balance := countBalance(lines[i][loc[0]:], 0)

	end := i
	for balance > 0 && end+1 < len(lines) {
		end++
		balance = countBalance(lines[end], balance)
	}

	return m.Statement{
		Start: i,
		End:   end,
		Text:  strings.Join(lines[i:end+1], "\n"),
	}, true
}

// countBalance folds one line into a running parenthesis balance,
// skipping quoted sections and anything after a // comment marker.
func countBalance(line string, balance int) int {
	var quote rune

	escaped := false
	runes := []rune(line)

	for idx := 0; idx < len(runes); idx++ {
		r := runes[idx]

		if quote != 0 {
			switch {
			case escaped:
				escaped = false
			case r == '\\':
				escaped = true
			case r == quote:
				quote = 0
			}

			continue
		}

		switch r {
		case '\'', '"', '`':
			quote = r
		case '/':
			if idx+1 < len(runes) && runes[idx+1] == '/' {
				return balance // rest of the line is a comment
			}
		case '(':
			balance++
		case ')':
			balance--
			if balance <= 0 {
				return balance
			}
		}
	}

	return balance
}
