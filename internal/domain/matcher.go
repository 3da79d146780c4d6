package domain

import (
	"regexp"
	"strings"

	"github.com/sweeplab/logsweep/internal/config"
	m "github.com/sweeplab/logsweep/internal/model"
)

// separatorPattern matches calls whose only argument is a quoted run of
// whitespace and dashes, used as visual dividers in debug output.
var separatorPattern = regexp.MustCompile(`console\.log\(\s*['"][\s-]+['"]\s*\)`)

// Matcher classifies assembled statements as keep, remove or replace.
// Classification is pure: the same statement and rule set always produce
// the same decision.
type Matcher struct {
	rules       config.Rules
	emojiRanges []config.CodeRange
	verbose     []string
}

// NewMatcher builds a Matcher from the rule set.
func NewMatcher(rules config.Rules) (*Matcher, error) {
	ranges, err := rules.ParsedEmojiRanges()
	if err != nil {
		return nil, err
	}

	verbose := make([]string, 0, len(rules.VerbosePatterns))
	for _, p := range rules.VerbosePatterns {
		verbose = append(verbose, strings.ToLower(p))
	}

	return &Matcher{rules: rules, emojiRanges: ranges, verbose: verbose}, nil
}

// Classify decides what happens to one statement. Removal rules are
// checked in a fixed order and the first match wins; warn/error calls
// survive everything except emoji removal under the "all" policy.
func (mt *Matcher) Classify(stmt m.Statement) m.Decision {
	match := openerPattern.FindStringSubmatchIndex(stmt.Text)
	if match == nil {
		return m.Decision{Kind: m.Keep}
	}

	level := stmt.Text[match[2]:match[3]]
	args := stmt.Text[match[1]:]

	if mt.containsEmoji(args) {
		if level == "log" || mt.rules.StripLevels == config.StripAll {
			return m.Decision{Kind: m.Remove, Rule: "emoji"}
		}
	}

	if level != "log" {
		return m.Decision{Kind: m.Keep, Rule: "level"}
	}

	if rule, ok := mt.shouldRemove(stmt.Text, args); ok {
		return m.Decision{Kind: m.Remove, Rule: rule}
	}

	return m.Decision{
		Kind:        m.Replace,
		Rule:        "plain",
		Rewritten:   rewriteCall(stmt),
		NeedsLogger: true,
	}
}

func (mt *Matcher) shouldRemove(text, args string) (string, bool) {
	for _, marker := range mt.rules.Markers {
		if strings.Contains(args, "'"+marker) || strings.Contains(args, `"`+marker) {
			return "marker", true
		}
	}

	if separatorPattern.MatchString(text) {
		return "separator", true
	}

	lowered := strings.ToLower(text)
	for _, pattern := range mt.verbose {
		if strings.Contains(lowered, pattern) {
			return "verbose", true
		}
	}

	return "", false
}

func (mt *Matcher) containsEmoji(s string) bool {
	for _, r := range s {
		for _, cr := range mt.emojiRanges {
			if r >= cr.Lo && r <= cr.Hi {
				return true
			}
		}
	}

	return false
}

// rewriteCall swaps the call name on the opening line for the structured
// debug call, leaving every argument character untouched.
func rewriteCall(stmt m.Statement) []string {
	lines := strings.Split(stmt.Text, "\n")

	for i, line := range lines {
		if strings.Contains(line, "console.log") {
			lines[i] = strings.Replace(line, "console.log", "logger.debug", 1)
			break
		}
	}

	return lines
}
