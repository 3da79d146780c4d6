package model

// DecisionKind is the classification outcome for a statement.
type DecisionKind int

// Available DecisionKind values.
const (
	// Keep preserves the statement verbatim.
	Keep DecisionKind = iota

	// Remove drops every line of the statement from the output.
	Remove

	// Replace rewrites the call name and keeps the arguments untouched.
	Replace
)

// String returns a human-readable name for the decision kind.
func (k DecisionKind) String() string {
	switch k {
	case Remove:
		return "remove"
	case Replace:
		return "replace"
	default:
		return "keep"
	}
}

// Decision records what the matcher decided for one statement.
type Decision struct {
	Kind DecisionKind

	// Rule names the matcher rule that fired, for diagnostics only.
	Rule string

	// Rewritten holds the replacement lines when Kind is Replace.
	Rewritten []string

	// NeedsLogger marks that the file requires the structured logger
	// import and instance once this decision is applied.
	NeedsLogger bool
}
