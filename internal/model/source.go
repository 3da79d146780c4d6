package model

// Path represents a file system path.
type Path string

// SourceFile holds one candidate file's content for the duration of a
// single transform. Lines are split on '\n'; the original newline layout
// is reconstructed when the file is written back.
type SourceFile struct {
	Path  Path
	Lines []string
}

// Statement is a contiguous run of one or more lines believed to form a
// single console call. Start and End are zero-based line indices into the
// owning file, inclusive.
type Statement struct {
	Start int
	End   int
	Text  string // lines joined with '\n'
}

// Span returns the number of lines the statement covers.
func (s Statement) Span() int {
	return s.End - s.Start + 1
}
