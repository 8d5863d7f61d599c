package diagfmt

// PrettyOpts configures pretty-printing of diagnostics.
type PrettyOpts struct {
	Color     bool
	ShowNotes bool
	// MinSeverity hides lower severities; info diagnostics are noise for
	// most CLI runs.
	MinSeverity uint8
}

// JSONOpts configures JSON output of diagnostics.
type JSONOpts struct {
	Max          int // output cut-off, does not touch the Bag
	IncludeNotes bool
}
