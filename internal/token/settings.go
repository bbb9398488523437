package token

// Settings is the set of ParserSettings flags from spec.md §3, plus the
// two numeric knobs (wrap column, diff context) that ride along with
// them. It is passed by value from the CLI layer down through the
// lexer, edit passes, and emitter.
type Settings struct {
	OutputRawlines bool
	OutputReformat bool
	OutputEdited   bool
	OutputNoColor  bool
	OutputInplace  bool

	CollapseAdjacentVariables bool
	KeepEOLComments           bool
	SanitizeAppend            bool
	UnsortedVariables         bool
	AlwaysSortVariables       bool

	// TargetWrapColumn is the column long values wrap at. Default 80.
	TargetWrapColumn int

	// DiffContext is a number of unchanged context lines for diff
	// output. No code in this module reads it; lint-order reports every
	// entry of its edit script.
	DiffContext int
}

// DefaultSettings returns the settings new documents are parsed/emitted
// with absent any CLI overrides: reformatting on, wrap column 80, three
// lines of diff context.
func DefaultSettings() Settings {
	return Settings{
		OutputReformat:   true,
		TargetWrapColumn: 80,
		DiffContext:      3,
	}
}
