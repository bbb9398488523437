package cli

// Config holds the flags common to portfmt's format/edit/lint
// subcommands: which file to read, how to write the result back, and
// the emitter settings derived from flags and the optional
// .portfmtrc.yaml file.
type Config struct {
	// MakefilePath is the file to operate on. Empty means stdin, and
	// InPlace is then invalid.
	MakefilePath string

	// InPlace rewrites MakefilePath instead of printing to stdout (-i).
	InPlace bool

	// UnifiedDiff prints a unified diff against the original instead of
	// the reformatted text (-u).
	UnifiedDiff bool

	// TestRoundtrip runs the pipeline twice and fails if the second
	// pass differs from the first, without writing anything (-t).
	TestRoundtrip bool

	// WrapColumn overrides the emitter's wrap column (-w); zero means
	// "use the configured/default value."
	WrapColumn int

	// EnablePasses/DisablePasses name additional passes to run, or
	// default passes to skip, for the format subcommand (-D/-d).
	EnablePasses  []string
	DisablePasses []string

	// NoColor forces color off regardless of TTY detection.
	NoColor bool

	// ConfigPath is the .portfmtrc.yaml path to load; empty uses
	// config.DefaultPath in the current directory.
	ConfigPath string
}

// NewConfig returns a Config with portfmt's defaults.
func NewConfig() *Config {
	return &Config{}
}
