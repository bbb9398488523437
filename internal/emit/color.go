package emit

import (
	"os"

	"golang.org/x/term"
)

// ANSI sequences exactly as spec.md §6 lists them for diff output.
const (
	colorDelete  = "\x1b[31m"
	colorAdd     = "\x1b[32m"
	colorContext = "\x1b[36m"
	colorReset   = "\x1b[0m"
)

// ColorScheme carries the diff color sequences lint-order and scan
// output use, empty when colors are disabled. Mirrors the teacher's
// ColorScheme struct (enable/disable by one bool), generalized from
// help-output element colors to diff line colors.
type ColorScheme struct {
	Delete  string
	Add     string
	Context string
	Reset   string
}

// NewColorScheme builds a ColorScheme. useColor is the caller's final
// decision (already folded together with OUTPUT_NO_COLOR and TTY
// detection by ShouldColor); when false every field is empty.
func NewColorScheme(useColor bool) *ColorScheme {
	if !useColor {
		return &ColorScheme{}
	}
	return &ColorScheme{Delete: colorDelete, Add: colorAdd, Context: colorContext, Reset: colorReset}
}

// ShouldColor decides whether ANSI output is warranted: not explicitly
// disabled, and stdout is a terminal.
func ShouldColor(noColor bool) bool {
	if noColor {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}
