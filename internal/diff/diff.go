// Package diff computes the edit script between two string sequences,
// used by the lint-order pass and by the scan log writer's change check
// (SPEC_FULL.md §4.5); the merge pass does not use it. It wraps github.com/pmezard/go-difflib's
// opcode matcher rather than hand-rolling an LCS implementation.
package diff

import (
	"fmt"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// Op classifies one element of an edit script.
type Op int

const (
	// Common marks an element present, unchanged, in both sequences.
	Common Op = iota
	// Add marks an element present only in the second (new) sequence.
	Add
	// Delete marks an element present only in the first (old) sequence.
	Delete
)

func (o Op) String() string {
	switch o {
	case Add:
		return "+"
	case Delete:
		return "-"
	default:
		return " "
	}
}

// Entry is one element of an edit script: its operation and value.
type Entry struct {
	Op      Op
	Element string
}

// Diff returns the edit script turning old into new, as a sequence of
// Entries. Runs of equal elements are Common; everything else collapses
// to paired Delete/Add runs, following go-difflib's opcode grouping.
func Diff(old, new []string) []Entry {
	matcher := difflib.NewMatcher(old, new)
	var out []Entry
	for _, op := range matcher.GetOpCodes() {
		switch op.Tag {
		case 'e':
			for _, el := range old[op.I1:op.I2] {
				out = append(out, Entry{Op: Common, Element: el})
			}
		case 'd':
			for _, el := range old[op.I1:op.I2] {
				out = append(out, Entry{Op: Delete, Element: el})
			}
		case 'i':
			for _, el := range new[op.J1:op.J2] {
				out = append(out, Entry{Op: Add, Element: el})
			}
		case 'r':
			for _, el := range old[op.I1:op.I2] {
				out = append(out, Entry{Op: Delete, Element: el})
			}
			for _, el := range new[op.J1:op.J2] {
				out = append(out, Entry{Op: Add, Element: el})
			}
		}
	}
	return out
}

// Equal reports whether old and new produce an edit script with no
// Add/Delete entries, the check scan.WriteLog uses to decide whether a
// new log differs from the previous run's.
func Equal(old, new []string) bool {
	for _, e := range Diff(old, new) {
		if e.Op != Common {
			return false
		}
	}
	return true
}

// UnifiedLines renders a unified-diff-style text block from two text
// blobs (split on '\n'), with contextLines of Common padding around
// each changed run, for CLI/report display.
func UnifiedLines(old, new string, contextLines int) string {
	oldLines := difflib.SplitLines(old)
	newLines := difflib.SplitLines(new)

	ud := difflib.UnifiedDiff{
		A:        oldLines,
		B:        newLines,
		FromFile: "expected",
		ToFile:   "actual",
		Context:  contextLines,
	}
	text, err := difflib.GetUnifiedDiffString(ud)
	if err != nil {
		return fmt.Sprintf("diff error: %v", err)
	}
	return text
}

// Render renders an edit script as a human-readable "- old" / "+ new"
// block, one line per entry, for lint/scan reports that want the raw
// entries rather than a unified-diff text block.
func Render(entries []Entry) string {
	var b strings.Builder
	for _, e := range entries {
		fmt.Fprintf(&b, "%s %s\n", e.Op, e.Element)
	}
	return b.String()
}
