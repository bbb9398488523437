package emit

import (
	"strings"

	"github.com/Jehops/portfmt/internal/diff"
)

// RenderDiff renders a diff.Entry sequence as a unified-diff-like list
// of lines (spec.md §4.3 lint-order: "report added/removed lines as a
// unified-diff-like list, colorized by caller"), prefixing +/-/space
// and applying colors when scheme carries non-empty codes.
func RenderDiff(entries []diff.Entry, scheme *ColorScheme) string {
	var buf strings.Builder
	for _, e := range entries {
		switch e.Op {
		case diff.Add:
			buf.WriteString(scheme.Add)
			buf.WriteString("+ ")
			buf.WriteString(e.Element)
			buf.WriteString(scheme.Reset)
		case diff.Delete:
			buf.WriteString(scheme.Delete)
			buf.WriteString("- ")
			buf.WriteString(e.Element)
			buf.WriteString(scheme.Reset)
		default:
			buf.WriteString(scheme.Context)
			buf.WriteString("  ")
			buf.WriteString(e.Element)
			buf.WriteString(scheme.Reset)
		}
		buf.WriteByte('\n')
	}
	return buf.String()
}
