// Package emit walks a (possibly edited) ast.Document back to text, per
// spec.md §4.5: OUTPUT_RAWLINES/OUTPUT_REFORMAT/OUTPUT_EDITED modes,
// per-block tab alignment, wrap-column wrapping, and verbatim
// comment/conditional/target emission.
//
// The Document's token arena (internal/ast, by design, per its arena
// rationale) carries parsed words rather than the original source
// bytes, so "raw" here means replaying token data without the
// alignment/wrap pass, not byte-identical passthrough of the input
// file.
package emit

import (
	"sort"
	"strings"

	"github.com/Jehops/portfmt/internal/ast"
	"github.com/Jehops/portfmt/internal/rules"
	"github.com/Jehops/portfmt/internal/token"
)

const tabWidth = 8

// Emit renders doc to text under settings.
func Emit(doc *ast.Document, settings token.Settings) string {
	if settings.OutputRawlines {
		return emitPlain(doc)
	}

	var buf strings.Builder
	runs := groupRuns(doc)
	i := 0
	for i < len(doc.Tokens) {
		t := doc.Tokens[i]
		if t.GC {
			i++
			continue
		}
		switch t.Variety {
		case token.Comment:
			buf.WriteString(t.Data)
			buf.WriteByte('\n')
			i++
		case token.ConditionalStart:
			i = emitConditional(&buf, doc, i)
		case token.TargetStart:
			i = emitTarget(&buf, doc, i)
		case token.VariableStart:
			v := doc.Variables[t.Variable]
			if settings.OutputEdited && !rangeEdited(doc, v) {
				i = emitVariablePlain(&buf, doc, i, v)
				break
			}
			tabs := runs[v.StartIndex]
			if tabs == 0 {
				tabs = 1
			}
			i = emitVariable(&buf, doc, i, v, tabs, settings.TargetWrapColumn)
		default:
			i++
		}
	}
	return buf.String()
}

// emitPlain replays every live token's Data with minimal structure, no
// alignment or wrapping: the OUTPUT_RAWLINES mode of spec.md §4.5.
func emitPlain(doc *ast.Document) string {
	var buf strings.Builder
	i := 0
	for i < len(doc.Tokens) {
		t := doc.Tokens[i]
		if t.GC {
			i++
			continue
		}
		switch t.Variety {
		case token.Comment:
			buf.WriteString(t.Data)
			buf.WriteByte('\n')
			i++
		case token.ConditionalStart:
			i = emitConditional(&buf, doc, i)
		case token.TargetStart:
			i = emitTarget(&buf, doc, i)
		case token.VariableStart:
			v := doc.Variables[t.Variable]
			i = emitVariablePlain(&buf, doc, i, v)
		default:
			i++
		}
	}
	return buf.String()
}

func rangeEdited(doc *ast.Document, v token.Variable) bool {
	for i := v.StartIndex; i <= v.EndIndex && i < len(doc.Tokens); i++ {
		if doc.Tokens[i].Edited {
			return true
		}
	}
	return false
}

// emitVariablePlain writes "NAME<mod>\tvalue value...\n" with a single
// tab and no wrapping, returning the index just past the range's END.
func emitVariablePlain(buf *strings.Builder, doc *ast.Document, i int, v token.Variable) int {
	buf.WriteString(v.Name)
	buf.WriteString(v.Modifier.String())
	buf.WriteByte('\t')
	words := doc.VariableRange(v)
	vals := make([]string, 0, len(words))
	for _, idx := range words {
		vals = append(vals, doc.Tokens[idx].Data)
	}
	buf.WriteString(strings.Join(vals, " "))
	buf.WriteByte('\n')
	return v.EndIndex + 1
}

// emitVariable writes the OUTPUT_REFORMAT rendering of v: header padded
// with tabs to column tabs*tabWidth, values space-joined and wrapped at
// wrapCol with backslash-newline continuations indented one tab past
// the header column.
func emitVariable(buf *strings.Builder, doc *ast.Document, _ int, v token.Variable, tabs, wrapCol int) int {
	header := v.Name + v.Modifier.String()
	buf.WriteString(header)
	padTo(buf, len(header), tabs*tabWidth)

	words := doc.VariableRange(v)
	col := tabs * tabWidth
	first := true
	for _, idx := range words {
		val := doc.Tokens[idx].Data
		if wrapCol > 0 && !first && col+len(val)+2 > wrapCol {
			buf.WriteString(" \\\n")
			padTo(buf, 0, (tabs+1)*tabWidth)
			col = (tabs + 1) * tabWidth
		} else if !first {
			buf.WriteByte(' ')
			col++
		}
		buf.WriteString(val)
		col += len(val)
		first = false
	}
	buf.WriteByte('\n')
	return v.EndIndex + 1
}

// padTo writes tabs to advance a cursor currently at column from to at
// least column to, always emitting at least one tab so the header and
// first value are never glued together.
func padTo(buf *strings.Builder, from, to int) {
	col := from
	wrote := false
	for col < to {
		buf.WriteByte('\t')
		col = (col/tabWidth + 1) * tabWidth
		wrote = true
	}
	if !wrote {
		buf.WriteByte('\t')
	}
}

func emitConditional(buf *strings.Builder, doc *ast.Document, i int) int {
	c := doc.Conditionals[doc.Tokens[i].Conditional]
	buf.WriteString("." + c.Name)
	if c.Argument != "" {
		buf.WriteByte(' ')
		buf.WriteString(c.Argument)
	}
	buf.WriteByte('\n')
	return c.EndIndex + 1
}

func emitTarget(buf *strings.Builder, doc *ast.Document, i int) int {
	tg := doc.Targets[doc.Tokens[i].Target]
	buf.WriteString(strings.Join(tg.Names, " "))
	buf.WriteByte(':')
	if len(tg.Dependencies) > 0 {
		buf.WriteByte(' ')
		buf.WriteString(strings.Join(tg.Dependencies, " "))
	}
	if len(tg.OrderOnly) > 0 {
		buf.WriteString(" | ")
		buf.WriteString(strings.Join(tg.OrderOnly, " "))
	}
	if tg.Comment != "" {
		buf.WriteString(" # ")
		buf.WriteString(tg.Comment)
	}
	buf.WriteByte('\n')

	for j := tg.StartIndex + 1; j < tg.EndIndex; j++ {
		if j < 0 || j >= len(doc.Tokens) {
			continue
		}
		t := doc.Tokens[j]
		if t.GC || t.Variety != token.TargetCommandToken {
			continue
		}
		buf.WriteByte('\t')
		buf.WriteString(t.Data)
		buf.WriteByte('\n')
	}
	return tg.EndIndex + 1
}

// groupRuns computes, for every live variable's StartIndex (conditional
// ones included),
// the tab column (in tabWidth units) its block-run should align to:
// the longest "NAME<mod>" header among the contiguous run of same-block
// variables it belongs to, per spec.md §4.5 "aligns continuations to a
// tab column computed from the longest sibling in the same block."
//
// Contiguity is judged by live token-stream position, not doc.Variables
// declaration order: ReplaceTokens (internal/ast/document.go) moves a
// reordered variable's tokens without reordering doc.Variables itself,
// so a block whose members were non-contiguous in the source but are
// adjacent after ReorderPass must still be read as one run here, or a
// second format() pass (which re-lexes in the new, already-grouped
// order) would compute a different, disagreeing column.
func groupRuns(doc *ast.Document) map[int]int {
	result := make(map[int]int)

	live := make([]token.Variable, 0, len(doc.Variables))
	for _, v := range doc.Variables {
		if v.StartIndex < 0 || v.StartIndex >= len(doc.Tokens) || doc.Tokens[v.StartIndex].GC {
			continue
		}
		live = append(live, v)
	}
	sort.Slice(live, func(i, j int) bool { return live[i].StartIndex < live[j].StartIndex })

	var run []token.Variable
	flush := func() {
		if len(run) == 0 {
			return
		}
		maxLen := 0
		for _, v := range run {
			if l := len(v.Name) + len(v.Modifier.String()); l > maxLen {
				maxLen = l
			}
		}
		tabs := maxLen/tabWidth + 1
		for _, v := range run {
			result[v.StartIndex] = tabs
		}
		run = nil
	}

	var lastBlock token.Block = token.BlockUnknown
	haveLast := false
	for _, v := range live {
		b := rules.VariableOrderBlock(v.Name)
		if haveLast && b == lastBlock {
			run = append(run, v)
			continue
		}
		flush()
		run = []token.Variable{v}
		lastBlock = b
		haveLast = true
	}
	flush()
	return result
}
