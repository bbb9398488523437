// Package lexer turns a port Makefile's byte stream into an ast.Document:
// line-continuation folding, conditional-nesting tracking, and the
// line-classification grammar of spec.md §4.1.
package lexer

import (
	"strconv"
	"strings"

	"github.com/Jehops/portfmt/internal/ast"
	"github.com/Jehops/portfmt/internal/errors"
	"github.com/Jehops/portfmt/internal/token"
)

// line is one logical (continuation-folded) line.
type line struct {
	text      string
	startLine int
	endLine   int
	// indented is true when the first physical line of this logical line
	// begins with a tab, marking it a recipe line under the most recent
	// target header.
	indented bool
}

// Lex parses data (the contents of origin) into an ast.Document. It
// returns an *errors.SyntaxError (wrapping every line failure found,
// spec.md §7) if the input cannot be fully parsed; the returned Document
// is nil in that case since a document with syntax errors is discarded
// in full.
func Lex(origin string, data []byte, settings token.Settings) (*ast.Document, error) {
	lines, err := foldLines(data)
	if err != nil {
		synErr := errors.NewSyntaxError(origin)
		synErr.Add(0, err.Error())
		return nil, synErr
	}

	p := &parser{
		doc:     ast.New(origin, settings),
		synErr:  errors.NewSyntaxError(origin),
		condStk: nil,
	}

	var pt *pendingTarget
	for _, l := range lines {
		p.classify(l, &pt)
	}
	if pt != nil {
		p.closeTarget(pt)
	}

	if len(p.condStk) != 0 {
		p.synErr.Add(lines[len(lines)-1].endLine, "unclosed conditional at end of input")
	}

	if p.synErr.HasErrors() {
		return nil, p.synErr
	}

	p.index()
	return p.doc, nil
}

// foldLines splits data on '\n' and folds any line ending with an
// unescaped trailing backslash onto the next, per spec.md §4.1. An
// unclosed continuation at EOF is a parse error.
func foldLines(data []byte) ([]line, error) {
	raw := strings.Split(string(data), "\n")
	// A trailing "" element from a final '\n' is not a line of its own.
	if len(raw) > 0 && raw[len(raw)-1] == "" {
		raw = raw[:len(raw)-1]
	}

	var out []line
	i := 0
	for i < len(raw) {
		startLine := i + 1
		indented := strings.HasPrefix(raw[i], "\t")
		var sb strings.Builder
		sb.WriteString(raw[i])
		endLine := i + 1

		for continues(sb.String()) {
			sb2 := strings.TrimSuffix(sb.String(), "\\")
			i++
			if i >= len(raw) {
				return nil, unclosedContinuationError{line: startLine}
			}
			sb.Reset()
			sb.WriteString(sb2)
			sb.WriteString(" ")
			sb.WriteString(strings.TrimLeft(raw[i], " \t"))
			endLine = i + 1
		}
		out = append(out, line{text: sb.String(), startLine: startLine, endLine: endLine, indented: indented})
		i++
	}
	return out, nil
}

type unclosedContinuationError struct{ line int }

func (e unclosedContinuationError) Error() string {
	return "unclosed line continuation starting at line " + strconv.Itoa(e.line)
}

// continues reports whether s ends in an unescaped backslash (an odd
// number of trailing backslashes).
func continues(s string) bool {
	n := 0
	for i := len(s) - 1; i >= 0 && s[i] == '\\'; i-- {
		n++
	}
	return n%2 == 1
}
