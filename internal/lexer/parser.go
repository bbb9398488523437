package lexer

import (
	"strings"

	"github.com/Jehops/portfmt/internal/ast"
	"github.com/Jehops/portfmt/internal/errors"
	"github.com/Jehops/portfmt/internal/token"
)

// parser holds the mutable state used while walking the folded-line
// sequence: the Document being built, the accumulated syntax error, and
// the conditional-nesting stack (indices into doc.Conditionals).
type parser struct {
	doc     *ast.Document
	synErr  *errors.SyntaxError
	condStk []int
}

// pendingTarget tracks a target block while its recipe lines are still
// being accumulated.
type pendingTarget struct {
	target      token.Target
	cmdStartIdx int // index of TARGET_COMMAND_START once opened, else -1
	hasCommands bool
}

// condContext returns a copy of the current conditional-nesting stack,
// for attaching to newly created tokens.
func (p *parser) condContext() []int {
	if len(p.condStk) == 0 {
		return nil
	}
	return append([]int(nil), p.condStk...)
}

// classify dispatches one folded line per the precedence chain of
// spec.md §4.1.
func (p *parser) classify(l line, pt **pendingTarget) {
	trimmed := strings.TrimSpace(l.text)

	switch {
	case trimmed == "":
		p.closeTargetIfOpen(pt)
		p.emitComment(l, "")

	case strings.HasPrefix(trimmed, "#"):
		p.closeTargetIfOpen(pt)
		p.emitComment(l, trimmed)

	case l.indented && *pt != nil:
		p.appendRecipe(*pt, l)

	case !l.indented && strings.HasPrefix(trimmed, "."):
		p.closeTargetIfOpen(pt)
		p.parseConditional(l, trimmed)

	case !l.indented && tryParseAssignment(trimmed):
		p.closeTargetIfOpen(pt)
		p.parseVariable(l, trimmed)

	case !l.indented && hasUnbracketedColonOrBang(trimmed):
		p.closeTargetIfOpen(pt)
		*pt = p.startTarget(l, trimmed)

	default:
		p.synErr.Add(l.startLine, "unparseable line")
	}
}

// closeTargetIfOpen finalizes *pt, if any, emitting its TARGET_END token.
func (p *parser) closeTargetIfOpen(pt **pendingTarget) {
	if *pt == nil {
		return
	}
	p.closeTarget(*pt)
	*pt = nil
}

func (p *parser) closeTarget(pt *pendingTarget) {
	if pt.hasCommands {
		t := token.New(token.TargetCommandEnd)
		t.CondContext = p.condContext()
		p.doc.AppendToken(t)
	}
	end := token.New(token.TargetEnd)
	end.CondContext = p.condContext()
	endIdx := p.doc.AppendToken(end)

	pt.target.EndIndex = endIdx
	targetIdx := p.doc.AppendTarget(pt.target)
	p.doc.Tokens[pt.target.StartIndex].Target = targetIdx
	p.doc.Tokens[endIdx].Target = targetIdx
}

// emitComment appends a single COMMENT token (blank lines carry empty
// Data, preserving vertical spacing per spec.md §4.1).
func (p *parser) emitComment(l line, text string) {
	t := token.New(token.Comment)
	t.Lines = token.Range{StartLine: l.startLine, EndLine: l.endLine}
	t.Data = text
	t.CondContext = p.condContext()
	p.doc.AppendToken(t)
}
