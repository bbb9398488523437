package lexer

import (
	"strings"

	"github.com/Jehops/portfmt/internal/token"
)

// parseConditional parses one `.directive argument` line, pushing,
// replacing, or popping the conditional-nesting stack as appropriate and
// emitting CONDITIONAL_START, zero or more CONDITIONAL_TOKENs (the
// argument split into words the same way a variable RHS is), and
// CONDITIONAL_END.
func (p *parser) parseConditional(l line, trimmed string) {
	rest := strings.TrimPrefix(trimmed, ".")
	name, argument := splitDirective(rest)
	kind := token.DirectiveKindFor(name)

	if kind == token.DirectiveEndif && len(p.condStk) == 0 {
		p.synErr.Add(l.startLine, "unmatched .endif")
		return
	}

	contextForStart := p.condContext()
	if kind.Replaces() {
		// .else/.elif attach to the same nesting level they're replacing;
		// CondContext excludes the level being replaced (it hasn't been
		// popped, just about to be).
		if len(p.condStk) > 0 {
			contextForStart = append([]int(nil), p.condStk[:len(p.condStk)-1]...)
		}
	}

	start := token.New(token.ConditionalStart)
	start.Lines = token.Range{StartLine: l.startLine, EndLine: l.endLine}
	start.CondContext = contextForStart
	startIdx := p.doc.AppendToken(start)

	words := splitWords(argument)
	for _, w := range words {
		wt := token.New(token.ConditionalToken)
		wt.Data = w
		wt.CondContext = contextForStart
		p.doc.AppendToken(wt)
	}

	end := token.New(token.ConditionalEnd)
	end.CondContext = contextForStart
	endIdx := p.doc.AppendToken(end)

	cond := token.Conditional{Kind: kind, Name: name, Argument: strings.TrimSpace(argument), StartIndex: startIdx, EndIndex: endIdx}
	condIdx := p.doc.AppendConditional(cond)
	for i := startIdx; i <= endIdx; i++ {
		p.doc.Tokens[i].Conditional = condIdx
	}

	switch {
	case kind.Pushes():
		p.condStk = append(p.condStk, condIdx)
	case kind.Replaces():
		if len(p.condStk) > 0 {
			p.condStk[len(p.condStk)-1] = condIdx
		} else {
			p.condStk = append(p.condStk, condIdx)
		}
	case kind.Pops():
		p.condStk = p.condStk[:len(p.condStk)-1]
	}
}

// splitDirective splits ".if defined(FOO)" (already stripped of the
// leading dot, so "if defined(FOO)") into ("if", "defined(FOO)").
func splitDirective(rest string) (name, argument string) {
	i := 0
	for i < len(rest) && rest[i] != ' ' && rest[i] != '\t' {
		i++
	}
	name = rest[:i]
	argument = strings.TrimLeft(rest[i:], " \t")
	return name, argument
}
