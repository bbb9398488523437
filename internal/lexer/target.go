package lexer

import (
	"strings"

	"github.com/Jehops/portfmt/internal/token"
)

// hasUnbracketedColonOrBang reports whether s contains a `:` or `!`
// outside of `${...}`/`$(...)` nesting, the signal that a non-indented
// line is a target header rather than an unparseable line.
func hasUnbracketedColonOrBang(s string) bool {
	depth := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '$' && i+1 < len(s) && (s[i+1] == '{' || s[i+1] == '('):
			depth++
			i++
		case depth > 0 && (c == '}' || c == ')'):
			depth--
		case depth == 0 && (c == ':' || c == '!'):
			return true
		}
	}
	return false
}

// splitTargetHeader splits a target header line into names, dependencies,
// order-only dependencies (after a lone "|"), and trailing comment, per
// spec.md §4.1. The first unbracketed ':' or '!' is the name/deps
// boundary; a second ':' immediately after is part of the separator
// ("::").
func splitTargetHeader(s string) (names, deps, orderOnly []string, comment string, ok bool) {
	depth := 0
	boundary := -1
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '$' && i+1 < len(s) && (s[i+1] == '{' || s[i+1] == '('):
			depth++
			i++
		case depth > 0 && (c == '}' || c == ')'):
			depth--
		case depth == 0 && (c == ':' || c == '!'):
			boundary = i
		}
		if boundary != -1 {
			break
		}
	}
	if boundary == -1 {
		return nil, nil, nil, "", false
	}

	namesPart := s[:boundary]
	rest := s[boundary+1:]
	if s[boundary] == ':' && strings.HasPrefix(rest, ":") {
		rest = rest[1:] // consume the second ':' of "::"
	}

	if idx := strings.Index(rest, "#"); idx != -1 {
		comment = strings.TrimSpace(rest[idx+1:])
		rest = rest[:idx]
	}

	names = strings.Fields(namesPart)
	if len(names) == 0 {
		return nil, nil, nil, "", false
	}

	fields := strings.Fields(rest)
	orderMode := false
	for _, f := range fields {
		if f == "|" {
			orderMode = true
			continue
		}
		if orderMode {
			orderOnly = append(orderOnly, f)
		} else {
			deps = append(deps, f)
		}
	}
	return names, deps, orderOnly, comment, true
}

// startTarget parses a target header line and opens a new pendingTarget,
// emitting TARGET_START.
func (p *parser) startTarget(l line, trimmed string) *pendingTarget {
	names, deps, orderOnly, comment, ok := splitTargetHeader(trimmed)
	if !ok {
		p.synErr.Add(l.startLine, "target header missing ':' or '!'")
		return nil
	}

	start := token.New(token.TargetStart)
	start.Lines = token.Range{StartLine: l.startLine, EndLine: l.endLine}
	start.CondContext = p.condContext()
	startIdx := p.doc.AppendToken(start)

	return &pendingTarget{
		target: token.Target{
			Names:        names,
			Dependencies: deps,
			OrderOnly:    orderOnly,
			Comment:      comment,
			StartIndex:   startIdx,
		},
		cmdStartIdx: -1,
	}
}

// appendRecipe appends one recipe line's token, opening
// TARGET_COMMAND_START on first use.
func (p *parser) appendRecipe(pt *pendingTarget, l line) {
	if !pt.hasCommands {
		cs := token.New(token.TargetCommandStart)
		cs.CondContext = p.condContext()
		pt.cmdStartIdx = p.doc.AppendToken(cs)
		pt.hasCommands = true
	}
	text := strings.TrimPrefix(l.text, "\t")
	ct := token.New(token.TargetCommandToken)
	ct.Data = text
	ct.Lines = token.Range{StartLine: l.startLine, EndLine: l.endLine}
	ct.CondContext = p.condContext()
	p.doc.AppendToken(ct)
}
