package lexer

import (
	"strings"

	"github.com/Jehops/portfmt/internal/token"
)

// tryParseAssignment reports whether trimmed looks like a variable
// assignment (`NAME [MOD]= VALUE`), without building any tokens. Used as
// the classification predicate before parseVariable commits to it.
func tryParseAssignment(trimmed string) bool {
	_, _, _, ok := findAssignment(trimmed)
	return ok
}

// findAssignment scans s for the first depth-0 assignment operator
// (+=, :=, ?=, !=, or bare =) and returns the variable name, its
// modifier, and the index into s where the RHS value begins.
func findAssignment(s string) (name string, mod token.Modifier, rhsStart int, ok bool) {
	depth := 0
	i := 0
	for i < len(s) {
		c := s[i]
		if c == '$' && i+1 < len(s) && (s[i+1] == '{' || s[i+1] == '(') {
			depth++
			i += 2
			continue
		}
		if depth > 0 && (c == '}' || c == ')') {
			depth--
			i++
			continue
		}
		if depth == 0 {
			if i+1 < len(s) {
				switch s[i : i+2] {
				case "+=":
					return finalizeAssignment(s, i, 2, token.Append)
				case ":=":
					return finalizeAssignment(s, i, 2, token.Expand)
				case "?=":
					return finalizeAssignment(s, i, 2, token.Default)
				case "!=":
					return finalizeAssignment(s, i, 2, token.Shell)
				}
			}
			if c == '=' {
				return finalizeAssignment(s, i, 1, token.Assign)
			}
		}
		i++
	}
	return "", 0, 0, false
}

func finalizeAssignment(s string, opStart, opLen int, mod token.Modifier) (string, token.Modifier, int, bool) {
	name := strings.TrimRight(s[:opStart], " \t")
	if name == "" || strings.ContainsAny(name, " \t") {
		return "", 0, 0, false
	}
	return name, mod, opStart + opLen, true
}

// parseVariable emits VARIABLE_START, one VARIABLE_TOKEN per
// whitespace-separated RHS word, and VARIABLE_END for one assignment
// line, and registers the Variable.
func (p *parser) parseVariable(l line, trimmed string) {
	name, mod, rhsStart, ok := findAssignment(trimmed)
	if !ok {
		p.synErr.Add(l.startLine, "malformed variable assignment")
		return
	}
	rhs := strings.TrimLeft(trimmed[rhsStart:], " \t")

	start := token.New(token.VariableStart)
	start.Lines = token.Range{StartLine: l.startLine, EndLine: l.endLine}
	start.CondContext = p.condContext()
	startIdx := p.doc.AppendToken(start)

	words := splitWords(rhs)
	for _, w := range words {
		wt := token.New(token.VariableToken)
		wt.Data = w
		wt.CondContext = p.condContext()
		p.doc.AppendToken(wt)
	}

	end := token.New(token.VariableEnd)
	end.CondContext = p.condContext()
	endIdx := p.doc.AppendToken(end)

	v := token.Variable{Name: name, Modifier: mod, StartIndex: startIdx, EndIndex: endIdx}
	varIdx := p.doc.AppendVariable(v)

	for i := startIdx; i <= endIdx; i++ {
		p.doc.Tokens[i].Variable = varIdx
	}
}

// splitWords splits s on unescaped whitespace, treating `${...}` and
// `$(...)` as opaque (bracket-nesting-aware, so e.g. `${PREFIX}/bin` is
// one word even though it contains no top-level whitespace, and a
// reference that itself contains a space, like `${FOO:S/a b/c/}`, is
// still one word because the space is inside the bracket).
func splitWords(s string) []string {
	var words []string
	var cur strings.Builder
	depth := 0
	escaped := false

	flush := func() {
		if cur.Len() > 0 {
			words = append(words, cur.String())
			cur.Reset()
		}
	}

	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case escaped:
			cur.WriteByte(c)
			escaped = false
		case c == '\\':
			cur.WriteByte(c)
			escaped = true
		case c == '$' && i+1 < len(s) && (s[i+1] == '{' || s[i+1] == '('):
			depth++
			cur.WriteByte(c)
		case depth > 0 && (c == '}' || c == ')'):
			depth--
			cur.WriteByte(c)
		case depth == 0 && (c == ' ' || c == '\t'):
			flush()
		default:
			cur.WriteByte(c)
		}
	}
	flush()
	return words
}
