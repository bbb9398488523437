// Package ast holds the Parser State component from spec.md §4.3: the
// token arena produced by internal/lexer, the derived indices edit
// passes and the emitter query, and per-token edit bookkeeping.
//
// Tokens are arena-indexed rather than individually heap-allocated and
// pointer-shared, per the Design Notes' arena recommendation: an edit
// pass that moves or replaces token ranges (canonical-reorder, merge)
// builds a full replacement slice from clones (token.Token.Clone) of the
// ranges it keeps and installs it with Document.ReplaceTokens, which
// recomputes every owning Variable/Target/Conditional's Start/EndIndex.
// Other passes mark tokens GC'd or rewrite them in place.
package ast

import (
	"github.com/Jehops/portfmt/internal/rules"
	"github.com/Jehops/portfmt/internal/token"
)

// Document is one parsed Makefile: its token arena plus every index
// derived from it.
type Document struct {
	Origin string

	Tokens       []token.Token
	Variables    []token.Variable
	Targets      []token.Target
	Conditionals []token.Conditional

	Settings token.Settings

	// VariableIndex maps a variable name to the indices into Variables of
	// every occurrence, in document order.
	VariableIndex map[string][]int

	// OptionsIndex is the union of names declared in OPTIONS_DEFINE,
	// OPTIONS_GROUP_*, and per-group helpers.
	OptionsIndex map[string]bool

	// TargetIndex maps a target name to the index into Targets of its
	// first declaration.
	TargetIndex map[string]int
}

// New creates an empty Document ready for the lexer to populate.
func New(origin string, settings token.Settings) *Document {
	return &Document{
		Origin:        origin,
		Settings:      settings,
		VariableIndex: make(map[string][]int),
		OptionsIndex:  make(map[string]bool),
		TargetIndex:   make(map[string]int),
	}
}

// AppendToken appends a token to the arena and returns its index.
func (d *Document) AppendToken(t token.Token) int {
	d.Tokens = append(d.Tokens, t)
	return len(d.Tokens) - 1
}

// AppendVariable registers a new Variable and indexes it by name.
func (d *Document) AppendVariable(v token.Variable) int {
	idx := len(d.Variables)
	d.Variables = append(d.Variables, v)
	d.VariableIndex[v.Name] = append(d.VariableIndex[v.Name], idx)
	return idx
}

// AppendTarget registers a new Target and indexes its names.
func (d *Document) AppendTarget(t token.Target) int {
	idx := len(d.Targets)
	d.Targets = append(d.Targets, t)
	for _, name := range t.Names {
		if _, ok := d.TargetIndex[name]; !ok {
			d.TargetIndex[name] = idx
		}
	}
	return idx
}

// AppendConditional registers a new Conditional.
func (d *Document) AppendConditional(c token.Conditional) int {
	idx := len(d.Conditionals)
	d.Conditionals = append(d.Conditionals, c)
	return idx
}

// VariableRange returns the token indices of the VARIABLE_TOKEN words
// belonging to variable v (the tokens strictly between its
// VARIABLE_START and VARIABLE_END, skipping any already GC'd).
func (d *Document) VariableRange(v token.Variable) []int {
	var indices []int
	for i := v.StartIndex + 1; i < v.EndIndex; i++ {
		if i < 0 || i >= len(d.Tokens) {
			continue
		}
		if d.Tokens[i].GC {
			continue
		}
		indices = append(indices, i)
	}
	return indices
}

// ReplaceTokens installs newTokens as the Document's token arena and
// recomputes every Variable/Target/Conditional StartIndex/EndIndex from
// the new positions of their owned START/END tokens. Edit passes that
// reorder or splice ranges (canonical-reorder, merge) build the full
// replacement slice by cloning the ranges they keep and then call this
// once, rather than patching indices incrementally.
func (d *Document) ReplaceTokens(newTokens []token.Token) {
	d.Tokens = newTokens
	for i, t := range newTokens {
		switch t.Variety {
		case token.VariableStart:
			if t.Variable >= 0 && t.Variable < len(d.Variables) {
				d.Variables[t.Variable].StartIndex = i
			}
		case token.VariableEnd:
			if t.Variable >= 0 && t.Variable < len(d.Variables) {
				d.Variables[t.Variable].EndIndex = i
			}
		case token.TargetStart:
			if t.Target >= 0 && t.Target < len(d.Targets) {
				d.Targets[t.Target].StartIndex = i
			}
		case token.TargetEnd:
			if t.Target >= 0 && t.Target < len(d.Targets) {
				d.Targets[t.Target].EndIndex = i
			}
		case token.ConditionalStart:
			if t.Conditional >= 0 && t.Conditional < len(d.Conditionals) {
				d.Conditionals[t.Conditional].StartIndex = i
			}
		case token.ConditionalEnd:
			if t.Conditional >= 0 && t.Conditional < len(d.Conditionals) {
				d.Conditionals[t.Conditional].EndIndex = i
			}
		}
	}
}

// MarkGC marks the token at idx as garbage: logically absent from the
// stream but still addressable until the Document is discarded.
func (d *Document) MarkGC(idx int) {
	if idx < 0 || idx >= len(d.Tokens) {
		return
	}
	d.Tokens[idx].GC = true
}

// MarkEdited marks the token at idx as edited.
func (d *Document) MarkEdited(idx int) {
	if idx < 0 || idx >= len(d.Tokens) {
		return
	}
	d.Tokens[idx].Edited = true
}

// IsInDeveloperArm reports whether the token at idx is nested under a
// developer-only conditional arm (see token.IsDeveloperArm), by walking
// its CondContext and checking each ancestor Conditional's argument.
func (d *Document) IsInDeveloperArm(idx int) bool {
	if idx < 0 || idx >= len(d.Tokens) {
		return false
	}
	for _, condIdx := range d.Tokens[idx].CondContext {
		if condIdx < 0 || condIdx >= len(d.Conditionals) {
			continue
		}
		if token.IsDeveloperArm(d.Conditionals[condIdx].Argument) {
			return true
		}
	}
	return false
}

// LiveTokens returns the indices of every non-GC token in document
// order, the sequence the emitter walks.
func (d *Document) LiveTokens() []int {
	indices := make([]int, 0, len(d.Tokens))
	for i, t := range d.Tokens {
		if !t.GC {
			indices = append(indices, i)
		}
	}
	return indices
}

// VariableNamesInOrder returns every variable name in document order,
// deduplicated by first occurrence, restricted to top-level (conditional
// depth 0) ranges that precede the first bsd.port.mk include. This is
// exactly the "observed" sequence lint-order diffs against "canonical."
// Order comes from the live token stream, since ReplaceTokens moves
// ranges without reordering d.Variables.
func (d *Document) VariableNamesInOrder() []string {
	seen := make(map[string]bool)
	var names []string
	boundary := d.BSDPortMkBoundary()
	for i := 0; i < boundary && i < len(d.Tokens); i++ {
		t := d.Tokens[i]
		if t.Variety != token.VariableStart || t.GC || len(t.CondContext) != 0 {
			continue
		}
		if t.Variable < 0 || t.Variable >= len(d.Variables) {
			continue
		}
		name := d.Variables[t.Variable].Name
		if seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	return names
}

// BSDPortMkBoundary returns the token index of the first
// `.include <bsd.port.mk>` (or sibling) conditional's START token, or
// len(Tokens) if none exists. Everything at or after this index is
// outside the user-editable region canonical-reorder is allowed to
// touch.
func (d *Document) BSDPortMkBoundary() int {
	for _, c := range d.Conditionals {
		if rules.IsIncludeBSDPortMk(c.Name, c.Argument) {
			return c.StartIndex
		}
	}
	return len(d.Tokens)
}
