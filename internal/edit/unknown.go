package edit

import (
	"strings"

	"github.com/Jehops/portfmt/internal/ast"
	"github.com/Jehops/portfmt/internal/rules"
	"github.com/Jehops/portfmt/internal/token"
)

// UnknownVariablesPass is output-unknown-variables (spec.md §4.3): every
// variable name whose block is UNKNOWN, deduplicated in first-seen
// order, plus any name derived from a declared option's `<O>_USE`/
// `<O>_VARS` helper that is itself unknown. The result is written to
// data["result"] (a *[]string) rather than returned, since a Pass's
// signature carries no typed output beyond the mutated Document.
type UnknownVariablesPass struct{}

func (p *UnknownVariablesPass) Name() string { return "output-unknown-variables" }

func (p *UnknownVariablesPass) Run(doc *ast.Document, data UserData) error {
	seen := make(map[string]bool)
	var names []string
	add := func(n string) {
		if n == "" || seen[n] {
			return
		}
		seen[n] = true
		names = append(names, n)
	}

	for _, v := range doc.Variables {
		if v.StartIndex < 0 || v.StartIndex >= len(doc.Tokens) || doc.Tokens[v.StartIndex].GC {
			continue
		}
		if rules.VariableOrderBlock(v.Name) == token.BlockUnknown {
			add(v.Name)
		}
	}

	for opt := range doc.OptionsIndex {
		for _, suffix := range []string{"_USE", "_VARS"} {
			helperName := opt + suffix
			for _, vi := range doc.VariableIndex[helperName] {
				v := doc.Variables[vi]
				if v.StartIndex < 0 || doc.Tokens[v.StartIndex].GC {
					continue
				}
				for _, idx := range doc.VariableRange(v) {
					derived := derivedVariableName(doc.Tokens[idx].Data)
					if derived != "" && rules.VariableOrderBlock(derived) == token.BlockUnknown {
						add(derived)
					}
				}
			}
		}
	}

	if result, ok := data["result"].(*[]string); ok {
		*result = names
	}
	return nil
}

// derivedVariableName extracts the variable name from an `<O>_VARS`/
// `<O>_USE` entry of the form `NAME=value` or `NAME+=value` (also `:=`,
// `?=`, `!=`). A word with no `=` yields "".
func derivedVariableName(word string) string {
	if eq := strings.IndexByte(word, '='); eq != -1 {
		return strings.TrimRight(word[:eq], "+:?!")
	}
	return ""
}

// UnknownTargetsPass is output-unknown-targets (spec.md §4.3): every
// target name not recognized by rules.IsKnownTarget, deduplicated in
// first-seen order.
type UnknownTargetsPass struct{}

func (p *UnknownTargetsPass) Name() string { return "output-unknown-targets" }

func (p *UnknownTargetsPass) Run(doc *ast.Document, data UserData) error {
	seen := make(map[string]bool)
	var names []string
	for _, t := range doc.Targets {
		if t.StartIndex < 0 || t.StartIndex >= len(doc.Tokens) || doc.Tokens[t.StartIndex].GC {
			continue
		}
		for _, n := range t.Names {
			if rules.IsKnownTarget(n) || seen[n] {
				continue
			}
			seen[n] = true
			names = append(names, n)
		}
	}

	if result, ok := data["result"].(*[]string); ok {
		*result = names
	}
	return nil
}
