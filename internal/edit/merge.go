package edit

import (
	"strings"

	"github.com/Jehops/portfmt/internal/ast"
	"github.com/Jehops/portfmt/internal/errors"
	"github.com/Jehops/portfmt/internal/rules"
	"github.com/Jehops/portfmt/internal/token"
)

// MergePass is merge (spec.md §4.3): for each variable range in an
// overlay Document, replace the matching base variable's tokens if one
// exists (same name and modifier), or insert the new range in canonical
// order. A `!=` overlay variable with no non-empty RHS tokens is treated
// as a delete request when SHELL_IS_DELETE is set (default true, per
// DESIGN.md's Open Question decision).
type MergePass struct{}

func (p *MergePass) Name() string { return "merge" }

func (p *MergePass) Run(doc *ast.Document, data UserData) error {
	overlay, ok := data["overlay"].(*ast.Document)
	if !ok || overlay == nil {
		return errors.NewInvalidArgumentError("overlay", "merge requires a parsed overlay Document")
	}
	return runMerge(doc, overlay, data)
}

func runMerge(base, overlay *ast.Document, data UserData) error {
	shellIsDelete := true
	if v, ok := data["SHELL_IS_DELETE"].(bool); ok {
		shellIsDelete = v
	}
	mergeComments := false
	if v, ok := data["MERGE_COMMENTS"].(bool); ok {
		mergeComments = v
	}

	for _, ov := range overlay.Variables {
		if ov.StartIndex < 0 || ov.StartIndex >= len(overlay.Tokens) || overlay.Tokens[ov.StartIndex].GC {
			continue
		}

		words := overlay.VariableRange(ov)
		isDelete := shellIsDelete && ov.Modifier == token.Shell && allBlank(overlay, words)

		baseVarIdx := findBaseVariable(base, ov.Name, ov.Modifier)

		switch {
		case isDelete:
			// A delete request removes the name whatever modifier the base
			// assigned it with (the sentinel itself is always `!=`).
			for _, vi := range base.VariableIndex[ov.Name] {
				deleteVariableRange(base, vi)
			}
		case baseVarIdx >= 0:
			replaceVariableRange(base, baseVarIdx, overlay, ov)
		default:
			insertVariable(base, overlay, ov)
		}
	}

	if mergeComments {
		hoistOverlayComments(base, overlay)
	}
	return nil
}

// allBlank reports whether every overlay RHS token at the given indices is
// empty, the "no non-empty tokens" reading of an empty `!=` RHS.
func allBlank(overlay *ast.Document, indices []int) bool {
	for _, idx := range indices {
		if strings.TrimSpace(overlay.Tokens[idx].Data) != "" {
			return false
		}
	}
	return true
}

// findBaseVariable returns the index into base.Variables of the first
// live variable matching name and modifier, or -1.
func findBaseVariable(base *ast.Document, name string, mod token.Modifier) int {
	for _, vi := range base.VariableIndex[name] {
		v := base.Variables[vi]
		if v.StartIndex < 0 || v.StartIndex >= len(base.Tokens) || base.Tokens[v.StartIndex].GC {
			continue
		}
		if v.Modifier == mod {
			return vi
		}
	}
	return -1
}

func deleteVariableRange(base *ast.Document, baseVarIdx int) {
	v := base.Variables[baseVarIdx]
	for i := v.StartIndex; i <= v.EndIndex; i++ {
		base.MarkGC(i)
	}
}

// replaceVariableRange splices overlay's token range for ov into base's
// arena in place of baseVarIdx's existing range.
func replaceVariableRange(base *ast.Document, baseVarIdx int, overlay *ast.Document, ov token.Variable) {
	baseVar := base.Variables[baseVarIdx]
	newRange := buildOwnedRange(overlay, ov, baseVarIdx)
	splice(base, baseVar.StartIndex, baseVar.EndIndex, newRange)
	base.Variables[baseVarIdx].Modifier = ov.Modifier
}

// insertVariable registers a new Variable in base and splices its cloned
// token range in at the canonical position for its name.
func insertVariable(base *ast.Document, overlay *ast.Document, ov token.Variable) {
	varIdx := base.AppendVariable(token.Variable{Name: ov.Name, Modifier: ov.Modifier, StartIndex: -1, EndIndex: -1})
	newRange := buildOwnedRange(overlay, ov, varIdx)
	at := canonicalInsertionPoint(base, ov.Name)
	splice(base, at, at-1, newRange) // end < start: pure insertion, nothing removed
}

// buildOwnedRange clones an overlay variable's full token range
// (VARIABLE_START..END) tagging every token with ownerVarIdx, the index
// into the destination Document's Variables.
func buildOwnedRange(overlay *ast.Document, ov token.Variable, ownerVarIdx int) []token.Token {
	var out []token.Token
	for i := ov.StartIndex; i <= ov.EndIndex; i++ {
		t := overlay.Tokens[i].Clone()
		t.Variable = ownerVarIdx
		t.CondContext = nil
		out = append(out, t)
	}
	return out
}

// splice replaces base.Tokens[start..end] (inclusive; end < start means
// pure insertion before start) with replacement, then recomputes every
// owner index via ReplaceTokens.
func splice(base *ast.Document, start, end int, replacement []token.Token) {
	removed := make(map[int]bool, end-start+1)
	for i := start; i <= end; i++ {
		removed[i] = true
	}

	newTokens := make([]token.Token, 0, len(base.Tokens)+len(replacement))
	inserted := false
	for i, t := range base.Tokens {
		if i == start {
			newTokens = append(newTokens, replacement...)
			inserted = true
		}
		if removed[i] {
			continue
		}
		newTokens = append(newTokens, t)
	}
	if !inserted {
		newTokens = append(newTokens, replacement...)
	}
	base.ReplaceTokens(newTokens)
}

// canonicalInsertionPoint returns the base token index to insert a new
// top-level variable named name before: the START of the first eligible
// (depth-0, pre-boundary) variable that canonically sorts after it, or
// the bsd.port.mk boundary if none does.
func canonicalInsertionPoint(base *ast.Document, name string) int {
	boundary := base.BSDPortMkBoundary()
	best := boundary
	for _, v := range base.Variables {
		if v.StartIndex < 0 || v.StartIndex >= boundary || v.StartIndex >= len(base.Tokens) {
			continue
		}
		if base.Tokens[v.StartIndex].GC {
			continue
		}
		if len(base.Tokens[v.StartIndex].CondContext) != 0 {
			continue
		}
		if rules.CompareOrder(v.Name, name) > 0 && v.StartIndex < best {
			best = v.StartIndex
		}
	}
	return best
}

// hoistOverlayComments appends every standalone overlay COMMENT token
// (one not owned by a variable or target) to the end of base's token
// arena, preserving overlay commentary when MERGE_COMMENTS is set.
func hoistOverlayComments(base *ast.Document, overlay *ast.Document) {
	var extra []token.Token
	for _, t := range overlay.Tokens {
		if t.Variety != token.Comment || t.Data == "" {
			continue
		}
		c := t.Clone()
		c.CondContext = nil
		extra = append(extra, c)
	}
	if len(extra) == 0 {
		return
	}
	base.Tokens = append(base.Tokens, extra...)
}
