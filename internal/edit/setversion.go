package edit

import (
	"github.com/Jehops/portfmt/internal/ast"
	"github.com/Jehops/portfmt/internal/errors"
	"github.com/Jehops/portfmt/internal/token"
)

// SetVersionPass is set-version (spec.md §4.3): determines which of
// DISTVERSION/PORTVERSION is in use (preferring whichever is present,
// defaulting to DISTVERSION), builds a synthetic overlay assigning the
// new value, and — if a non-zero PORTREVISION is present — a
// `PORTREVISION!=` sentinel the merge pass reads as a delete request, so
// a version bump always clears a stale revision (spec.md §8 E6).
type SetVersionPass struct{}

func (p *SetVersionPass) Name() string { return "set-version" }

func (p *SetVersionPass) Run(doc *ast.Document, data UserData) error {
	version, ok := data["version"].(string)
	if !ok || version == "" {
		return errors.NewInvalidArgumentError("version", "set-version requires a non-empty version string")
	}

	name := "DISTVERSION"
	if len(doc.VariableIndex["DISTVERSION"]) == 0 && len(doc.VariableIndex["PORTVERSION"]) > 0 {
		name = "PORTVERSION"
	}

	overlay := ast.New(doc.Origin+" (set-version overlay)", doc.Settings)
	appendSynthesizedAssignment(overlay, name, version)

	if hasNonZeroPortRevision(doc) {
		appendShellDeleteSentinel(overlay, "PORTREVISION")
	}

	return runMerge(doc, overlay, UserData{"SHELL_IS_DELETE": true})
}

func hasNonZeroPortRevision(doc *ast.Document) bool {
	for _, vi := range doc.VariableIndex["PORTREVISION"] {
		v := doc.Variables[vi]
		if v.StartIndex < 0 || doc.Tokens[v.StartIndex].GC {
			continue
		}
		words := doc.VariableRange(v)
		if len(words) > 0 && doc.Tokens[words[0]].Data != "0" {
			return true
		}
	}
	return false
}

// appendShellDeleteSentinel synthesizes `NAME!=` with no RHS tokens, the
// merge pass's SHELL_IS_DELETE convention for "remove this variable."
func appendShellDeleteSentinel(doc *ast.Document, name string) {
	start := token.New(token.VariableStart)
	start.Edited = true
	startIdx := doc.AppendToken(start)

	end := token.New(token.VariableEnd)
	end.Edited = true
	endIdx := doc.AppendToken(end)

	v := token.Variable{Name: name, Modifier: token.Shell, StartIndex: startIdx, EndIndex: endIdx}
	vi := doc.AppendVariable(v)
	for i := startIdx; i <= endIdx; i++ {
		doc.Tokens[i].Variable = vi
	}
}
