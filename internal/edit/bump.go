package edit

import (
	"strconv"

	"github.com/Jehops/portfmt/internal/ast"
	"github.com/Jehops/portfmt/internal/errors"
	"github.com/Jehops/portfmt/internal/token"
)

// BumpRevisionPass is bump-revision (spec.md §4.3): increments
// PORTREVISION if present (failing with ExpectedIntError on a non-numeric
// value), or synthesizes `PORTREVISION= 1` and merges it in if absent.
type BumpRevisionPass struct{}

func (p *BumpRevisionPass) Name() string { return "bump-revision" }

func (p *BumpRevisionPass) Run(doc *ast.Document, data UserData) error {
	return bumpInt(doc, data, "PORTREVISION")
}

// BumpEpochPass is bump-epoch (spec.md §4.3): the same increment-or-synthesize
// behavior as BumpRevisionPass, applied to PORTEPOCH.
type BumpEpochPass struct{}

func (p *BumpEpochPass) Name() string { return "bump-epoch" }

func (p *BumpEpochPass) Run(doc *ast.Document, data UserData) error {
	return bumpInt(doc, data, "PORTEPOCH")
}

func bumpInt(doc *ast.Document, _ UserData, name string) error {
	idxs := doc.VariableIndex[name]
	for _, vi := range idxs {
		v := doc.Variables[vi]
		if v.StartIndex < 0 || doc.Tokens[v.StartIndex].GC {
			continue
		}
		words := doc.VariableRange(v)
		if len(words) == 0 {
			continue
		}
		tokIdx := words[0]
		raw := doc.Tokens[tokIdx].Data
		n, err := strconv.Atoi(raw)
		if err != nil {
			return errors.NewExpectedIntError(name, raw)
		}
		doc.Tokens[tokIdx].Data = strconv.Itoa(n + 1)
		doc.MarkEdited(tokIdx)
		return nil
	}

	// Absent: synthesize an assignment and merge it in before the first
	// top-level variable that sorts after it, the position
	// canonical-reorder would put it anyway.
	overlay := ast.New(doc.Origin+" (synthesized)", doc.Settings)
	appendSynthesizedAssignment(overlay, name, "1")
	return runMerge(doc, overlay, UserData{})
}

func appendSynthesizedAssignment(doc *ast.Document, name, value string) {
	start := token.New(token.VariableStart)
	start.Edited = true
	startIdx := doc.AppendToken(start)

	val := token.New(token.VariableToken)
	val.Data = value
	val.Edited = true
	doc.AppendToken(val)

	end := token.New(token.VariableEnd)
	end.Edited = true
	endIdx := doc.AppendToken(end)

	v := token.Variable{Name: name, Modifier: token.Assign, StartIndex: startIdx, EndIndex: endIdx}
	vi := doc.AppendVariable(v)
	for i := startIdx; i <= endIdx; i++ {
		doc.Tokens[i].Variable = vi
	}
}
