package ast

import (
	"testing"

	"github.com/Jehops/portfmt/internal/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func appendVariable(doc *Document, name string, mod token.Modifier, words ...string) int {
	start := token.New(token.VariableStart)
	startIdx := doc.AppendToken(start)
	for _, w := range words {
		tok := token.New(token.VariableToken)
		tok.Data = w
		doc.AppendToken(tok)
	}
	end := token.New(token.VariableEnd)
	endIdx := doc.AppendToken(end)

	vi := doc.AppendVariable(token.Variable{Name: name, Modifier: mod, StartIndex: startIdx, EndIndex: endIdx})
	for i := startIdx; i <= endIdx; i++ {
		doc.Tokens[i].Variable = vi
	}
	return vi
}

func TestAppendVariableIndexesByName(t *testing.T) {
	doc := New("<buffer>", token.DefaultSettings())
	appendVariable(doc, "PORTNAME", token.Assign, "example")
	appendVariable(doc, "USES", token.Append, "cmake")

	assert.Equal(t, []int{0}, doc.VariableIndex["PORTNAME"])
	assert.Equal(t, []int{1}, doc.VariableIndex["USES"])
}

func TestVariableRangeSkipsGCdTokens(t *testing.T) {
	doc := New("<buffer>", token.DefaultSettings())
	vi := appendVariable(doc, "USES", token.Append, "cmake", "pkgconfig")

	words := doc.VariableRange(doc.Variables[vi])
	require.Len(t, words, 2)
	assert.Equal(t, "cmake", doc.Tokens[words[0]].Data)

	doc.MarkGC(words[0])
	words = doc.VariableRange(doc.Variables[vi])
	require.Len(t, words, 1)
	assert.Equal(t, "pkgconfig", doc.Tokens[words[0]].Data)
}

func TestReplaceTokensRecomputesOwnerIndices(t *testing.T) {
	doc := New("<buffer>", token.DefaultSettings())
	vi := appendVariable(doc, "PORTNAME", token.Assign, "example")

	leading := token.New(token.Comment)
	newTokens := append([]token.Token{leading}, doc.Tokens...)
	doc.ReplaceTokens(newTokens)

	v := doc.Variables[vi]
	assert.Equal(t, token.VariableStart, doc.Tokens[v.StartIndex].Variety)
	assert.Equal(t, token.VariableEnd, doc.Tokens[v.EndIndex].Variety)
}

func TestBSDPortMkBoundaryDefaultsToEnd(t *testing.T) {
	doc := New("<buffer>", token.DefaultSettings())
	appendVariable(doc, "PORTNAME", token.Assign, "example")
	assert.Equal(t, len(doc.Tokens), doc.BSDPortMkBoundary())
}

func TestBSDPortMkBoundaryFindsInclude(t *testing.T) {
	doc := New("<buffer>", token.DefaultSettings())
	appendVariable(doc, "PORTNAME", token.Assign, "example")

	start := token.New(token.ConditionalStart)
	startIdx := doc.AppendToken(start)
	end := token.New(token.ConditionalEnd)
	endIdx := doc.AppendToken(end)
	ci := doc.AppendConditional(token.Conditional{
		Kind: token.DirectiveInclude, Name: "include", Argument: "<bsd.port.mk>",
		StartIndex: startIdx, EndIndex: endIdx,
	})
	doc.Tokens[startIdx].Conditional = ci
	doc.Tokens[endIdx].Conditional = ci

	assert.Equal(t, startIdx, doc.BSDPortMkBoundary())
}

func TestVariableNamesInOrderExcludesConditionalAndPostBoundary(t *testing.T) {
	doc := New("<buffer>", token.DefaultSettings())
	appendVariable(doc, "PORTNAME", token.Assign, "example")
	appendVariable(doc, "PORTVERSION", token.Assign, "1.0")

	start := token.New(token.ConditionalStart)
	startIdx := doc.AppendToken(start)
	end := token.New(token.ConditionalEnd)
	endIdx := doc.AppendToken(end)
	ci := doc.AppendConditional(token.Conditional{
		Kind: token.DirectiveInclude, Name: "include", Argument: "<bsd.port.mk>",
		StartIndex: startIdx, EndIndex: endIdx,
	})
	doc.Tokens[startIdx].Conditional = ci
	doc.Tokens[endIdx].Conditional = ci

	appendVariable(doc, "POST_BOUNDARY", token.Assign, "nope")

	assert.Equal(t, []string{"PORTNAME", "PORTVERSION"}, doc.VariableNamesInOrder())
}

func TestIsInDeveloperArm(t *testing.T) {
	doc := New("<buffer>", token.DefaultSettings())

	start := token.New(token.ConditionalStart)
	startIdx := doc.AppendToken(start)
	ci := doc.AppendConditional(token.Conditional{Kind: token.DirectiveIf, Name: "if", Argument: "defined(DEVELOPER)", StartIndex: startIdx})

	inner := token.New(token.VariableStart)
	inner.CondContext = []int{ci}
	innerIdx := doc.AppendToken(inner)

	assert.True(t, doc.IsInDeveloperArm(innerIdx))
	assert.False(t, doc.IsInDeveloperArm(startIdx))
}
