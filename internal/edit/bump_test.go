package edit

import (
	"testing"

	"github.com/Jehops/portfmt/internal/lexer"
	"github.com/Jehops/portfmt/internal/token"
	"github.com/stretchr/testify/require"
)

// TestBumpRevisionE5 is spec.md §8 E5: PORTREVISION present is incremented.
func TestBumpRevisionE5(t *testing.T) {
	doc, err := lexer.Lex("Makefile", []byte("PORTNAME=\tfoo\nPORTREVISION=\t3\n"), token.DefaultSettings())
	require.NoError(t, err)

	pass := &BumpRevisionPass{}
	require.NoError(t, pass.Run(doc, nil))

	v := doc.Variables[doc.VariableIndex["PORTREVISION"][0]]
	words := doc.VariableRange(v)
	require.Equal(t, "4", doc.Tokens[words[0]].Data)
}

// TestBumpRevisionE4 is spec.md §8 E4: PORTREVISION absent is synthesized
// as PORTREVISION=1.
func TestBumpRevisionE4(t *testing.T) {
	doc, err := lexer.Lex("Makefile", []byte("PORTNAME=\tfoo\n"), token.DefaultSettings())
	require.NoError(t, err)

	pass := &BumpRevisionPass{}
	require.NoError(t, pass.Run(doc, nil))

	idxs := doc.VariableIndex["PORTREVISION"]
	require.NotEmpty(t, idxs)
	v := doc.Variables[idxs[len(idxs)-1]]
	require.False(t, doc.Tokens[v.StartIndex].GC)
	words := doc.VariableRange(v)
	require.Equal(t, "1", doc.Tokens[words[0]].Data)
}

func TestBumpRevisionNonNumericFails(t *testing.T) {
	doc, err := lexer.Lex("Makefile", []byte("PORTREVISION=\tabc\n"), token.DefaultSettings())
	require.NoError(t, err)

	pass := &BumpRevisionPass{}
	err = pass.Run(doc, nil)
	require.Error(t, err)
}

func TestBumpEpochIncrements(t *testing.T) {
	doc, err := lexer.Lex("Makefile", []byte("PORTEPOCH=\t1\n"), token.DefaultSettings())
	require.NoError(t, err)

	pass := &BumpEpochPass{}
	require.NoError(t, pass.Run(doc, nil))

	v := doc.Variables[doc.VariableIndex["PORTEPOCH"][0]]
	words := doc.VariableRange(v)
	require.Equal(t, "2", doc.Tokens[words[0]].Data)
}
