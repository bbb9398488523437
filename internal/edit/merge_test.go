package edit

import (
	"testing"

	"github.com/Jehops/portfmt/internal/ast"
	"github.com/Jehops/portfmt/internal/lexer"
	"github.com/Jehops/portfmt/internal/token"
	"github.com/stretchr/testify/require"
)

func TestMergeReplacesExistingVariable(t *testing.T) {
	doc, err := lexer.Lex("Makefile", []byte("PORTNAME=\tfoo\nCOMMENT=\told comment\n"), token.DefaultSettings())
	require.NoError(t, err)

	overlay, err := lexer.Lex("overlay", []byte("COMMENT=\tnew comment\n"), token.DefaultSettings())
	require.NoError(t, err)

	pass := &MergePass{}
	require.NoError(t, pass.Run(doc, UserData{"overlay": overlay}))

	v := doc.Variables[doc.VariableIndex["COMMENT"][len(doc.VariableIndex["COMMENT"])-1]]
	require.False(t, doc.Tokens[v.StartIndex].GC)
	words := doc.VariableRange(v)
	require.Equal(t, "new", doc.Tokens[words[0]].Data)
}

func TestMergeInsertsNewVariableInCanonicalPosition(t *testing.T) {
	doc, err := lexer.Lex("Makefile", []byte("PORTNAME=\tfoo\nCOMMENT=\tc\n"), token.DefaultSettings())
	require.NoError(t, err)

	overlay, err := lexer.Lex("overlay", []byte("CATEGORIES=\tdevel\n"), token.DefaultSettings())
	require.NoError(t, err)

	pass := &MergePass{}
	require.NoError(t, pass.Run(doc, UserData{"overlay": overlay}))

	require.Contains(t, doc.VariableIndex, "CATEGORIES")
	names := doc.VariableNamesInOrder()
	require.Equal(t, []string{"PORTNAME", "CATEGORIES", "COMMENT"}, names)
}

func TestMergeDeletesOnEmptyShellOverlay(t *testing.T) {
	doc, err := lexer.Lex("Makefile", []byte("PORTNAME=\tfoo\nPORTREVISION=\t2\n"), token.DefaultSettings())
	require.NoError(t, err)

	overlay := ast.New("overlay", token.DefaultSettings())
	appendShellDeleteSentinel(overlay, "PORTREVISION")

	pass := &MergePass{}
	require.NoError(t, pass.Run(doc, UserData{"overlay": overlay}))

	for _, vi := range doc.VariableIndex["PORTREVISION"] {
		v := doc.Variables[vi]
		require.True(t, doc.Tokens[v.StartIndex].GC, "PORTREVISION must be deleted by the empty shell overlay")
	}
}
