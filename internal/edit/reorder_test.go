package edit

import (
	"testing"

	"github.com/Jehops/portfmt/internal/lexer"
	"github.com/Jehops/portfmt/internal/token"
	"github.com/stretchr/testify/require"
)

// TestReorderE1 is spec.md §8 E1: `COMMENT= c\nPORTNAME=foo\n` reorders
// PORTNAME before COMMENT (PORTNAME is in the portname block, COMMENT is
// in the later maintainer block).
func TestReorderE1(t *testing.T) {
	doc, err := lexer.Lex("Makefile", []byte("COMMENT=\tc\nPORTNAME=\tfoo\n"), token.DefaultSettings())
	require.NoError(t, err)

	pass := &ReorderPass{}
	require.NoError(t, pass.Run(doc, nil))

	require.Equal(t, []string{"PORTNAME", "COMMENT"}, doc.VariableNamesInOrder())
}

func TestReorderGroupsSeparatedByBlankLine(t *testing.T) {
	doc, err := lexer.Lex("Makefile", []byte("CATEGORIES=\tdevel\nPORTNAME=\tfoo\n"), token.DefaultSettings())
	require.NoError(t, err)

	pass := &ReorderPass{}
	require.NoError(t, pass.Run(doc, nil))

	live := doc.LiveTokens()
	var sawBlank bool
	for _, idx := range live {
		if doc.Tokens[idx].Variety == token.Comment && doc.Tokens[idx].Data == "" {
			sawBlank = true
		}
	}
	require.True(t, sawBlank, "expected a blank-line separator between the portname and categories blocks")
}

func TestReorderSkipsConditionalRanges(t *testing.T) {
	src := ".if defined(FOO)\nPORTNAME=\tbar\n.endif\nCOMMENT=\tc\n"
	doc, err := lexer.Lex("Makefile", []byte(src), token.DefaultSettings())
	require.NoError(t, err)

	pass := &ReorderPass{}
	require.NoError(t, pass.Run(doc, nil))

	require.Len(t, doc.Variables, 2)
	var portname token.Variable
	for _, v := range doc.Variables {
		if v.Name == "PORTNAME" {
			portname = v
		}
	}
	require.NotEmpty(t, portname.Name)
	require.NotEmpty(t, doc.Tokens[portname.StartIndex].CondContext, "PORTNAME inside .if must stay inside it")
}
