package edit

import (
	"testing"

	"github.com/Jehops/portfmt/internal/lexer"
	"github.com/Jehops/portfmt/internal/token"
	"github.com/stretchr/testify/require"
)

func TestUnknownVariablesReportsUnrecognizedNames(t *testing.T) {
	doc, err := lexer.Lex("Makefile", []byte("PORTNAME=\tfoo\nSOME_MADE_UP_VAR=\tbar\n"), token.DefaultSettings())
	require.NoError(t, err)

	pass := &UnknownVariablesPass{}
	var result []string
	require.NoError(t, pass.Run(doc, UserData{"result": &result}))

	require.Contains(t, result, "SOME_MADE_UP_VAR")
	require.NotContains(t, result, "PORTNAME")
}

func TestUnknownTargetsReportsUnrecognizedNames(t *testing.T) {
	doc, err := lexer.Lex("Makefile", []byte("do-made-up-thing:\n\techo hi\n"), token.DefaultSettings())
	require.NoError(t, err)

	pass := &UnknownTargetsPass{}
	var result []string
	require.NoError(t, pass.Run(doc, UserData{"result": &result}))

	require.Contains(t, result, "do-made-up-thing")
}
