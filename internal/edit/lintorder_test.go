package edit

import (
	"testing"

	"github.com/Jehops/portfmt/internal/lexer"
	"github.com/Jehops/portfmt/internal/token"
	"github.com/stretchr/testify/require"
)

// TestLintOrderE7 is spec.md §8 E7: a Makefile with COMMENT before
// PORTNAME reports a non-empty diff and a non-nil error.
func TestLintOrderE7(t *testing.T) {
	doc, err := lexer.Lex("Makefile", []byte("COMMENT=\tc\nPORTNAME=\tfoo\n"), token.DefaultSettings())
	require.NoError(t, err)

	pass := &LintOrderPass{}
	var result LintResult
	err = pass.Run(doc, UserData{"result": &result})
	require.Error(t, err)
	require.True(t, result.HasDiff)
	require.NotEmpty(t, result.Entries)
}

func TestLintOrderCleanWhenAlreadyCanonical(t *testing.T) {
	doc, err := lexer.Lex("Makefile", []byte("PORTNAME=\tfoo\nCOMMENT=\tc\n"), token.DefaultSettings())
	require.NoError(t, err)

	pass := &LintOrderPass{}
	var result LintResult
	err = pass.Run(doc, UserData{"result": &result})
	require.NoError(t, err)
	require.False(t, result.HasDiff)
}
