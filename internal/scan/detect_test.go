package scan

import (
	"testing"

	"github.com/Jehops/portfmt/internal/lexer"
	"github.com/Jehops/portfmt/internal/token"
	"github.com/stretchr/testify/require"
)

const fixtureMakefile = "PORTNAME=\tfoo\n" +
	"SOME_MADE_UP_VAR=\tbar\n" +
	"PORTNAME=\tbaz\n" +
	"OPTIONS_DEFINE=\tDOCS EXAMPLES\n" +
	"OPTIONS_GROUP_FOO=\tBAR BAZ\n" +
	"do-made-up-thing:\n" +
	"\techo hi\n"

func TestDetectReportsEveryCategory(t *testing.T) {
	doc, err := lexer.Lex("category/port/Makefile", []byte(fixtureMakefile), token.DefaultSettings())
	require.NoError(t, err)

	r, err := Detect("category/port", doc)
	require.NoError(t, err)

	require.Equal(t, "category/port", r.Origin)
	require.Contains(t, r.UnknownVariables, "SOME_MADE_UP_VAR")
	require.Contains(t, r.UnknownTargets, "do-made-up-thing")
	require.Contains(t, r.DuplicateVariables, "PORTNAME")
	require.Contains(t, r.OptionGroups, "FOO")
	require.ElementsMatch(t, []string{"DOCS", "EXAMPLES", "BAR", "BAZ"}, r.Options)
}

func TestDetectDoesNotFlagSingleAssignmentAsDuplicate(t *testing.T) {
	doc, err := lexer.Lex("Makefile", []byte("PORTNAME=\tfoo\n"), token.DefaultSettings())
	require.NoError(t, err)

	r, err := Detect("category/port", doc)
	require.NoError(t, err)
	require.Empty(t, r.DuplicateVariables)
}

func TestDetectDoesNotFlagAppendOnlyRepeats(t *testing.T) {
	doc, err := lexer.Lex("Makefile", []byte("USES=\tgmake\nUSES+=\tpkgconfig\n"), token.DefaultSettings())
	require.NoError(t, err)

	r, err := Detect("category/port", doc)
	require.NoError(t, err)
	require.Empty(t, r.DuplicateVariables)
}
