package emit

import (
	"strings"
	"testing"

	"github.com/Jehops/portfmt/internal/edit"
	"github.com/Jehops/portfmt/internal/lexer"
	"github.com/Jehops/portfmt/internal/token"
	"github.com/stretchr/testify/require"
)

func TestEmitReformatsSimpleVariable(t *testing.T) {
	doc, err := lexer.Lex("Makefile", []byte("PORTNAME=\tfoo\n"), token.DefaultSettings())
	require.NoError(t, err)

	out := Emit(doc, token.DefaultSettings())
	require.Contains(t, out, "PORTNAME=")
	require.Contains(t, out, "foo")
}

func TestEmitRawlinesSkipsAlignment(t *testing.T) {
	doc, err := lexer.Lex("Makefile", []byte("PORTNAME=\tfoo\nCATEGORIES=\tdevel\n"), token.DefaultSettings())
	require.NoError(t, err)

	settings := token.DefaultSettings()
	settings.OutputRawlines = true
	out := Emit(doc, settings)
	require.Equal(t, "PORTNAME=\tfoo\nCATEGORIES=\tdevel\n", out)
}

func TestEmitPreservesComment(t *testing.T) {
	doc, err := lexer.Lex("Makefile", []byte("# a header comment\nPORTNAME=\tfoo\n"), token.DefaultSettings())
	require.NoError(t, err)

	out := Emit(doc, token.DefaultSettings())
	require.Contains(t, out, "# a header comment")
}

func TestEmitTargetWithRecipe(t *testing.T) {
	doc, err := lexer.Lex("Makefile", []byte("pre-install:\n\techo hi\n"), token.DefaultSettings())
	require.NoError(t, err)

	out := Emit(doc, token.DefaultSettings())
	require.Contains(t, out, "pre-install:")
	require.Contains(t, out, "\techo hi\n")
}

// TestGroupRunsSharesColumnAfterReorderOfNonContiguousBlock reproduces a
// block (BlockCmake: USE_CMAKE, CMAKE_BUILD_TYPE) whose members are not
// contiguous in the source. After canonical-reorder moves them adjacent
// in the token stream without touching doc.Variables' declaration
// order, groupRuns must still treat them as one run and share a single
// alignment column — otherwise a second format pass (which re-lexes the
// now-grouped text) would compute a different column than the first,
// breaking roundtrip idempotence.
func TestGroupRunsSharesColumnAfterReorderOfNonContiguousBlock(t *testing.T) {
	src := "USE_CMAKE=\tyes\nMAINTAINER=\ttest@example.com\nCMAKE_BUILD_TYPE=\tRelease\n"
	doc, err := lexer.Lex("Makefile", []byte(src), token.DefaultSettings())
	require.NoError(t, err)

	pass := &edit.ReorderPass{}
	require.NoError(t, pass.Run(doc, edit.UserData{}))

	out := Emit(doc, token.DefaultSettings())

	var useCmakeLine, cmakeBuildTypeLine string
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "USE_CMAKE=") {
			useCmakeLine = line
		}
		if strings.HasPrefix(line, "CMAKE_BUILD_TYPE=") {
			cmakeBuildTypeLine = line
		}
	}
	require.NotEmpty(t, useCmakeLine)
	require.NotEmpty(t, cmakeBuildTypeLine)

	// valueColumn is the visual column (tab stops every 8) at which the
	// value starts once the header's trailing tabs are expanded.
	valueColumn := func(line, header string) int {
		col := len(header)
		for _, c := range strings.TrimPrefix(line, header) {
			if c != '\t' {
				break
			}
			col = (col/8 + 1) * 8
		}
		return col
	}
	useCol := valueColumn(useCmakeLine, "USE_CMAKE=")
	cmakeCol := valueColumn(cmakeBuildTypeLine, "CMAKE_BUILD_TYPE=")

	// Both headers must pad out to the same column: the longer header
	// (CMAKE_BUILD_TYPE=, 17 chars) drives one shared column for the
	// whole run, not one computed per isolated single-variable group.
	require.Equal(t, cmakeCol, useCol, "USE_CMAKE and CMAKE_BUILD_TYPE must share one alignment column")
}

func TestEmitEditedModeLeavesUnedittedVariablePlain(t *testing.T) {
	doc, err := lexer.Lex("Makefile", []byte("USES=\tgmake\n"), token.DefaultSettings())
	require.NoError(t, err)

	settings := token.DefaultSettings()
	settings.OutputEdited = true
	out := Emit(doc, settings)
	require.Equal(t, "USES=\tgmake\n", out)
}
