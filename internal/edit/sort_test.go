package edit

import (
	"testing"

	"github.com/Jehops/portfmt/internal/lexer"
	"github.com/Jehops/portfmt/internal/token"
	"github.com/stretchr/testify/require"
)

// TestSortE2 is spec.md §8 E2: sort-variable-values on USES alphabetizes
// and deduplicates the RHS word list.
func TestSortE2(t *testing.T) {
	doc, err := lexer.Lex("Makefile", []byte("USES=\tgmake pkgconfig gmake cmake\n"), token.DefaultSettings())
	require.NoError(t, err)

	pass := &SortPass{}
	require.NoError(t, pass.Run(doc, nil))

	var v token.Variable
	for _, vv := range doc.Variables {
		if vv.Name == "USES" {
			v = vv
		}
	}
	var values []string
	for _, idx := range doc.VariableRange(v) {
		values = append(values, doc.Tokens[idx].Data)
	}
	require.Equal(t, []string{"cmake", "gmake", "pkgconfig"}, values)
}

func TestSortLeavesUnsortableVariableAlone(t *testing.T) {
	doc, err := lexer.Lex("Makefile", []byte("CATEGORIES=\tnet devel\n"), token.DefaultSettings())
	require.NoError(t, err)

	pass := &SortPass{}
	require.NoError(t, pass.Run(doc, nil))

	var v token.Variable
	for _, vv := range doc.Variables {
		if vv.Name == "CATEGORIES" {
			v = vv
		}
	}
	var values []string
	for _, idx := range doc.VariableRange(v) {
		values = append(values, doc.Tokens[idx].Data)
	}
	require.Equal(t, []string{"net", "devel"}, values, "CATEGORIES is order-sensitive and must not be sorted")
}

func TestSortSkipsDeveloperArm(t *testing.T) {
	src := ".if defined(DEVELOPER)\nUSES=\tz a\n.endif\n"
	doc, err := lexer.Lex("Makefile", []byte(src), token.DefaultSettings())
	require.NoError(t, err)

	pass := &SortPass{}
	require.NoError(t, pass.Run(doc, nil))

	var v token.Variable
	for _, vv := range doc.Variables {
		if vv.Name == "USES" {
			v = vv
		}
	}
	var values []string
	for _, idx := range doc.VariableRange(v) {
		values = append(values, doc.Tokens[idx].Data)
	}
	require.Equal(t, []string{"z", "a"}, values, "variables inside a developer-only arm must not be sorted")
}
