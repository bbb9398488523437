package edit

import (
	"strings"

	"github.com/Jehops/portfmt/internal/ast"
	"github.com/Jehops/portfmt/internal/rules"
	"github.com/Jehops/portfmt/internal/token"
)

// SanitizeAppendPass is sanitize-append-modifier (spec.md §4.3): a
// variable's first occurrence before the bsd.port.mk boundary is
// rewritten from `+=` to `=` unless the name is on the append-only list;
// later occurrences of the same name are left alone.
type SanitizeAppendPass struct{}

func (p *SanitizeAppendPass) Name() string { return "sanitize-append-modifier" }

func (p *SanitizeAppendPass) Run(doc *ast.Document, _ UserData) error {
	boundary := doc.BSDPortMkBoundary()
	seen := make(map[string]bool)

	for i, v := range doc.Variables {
		if v.StartIndex < 0 || v.StartIndex >= boundary {
			continue
		}
		if doc.Tokens[v.StartIndex].GC {
			continue
		}
		if seen[v.Name] {
			continue
		}
		seen[v.Name] = true

		if v.Modifier != token.Append || rules.IsAppendOnlyVariable(v.Name) {
			continue
		}
		doc.Variables[i].Modifier = token.Assign
		doc.MarkEdited(v.StartIndex)
	}
	return nil
}

// SanitizeCMakeArgsPass is sanitize-cmake-args (spec.md §4.3): within
// CMAKE_ARGS/MESON_ARGS and any `<OPT>_CMAKE_{ON,OFF}`/
// `<OPT>_MESON_{ON,OFF}` helper, a `-D` token immediately followed by
// another token is joined into `-D<next>`: the `-D` token's Data is
// rewritten in place to the joined text and marked edited, and only the
// following token is GC'd.
type SanitizeCMakeArgsPass struct{}

func (p *SanitizeCMakeArgsPass) Name() string { return "sanitize-cmake-args" }

func (p *SanitizeCMakeArgsPass) Run(doc *ast.Document, _ UserData) error {
	for _, v := range doc.Variables {
		if v.StartIndex < 0 || v.StartIndex >= len(doc.Tokens) || doc.Tokens[v.StartIndex].GC {
			continue
		}
		if !isCMakeArgsLike(v.Name) {
			continue
		}
		indices := doc.VariableRange(v)
		for i := 0; i < len(indices)-1; i++ {
			cur := indices[i]
			next := indices[i+1]
			if doc.Tokens[cur].Data != "-D" {
				continue
			}
			joined := "-D" + doc.Tokens[next].Data
			doc.Tokens[cur].Data = joined
			doc.MarkEdited(cur)
			doc.MarkGC(next)
			i++ // the joined-into token is consumed, skip past it
		}
	}
	return nil
}

func isCMakeArgsLike(name string) bool {
	if name == "CMAKE_ARGS" || name == "MESON_ARGS" {
		return true
	}
	_, helper, ok := rules.IsOptionsHelper(name)
	if !ok {
		return false
	}
	switch helper {
	case "CMAKE_ON", "CMAKE_OFF", "MESON_ON", "MESON_OFF":
		return true
	default:
		return false
	}
}

// SanitizeEOLCommentsPass is sanitize-eol-comments (spec.md §4.3): when a
// variable's last VARIABLE_TOKEN is a trailing comment and the variable
// isn't on the preserve list, the comment is hoisted to a standalone
// COMMENT token immediately before VARIABLE_START.
type SanitizeEOLCommentsPass struct{}

func (p *SanitizeEOLCommentsPass) Name() string { return "sanitize-eol-comments" }

func (p *SanitizeEOLCommentsPass) Run(doc *ast.Document, _ UserData) error {
	for _, v := range doc.Variables {
		if v.StartIndex < 0 || v.StartIndex >= len(doc.Tokens) || doc.Tokens[v.StartIndex].GC {
			continue
		}
		if rules.PreserveEOLComment(v.Name) {
			continue
		}
		indices := doc.VariableRange(v)
		if len(indices) == 0 {
			continue
		}
		last := indices[len(indices)-1]
		data := doc.Tokens[last].Data
		if !strings.HasPrefix(data, "#") {
			continue
		}

		hoisted := token.New(token.Comment)
		hoisted.Data = data
		hoisted.CondContext = doc.Tokens[v.StartIndex].CondContext
		hoisted.Edited = true

		newTokens := make([]token.Token, 0, len(doc.Tokens)+1)
		newTokens = append(newTokens, doc.Tokens[:v.StartIndex]...)
		newTokens = append(newTokens, hoisted)
		newTokens = append(newTokens, doc.Tokens[v.StartIndex:]...)
		doc.ReplaceTokens(newTokens)

		doc.MarkGC(last + 1) // the comment token shifted by the insertion
	}
	return nil
}
