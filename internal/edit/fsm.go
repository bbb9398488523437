package edit

import (
	"github.com/Jehops/portfmt/internal/ast"
	"github.com/Jehops/portfmt/internal/token"
)

// armState names the four states of the skip-developer-only-arm FSM
// (spec.md §4.6): INIT, IF, SKIP, END.
type armState int

const (
	armInit armState = iota
	armIf
	armSkip
	armEnd
)

// DeveloperArmMask classifies every conditional once (spec.md §4.6) and
// returns a bool slice aligned to doc.Tokens marking every token nested
// inside a developer-only arm (`defined(DEVELOPER)`,
// `defined(MAINTAINER_MODE)`, `make(makesum)`). Each conditional's final
// state — armEnd if it's a .if/.elif/.else whose predicate matches a
// developer-only arm, armInit otherwise — is known as soon as its
// predicate text is available, so classification is a single check per
// conditional rather than a token-by-token walk through armIf and
// armSkip; those intermediate states exist only to name the
// predicate-not-yet-checked and predicate-checked-no-match points a
// caller stepping through by hand would pass through.
func DeveloperArmMask(doc *ast.Document) []bool {
	final := make([]armState, len(doc.Conditionals))
	for i, c := range doc.Conditionals {
		if c.Kind != token.DirectiveIf && !c.Kind.Replaces() {
			final[i] = armInit
			continue
		}
		if token.IsDeveloperArm(c.Argument) {
			final[i] = armEnd
		} else {
			final[i] = armInit
		}
	}

	mask := make([]bool, len(doc.Tokens))
	for i, t := range doc.Tokens {
		for _, condIdx := range t.CondContext {
			if condIdx >= 0 && condIdx < len(final) && final[condIdx] == armEnd {
				mask[i] = true
				break
			}
		}
	}
	return mask
}
