package edit

import (
	"github.com/Jehops/portfmt/internal/ast"
	"github.com/Jehops/portfmt/internal/diff"
	"github.com/Jehops/portfmt/internal/errors"
	"github.com/Jehops/portfmt/internal/rules"
)

// LintResult carries lint-order's findings back to the caller: the diff
// entries between observed and canonical variable order, and whether any
// diff exists (the pass returns a non-nil error in that case too, per
// spec.md §4.3 "return exit status = 1 if any edits", but callers that
// want the entries for rendering a report pass a *LintResult in via
// UserData["result"]).
type LintResult struct {
	Entries []diff.Entry
	HasDiff bool
}

// LintOrderPass is lint-order (spec.md §4.3): builds the observed
// (document-order) and canonical (compare_order-sorted) variable-name
// sequences and diffs them. Names with no known block sort last in the
// canonical sequence (rules.CompareOrder's "unknown sorts after all
// known" rule), which is exactly the "UNKNOWN group at the end" this
// reports; the guidance preamble shown alongside it is an
// internal/emit/internal/cli rendering concern, not part of this pass's
// return value.
type LintOrderPass struct{}

func (p *LintOrderPass) Name() string { return "lint-order" }

func (p *LintOrderPass) Run(doc *ast.Document, data UserData) error {
	observed := doc.VariableNamesInOrder()
	canonical := append([]string(nil), observed...)
	rules.SortVariableNames(canonical)

	entries := diff.Diff(observed, canonical)
	hasDiff := false
	for _, e := range entries {
		if e.Op != diff.Common {
			hasDiff = true
			break
		}
	}

	if result, ok := data["result"].(*LintResult); ok {
		result.Entries = entries
		result.HasDiff = hasDiff
	}

	if hasDiff {
		return errors.NewEditError("lint-order", "observed variable order does not match canonical order")
	}
	return nil
}
