package scan

import (
	"strings"

	"github.com/Jehops/portfmt/internal/ast"
	"github.com/Jehops/portfmt/internal/edit"
	"github.com/Jehops/portfmt/internal/token"
)

// Result is one worker's findings for a single origin: the unknown
// variables, unknown targets, duplicate assignments, option groups, and
// options it found, per SPEC_FULL.md §5's ScanResult.
type Result struct {
	Origin             string
	UnknownVariables   []string
	UnknownTargets     []string
	DuplicateVariables []string
	OptionGroups       []string
	Options            []string
}

// Detect runs the unknown-variable and unknown-target passes plus the
// scan-only duplicate-assignment and options-catalogue detectors
// against doc, and returns the combined Result for origin.
func Detect(origin string, doc *ast.Document) (Result, error) {
	r := Result{Origin: origin}

	var unknownVars []string
	if err := edit.Registry["output-unknown-variables"].Run(doc, edit.UserData{"result": &unknownVars}); err != nil {
		return r, err
	}
	r.UnknownVariables = unknownVars

	var unknownTargets []string
	if err := edit.Registry["output-unknown-targets"].Run(doc, edit.UserData{"result": &unknownTargets}); err != nil {
		return r, err
	}
	r.UnknownTargets = unknownTargets

	r.DuplicateVariables = duplicateVariables(doc)
	r.OptionGroups, r.Options = optionsCatalogue(doc)

	return r, nil
}

// duplicateVariables reports every top-level (not inside a conditional)
// variable name assigned more than once with a non-append modifier: a
// second `=`/`:=`/`?=`/`!=` silently overwrites the first, which is
// almost always a copy-paste mistake rather than intentional.
func duplicateVariables(doc *ast.Document) []string {
	counts := make(map[string]int)
	var order []string

	for _, v := range doc.Variables {
		if v.StartIndex < 0 || v.StartIndex >= len(doc.Tokens) || doc.Tokens[v.StartIndex].GC {
			continue
		}
		if len(doc.Tokens[v.StartIndex].CondContext) != 0 {
			continue
		}
		if v.Modifier == token.Append {
			continue
		}
		if counts[v.Name] == 0 {
			order = append(order, v.Name)
		}
		counts[v.Name]++
	}

	var dups []string
	for _, name := range order {
		if counts[name] > 1 {
			dups = append(dups, name)
		}
	}
	return dups
}

// optionsCatalogue walks OPTIONS_DEFINE, OPTIONS_GROUP_*, and the
// OPTIONS_SINGLE_*/OPTIONS_MULTI_*/OPTIONS_RADIO_* helpers the same way
// internal/lexer's index pass builds Document.OptionsIndex, except it
// keeps group names and individual option names as two separate sets
// rather than merging them into one membership map.
func optionsCatalogue(doc *ast.Document) (groups, options []string) {
	seenGroup := make(map[string]bool)
	seenOption := make(map[string]bool)

	addOption := func(name string) {
		if name == "" || seenOption[name] {
			return
		}
		seenOption[name] = true
		options = append(options, name)
	}
	addGroup := func(name string) {
		if name == "" || seenGroup[name] {
			return
		}
		seenGroup[name] = true
		groups = append(groups, name)
	}

	for _, v := range doc.Variables {
		if v.StartIndex < 0 || v.StartIndex >= len(doc.Tokens) || doc.Tokens[v.StartIndex].GC {
			continue
		}
		switch {
		case v.Name == "OPTIONS_DEFINE":
			for _, idx := range doc.VariableRange(v) {
				addOption(doc.Tokens[idx].Data)
			}
		case strings.HasPrefix(v.Name, "OPTIONS_GROUP_"):
			addGroup(strings.TrimPrefix(v.Name, "OPTIONS_GROUP_"))
			for _, idx := range doc.VariableRange(v) {
				addOption(doc.Tokens[idx].Data)
			}
		case strings.HasPrefix(v.Name, "OPTIONS_SINGLE_"),
			strings.HasPrefix(v.Name, "OPTIONS_MULTI_"),
			strings.HasPrefix(v.Name, "OPTIONS_RADIO_"):
			for _, idx := range doc.VariableRange(v) {
				addOption(doc.Tokens[idx].Data)
			}
		}
	}

	return groups, options
}
