package edit

import (
	"sort"
	"strings"

	"github.com/Jehops/portfmt/internal/ast"
	"github.com/Jehops/portfmt/internal/rules"
	"github.com/Jehops/portfmt/internal/token"
)

// SortPass is sort-variable-values (spec.md §4.3): for each variable
// range where rules.ShouldSort holds and the range is not inside a
// developer-only conditional arm, stable-sort its VARIABLE_TOKENs by a
// domain-aware comparator and drop consecutive duplicates. A token
// beginning with "#" is treated as an inline annotation of the value
// immediately before it and travels with that value during the sort.
type SortPass struct{}

func (p *SortPass) Name() string { return "sort-variable-values" }

func (p *SortPass) Run(doc *ast.Document, _ UserData) error {
	mask := DeveloperArmMask(doc)

	for _, v := range doc.Variables {
		if v.StartIndex < 0 || v.StartIndex >= len(doc.Tokens) || doc.Tokens[v.StartIndex].GC {
			continue
		}
		if mask[v.StartIndex] {
			continue
		}
		if !rules.ShouldSort(v) {
			continue
		}
		p.sortRange(doc, v)
	}
	return nil
}

// item is one value token plus any trailing "#..." annotation tokens
// that must stay attached to it.
type item struct {
	value    string
	tokenIdx []int // indices of the value token followed by its annotations
}

func (p *SortPass) sortRange(doc *ast.Document, v token.Variable) {
	indices := doc.VariableRange(v)
	if len(indices) < 2 {
		return
	}

	var items []item
	for _, idx := range indices {
		data := doc.Tokens[idx].Data
		if strings.HasPrefix(data, "#") && len(items) > 0 {
			last := &items[len(items)-1]
			last.tokenIdx = append(last.tokenIdx, idx)
			continue
		}
		items = append(items, item{value: data, tokenIdx: []int{idx}})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return compareValue(items[i].value) < compareValue(items[j].value)
	})

	var deduped []item
	for i, it := range items {
		if i > 0 && compareValue(it.value) == compareValue(deduped[len(deduped)-1].value) {
			continue
		}
		deduped = append(deduped, it)
	}

	var newOrder []int
	for _, it := range deduped {
		newOrder = append(newOrder, it.tokenIdx...)
	}

	data := make([]string, len(newOrder))
	for i, idx := range newOrder {
		data[i] = doc.Tokens[idx].Data
	}
	// Reuse the range's original physical slots: write the sorted/deduped
	// data back in document order, then GC any slots left over once
	// duplicates have dropped the live count below the original.
	for pos, idx := range indices {
		if pos < len(data) {
			doc.Tokens[idx].Data = data[pos]
			doc.Tokens[idx].GC = false
			doc.MarkEdited(idx)
		} else {
			doc.MarkGC(idx)
		}
	}
}

// compareValue is the sort key: a leading '"' (group-name-quoted tokens
// such as `"GROUP_NAME"` in some RHS lists) is stripped, and option-like
// bare words compare case-insensitively so `SSL` and `ssl` interleave
// predictably.
func compareValue(s string) string {
	s = strings.TrimPrefix(s, `"`)
	return strings.ToLower(s)
}
