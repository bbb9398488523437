package edit

import (
	"sort"

	"github.com/Jehops/portfmt/internal/ast"
	"github.com/Jehops/portfmt/internal/rules"
	"github.com/Jehops/portfmt/internal/token"
)

// ReorderPass is canonical-reorder (spec.md §4.3): collect every
// VARIABLE_START..END range at conditional depth 0 that precedes the
// first `.include <bsd.port.mk>`, group by block, and emit the groups in
// canonical block order with a blank COMMENT separating each. Ranges
// inside conditionals are left exactly where they are.
type ReorderPass struct{}

func (p *ReorderPass) Name() string { return "canonical-reorder" }

func (p *ReorderPass) Run(doc *ast.Document, _ UserData) error {
	boundary := doc.BSDPortMkBoundary()

	var order []int
	byStart := make(map[int]token.Variable)
	for _, v := range doc.Variables {
		if v.StartIndex < 0 || v.StartIndex >= boundary || v.StartIndex >= len(doc.Tokens) {
			continue
		}
		if doc.Tokens[v.StartIndex].GC {
			continue
		}
		if len(doc.Tokens[v.StartIndex].CondContext) != 0 {
			continue
		}
		order = append(order, v.StartIndex)
		byStart[v.StartIndex] = v
	}
	if len(order) == 0 {
		return nil
	}
	sort.Ints(order)
	insertAt := order[0]

	// Blocks absent from rules.BlockOrder (BlockUnknown, BlockLangDepends)
	// form one trailing group, so their ranges are kept.
	listed := make(map[token.Block]bool, len(rules.BlockOrder))
	blocks := make([]token.Block, 0, len(rules.BlockOrder)+1)
	for _, def := range rules.BlockOrder {
		listed[def.Block()] = true
		blocks = append(blocks, def.Block())
	}
	blocks = append(blocks, token.BlockUnknown)

	groups := make(map[token.Block][]token.Variable)
	for _, start := range order {
		v := byStart[start]
		b := rules.VariableOrderBlock(v.Name)
		if !listed[b] {
			b = token.BlockUnknown
		}
		groups[b] = append(groups[b], v)
	}

	var replacement []token.Token
	firstGroup := true
	for _, b := range blocks {
		vars := groups[b]
		if len(vars) == 0 {
			continue
		}
		sort.SliceStable(vars, func(i, j int) bool {
			return rules.CompareOrder(vars[i].Name, vars[j].Name) < 0
		})
		if !firstGroup {
			replacement = append(replacement, blankSeparator())
		}
		firstGroup = false
		for _, v := range vars {
			for i := v.StartIndex; i <= v.EndIndex; i++ {
				replacement = append(replacement, doc.Tokens[i].Clone())
			}
		}
	}

	removed := make(map[int]bool)
	for _, start := range order {
		v := byStart[start]
		for i := v.StartIndex; i <= v.EndIndex; i++ {
			removed[i] = true
		}
	}

	newTokens := make([]token.Token, 0, len(doc.Tokens)+len(replacement))
	inserted := false
	for i, t := range doc.Tokens {
		if i == insertAt {
			newTokens = append(newTokens, replacement...)
			inserted = true
		}
		if removed[i] {
			continue
		}
		newTokens = append(newTokens, t)
	}
	if !inserted {
		newTokens = append(newTokens, replacement...)
	}

	doc.ReplaceTokens(newTokens)
	return nil
}

func blankSeparator() token.Token {
	t := token.New(token.Comment)
	t.Edited = true
	return t
}
