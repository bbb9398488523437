package lexer

import "strings"

// index builds the Document's OptionsIndex once the full token stream
// and Variables slice exist: the union of names declared in
// OPTIONS_DEFINE, OPTIONS_GROUP_*, and per-group helper variables.
func (p *parser) index() {
	doc := p.doc

	for _, v := range doc.Variables {
		switch {
		case v.Name == "OPTIONS_DEFINE":
			for _, idx := range doc.VariableRange(v) {
				doc.OptionsIndex[doc.Tokens[idx].Data] = true
			}
		case strings.HasPrefix(v.Name, "OPTIONS_GROUP_"):
			group := strings.TrimPrefix(v.Name, "OPTIONS_GROUP_")
			doc.OptionsIndex[group] = true
			for _, idx := range doc.VariableRange(v) {
				doc.OptionsIndex[doc.Tokens[idx].Data] = true
			}
		case strings.HasPrefix(v.Name, "OPTIONS_SINGLE_"),
			strings.HasPrefix(v.Name, "OPTIONS_MULTI_"),
			strings.HasPrefix(v.Name, "OPTIONS_RADIO_"):
			for _, idx := range doc.VariableRange(v) {
				doc.OptionsIndex[doc.Tokens[idx].Data] = true
			}
		}
	}
}
