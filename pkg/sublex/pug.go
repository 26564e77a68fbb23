package sublex

import (
	"github.com/walteh/vuelex/pkg/token"
)

// pugRules cover the shorthand markup well enough for highlighting: tag names,
// `#id` and `.class` shorthands, attribute parentheses and free text.
func pugRules() []Rule {
	return []Rule{
		R(token.Whitespace, whitespace),
		R(token.Comment, `//-?[^\n]*`),
		R(token.Hash, cssHash),
		R(token.ClassName, cssClass),
		R(token.String, dqString),
		R(token.String, sqString),
		R(token.Identifier, `[A-Za-z][\w-]*`),
		R(token.Punctuation, `[()\[\],|:]`),
		R(token.Operator, `!?=|[&+-]`),
		R(token.Text, `[^\sA-Za-z#.()\[\],|:=!&+'"-]+`),
		R(token.Text, anyChar),
	}
}
