package htmllex

import (
	"strings"

	"github.com/walteh/vuelex/pkg/dialect"
	"github.com/walteh/vuelex/pkg/token"
)

// AttrClass decides how an attribute's value is lexed.
type AttrClass uint8

const (
	// AttrNone means no attribute name is pending.
	AttrNone AttrClass = iota
	AttrPlain
	// AttrLang values select the dialect of the tag's content.
	AttrLang
	// AttrExpression values are lexed with the expression dialect.
	AttrExpression
	// AttrStyle values are inline css declarations.
	AttrStyle

	attrClassCount
)

func (c AttrClass) String() string {
	switch c {
	case AttrNone:
		return "none"
	case AttrPlain:
		return "plain"
	case AttrLang:
		return "lang"
	case AttrExpression:
		return "expression"
	case AttrStyle:
		return "style"
	default:
		return "unknown"
	}
}

// Valid reports whether c is a declared class.
func (c AttrClass) Valid() bool {
	return c < attrClassCount
}

// ClassifyAttr returns the token kind of an attribute name and how its value
// is lexed. tag is the class of the tag the attribute belongs to.
func ClassifyAttr(name string, tag dialect.TagClass) (token.Kind, AttrClass) {
	switch {
	case name == "v-bind" || strings.HasPrefix(name, "v-bind:"):
		return token.BindingAttrName, AttrExpression
	case name == "v-on" || strings.HasPrefix(name, "v-on:"):
		return token.EventAttrName, AttrExpression
	case len(name) > 1 && (name[0] == ':' || name[0] == '.'):
		return token.BindingAttrName, AttrExpression
	case len(name) > 1 && name[0] == '[':
		return token.BindingAttrName, AttrExpression
	case len(name) > 1 && name[0] == '@':
		return token.EventAttrName, AttrExpression
	case strings.HasPrefix(name, "v-") || len(name) > 1 && name[0] == '#':
		return token.DirectiveAttrName, AttrExpression
	case name == "lang" && tag != dialect.TagOther:
		return token.AttrName, AttrLang
	case strings.EqualFold(name, "style"):
		return token.AttrName, AttrStyle
	case len(name) > 2 && strings.EqualFold(name[:2], "on"):
		return token.AttrName, AttrExpression
	default:
		return token.AttrName, AttrPlain
	}
}
