package semtok

import (
	"github.com/walteh/vuelex/pkg/dialect"
	"github.com/walteh/vuelex/pkg/position"
	"github.com/walteh/vuelex/pkg/token"
)

// TokenType is the highlight class of a token. Its value is the index into
// the legend returned by Legend.
type TokenType uint32

const (
	TokenTag TokenType = iota
	TokenAttribute
	TokenDirective
	TokenEvent
	TokenKeyword
	TokenVariable
	TokenString
	TokenNumber
	TokenComment
	TokenOperator
	TokenPunctuation
	TokenProperty
	TokenEntity
	TokenInvalid

	tokenTypeCount
)

var tokenTypeNames = [...]string{
	TokenTag:         "tag",
	TokenAttribute:   "attribute",
	TokenDirective:   "directive",
	TokenEvent:       "event",
	TokenKeyword:     "keyword",
	TokenVariable:    "variable",
	TokenString:      "string",
	TokenNumber:      "number",
	TokenComment:     "comment",
	TokenOperator:    "operator",
	TokenPunctuation: "punctuation",
	TokenProperty:    "property",
	TokenEntity:      "entity",
	TokenInvalid:     "invalid",
}

func (t TokenType) String() string {
	if t < tokenTypeCount {
		return tokenTypeNames[t]
	}
	return "unknown"
}

// TokenModifier is a bit set.
type TokenModifier uint32

const (
	ModifierNone TokenModifier = 0

	// ModifierEmbedded marks tokens of a script or style region.
	ModifierEmbedded TokenModifier = 1 << (iota - 1)
	// ModifierExpression marks tokens of a binding value or an interpolation.
	ModifierExpression
)

var modifierNames = []string{"embedded", "expression"}

func (m TokenModifier) String() string {
	switch m {
	case ModifierNone:
		return "none"
	case ModifierEmbedded:
		return "embedded"
	case ModifierExpression:
		return "expression"
	default:
		return "unknown"
	}
}

// Legend returns the type and modifier names in encoding order.
func Legend() (types []string, modifiers []string) {
	return append([]string(nil), tokenTypeNames[:]...), append([]string(nil), modifierNames...)
}

// Token is a highlighted span.
type Token struct {
	Type     TokenType
	Modifier TokenModifier
	Range    position.RawPosition
}

var kindTypes = map[token.Kind]TokenType{
	token.Error: TokenInvalid,

	token.TagOpenStart:    TokenPunctuation,
	token.TagCloseStart:   TokenPunctuation,
	token.TagEnd:          TokenPunctuation,
	token.TagSelfCloseEnd: TokenPunctuation,
	token.TagName:         TokenTag,
	token.CharRef:         TokenEntity,
	token.CommentStart:    TokenComment,
	token.CommentText:     TokenComment,
	token.CommentEnd:      TokenComment,
	token.MarkupDecl:      TokenKeyword,
	token.CData:           TokenString,

	token.AttrName:          TokenAttribute,
	token.BindingAttrName:   TokenDirective,
	token.DirectiveAttrName: TokenDirective,
	token.EventAttrName:     TokenEvent,
	token.AttrEq:            TokenOperator,
	token.AttrQuote:         TokenString,
	token.AttrValue:         TokenString,

	token.InterpolationStart: TokenPunctuation,
	token.InterpolationEnd:   TokenPunctuation,

	token.Keyword:        TokenKeyword,
	token.Identifier:     TokenVariable,
	token.String:         TokenString,
	token.TemplateString: TokenString,
	token.Number:         TokenNumber,
	token.Comment:        TokenComment,
	token.Operator:       TokenOperator,
	token.Arrow:          TokenOperator,
	token.Punctuation:    TokenPunctuation,
	token.JSXTagStart:    TokenTag,
	token.JSXTagEnd:      TokenTag,
	token.JSXExpression:  TokenPunctuation,

	token.AtKeyword: TokenKeyword,
	token.Hash:      TokenProperty,
	token.ClassName: TokenProperty,
	token.Variable:  TokenVariable,
	token.URL:       TokenString,
	token.Important: TokenKeyword,
}

// TypeOf returns the highlight class of k. Whitespace and text are not
// highlighted.
func TypeOf(k token.Kind) (TokenType, bool) {
	t, ok := kindTypes[k]
	return t, ok
}

// ModifierOf derives the modifiers from the dialect that produced a token.
func ModifierOf(d dialect.Dialect) TokenModifier {
	switch {
	case d == dialect.Expression:
		return ModifierExpression
	case d.IsScript(), d.IsStyle():
		return ModifierEmbedded
	default:
		return ModifierNone
	}
}
