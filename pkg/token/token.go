/*
Package token defines the lexical spans produced by the vuelex lexers.

Every byte of a document belongs to exactly one Token:

	<template>{{ title }}</template>
	|        ||| |    | ||         |
	|        ||| |    | |+---------+-- TagCloseStart, TagName, TagEnd
	|        ||| |    | +-- InterpolationEnd
	|        ||| +----+-- Whitespace, Identifier, Whitespace (expression dialect)
	|        ||+-- InterpolationStart
	+--------++-- TagOpenStart, TagName, TagEnd

Tokens never have zero length.
*/
package token

import (
	"fmt"

	"github.com/walteh/vuelex/pkg/dialect"
)

// Kind classifies a span.
type Kind uint8

const (
	Error Kind = iota

	// markup
	TagOpenStart
	TagCloseStart
	TagName
	TagEnd
	TagSelfCloseEnd
	Whitespace
	Text
	CharRef
	CommentStart
	CommentText
	CommentEnd
	MarkupDecl
	CData

	// attributes
	AttrName
	BindingAttrName
	EventAttrName
	DirectiveAttrName
	AttrEq
	AttrQuote
	AttrValue

	// interpolation delimiters
	InterpolationStart
	InterpolationEnd

	// embedded script
	Keyword
	Identifier
	String
	TemplateString
	Number
	Comment
	Operator
	Arrow
	Punctuation
	JSXTagStart
	JSXTagEnd
	JSXExpression

	// embedded style
	AtKeyword
	Hash
	ClassName
	Variable
	URL
	Important

	kindCount
)

var kindNames = [...]string{
	Error:              "ERROR",
	TagOpenStart:       "TAG_OPEN_START",
	TagCloseStart:      "TAG_CLOSE_START",
	TagName:            "TAG_NAME",
	TagEnd:             "TAG_END",
	TagSelfCloseEnd:    "TAG_SELF_CLOSE_END",
	Whitespace:         "WHITESPACE",
	Text:               "TEXT",
	CharRef:            "CHAR_REF",
	CommentStart:       "COMMENT_START",
	CommentText:        "COMMENT_TEXT",
	CommentEnd:         "COMMENT_END",
	MarkupDecl:         "MARKUP_DECL",
	CData:              "CDATA",
	AttrName:           "ATTR_NAME",
	BindingAttrName:    "BINDING_ATTR_NAME",
	EventAttrName:      "EVENT_ATTR_NAME",
	DirectiveAttrName:  "DIRECTIVE_ATTR_NAME",
	AttrEq:             "ATTR_EQ",
	AttrQuote:          "ATTR_QUOTE",
	AttrValue:          "ATTR_VALUE",
	InterpolationStart: "INTERPOLATION_START",
	InterpolationEnd:   "INTERPOLATION_END",
	Keyword:            "KEYWORD",
	Identifier:         "IDENTIFIER",
	String:             "STRING",
	TemplateString:     "TEMPLATE_STRING",
	Number:             "NUMBER",
	Comment:            "COMMENT",
	Operator:           "OPERATOR",
	Arrow:              "ARROW",
	Punctuation:        "PUNCTUATION",
	JSXTagStart:        "JSX_TAG_START",
	JSXTagEnd:          "JSX_TAG_END",
	JSXExpression:      "JSX_EXPRESSION",
	AtKeyword:          "AT_KEYWORD",
	Hash:               "HASH",
	ClassName:          "CLASS_NAME",
	Variable:           "VARIABLE",
	URL:                "URL",
	Important:          "IMPORTANT",
}

func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return fmt.Sprintf("KIND(%d)", uint8(k))
}

// ParseKind is the inverse of Kind.String.
func ParseKind(name string) (Kind, bool) {
	for k := Error; k < kindCount; k++ {
		if kindNames[k] == name {
			return k, true
		}
	}
	return Error, false
}

// IsAttrName reports whether k names an attribute of any flavor.
func (k Kind) IsAttrName() bool {
	return k >= AttrName && k <= DirectiveAttrName
}

// Token is a classified [Start, End) byte span of the source.
type Token struct {
	Kind    Kind
	Start   int
	End     int
	Dialect dialect.Dialect
}

// Len returns the span length in bytes.
func (t Token) Len() int {
	return t.End - t.Start
}

// Text returns the covered bytes of src as a string.
func (t Token) Text(src []byte) string {
	return string(src[t.Start:t.End])
}

// Shift returns t moved by delta bytes.
func (t Token) Shift(delta int) Token {
	t.Start += delta
	t.End += delta
	return t
}

func (t Token) String() string {
	return fmt.Sprintf("%s[%d:%d]@%s", t.Kind, t.Start, t.End, t.Dialect)
}
