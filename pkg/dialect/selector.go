package dialect

import (
	"strings"

	"gitlab.com/tozd/go/errors"
)

// TagClass is the only part of a tag name the selector cares about.
type TagClass uint8

const (
	TagOther TagClass = iota
	TagScript
	TagStyle
	TagTemplate
)

func (c TagClass) String() string {
	switch c {
	case TagScript:
		return "script"
	case TagStyle:
		return "style"
	case TagTemplate:
		return "template"
	default:
		return "other"
	}
}

// ClassifyTag maps a tag name to its class. Tag names are ASCII case-insensitive.
func ClassifyTag(name string) TagClass {
	switch {
	case strings.EqualFold(name, "script"):
		return TagScript
	case strings.EqualFold(name, "style"):
		return TagStyle
	case strings.EqualFold(name, "template"):
		return TagTemplate
	default:
		return TagOther
	}
}

// Default returns the dialect a tag's content gets without a usable lang attribute.
func (c TagClass) Default() Dialect {
	switch c {
	case TagScript:
		return Script
	case TagStyle:
		return Style
	case TagTemplate:
		return Template
	default:
		return None
	}
}

type key struct {
	tag  TagClass
	lang string
}

var builtin = map[key]Dialect{
	{TagTemplate, "html"}: TemplateHTML,
	{TagTemplate, "jade"}: TemplatePug,
	{TagTemplate, "pug"}:  TemplatePug,

	{TagScript, "js"}:         Script,
	{TagScript, "javascript"}: Script,
	{TagScript, "ts"}:         ScriptTS,
	{TagScript, "typescript"}: ScriptTS,
	{TagScript, "jsx"}:        ScriptJSX,
	{TagScript, "tsx"}:        ScriptTSX,

	{TagStyle, "css"}:     Style,
	{TagStyle, "scss"}:    StyleSCSS,
	{TagStyle, "sass"}:    StyleSass,
	{TagStyle, "less"}:    StyleLess,
	{TagStyle, "stylus"}:  StyleStylus,
	{TagStyle, "styl"}:    StyleStylus,
	{TagStyle, "postcss"}: StylePostCSS,
	{TagStyle, "pcss"}:    StylePostCSS,
}

// Selector resolves (tag, lang) pairs. The zero value is not usable, use
// NewSelector or DefaultSelector.
type Selector struct {
	table map[key]Dialect
}

// DefaultSelector knows only the built-in lang values.
var DefaultSelector = NewSelector()

// NewSelector returns a selector with the built-in table.
func NewSelector() *Selector {
	s := &Selector{table: make(map[key]Dialect, len(builtin))}
	for k, v := range builtin {
		s.table[k] = v
	}
	return s
}

// WithAliases returns a copy of s that also maps the given lang values. The
// alias targets must belong to the tag they are registered under. Built-in
// lang values cannot be redefined.
func (s *Selector) WithAliases(aliases map[string]Dialect) (*Selector, error) {
	out := &Selector{table: make(map[key]Dialect, len(s.table)+len(aliases))}
	for k, v := range s.table {
		out.table[k] = v
	}
	for lang, d := range aliases {
		var tag TagClass
		switch {
		case d.IsTemplate():
			tag = TagTemplate
		case d.IsStyle():
			tag = TagStyle
		case d.IsScript() && d != Expression:
			tag = TagScript
		default:
			return nil, errors.Errorf("alias %q: dialect %s cannot be selected by a lang attribute", lang, d)
		}
		k := key{tag, lang}
		if _, ok := builtin[k]; ok {
			return nil, errors.Errorf("alias %q: built-in lang value for <%s> cannot be redefined", lang, tag)
		}
		out.table[k] = d
	}
	return out, nil
}

// Select returns the dialect for a tag's content. lang is the raw attribute
// value, empty when the attribute is absent; matching is case-sensitive.
func (s *Selector) Select(tag TagClass, lang string) Dialect {
	if tag == TagOther {
		return None
	}
	if d, ok := s.table[key{tag, lang}]; ok {
		return d
	}
	return tag.Default()
}

// Select resolves with the DefaultSelector.
func Select(tagName, lang string) Dialect {
	return DefaultSelector.Select(ClassifyTag(tagName), lang)
}

// ParseDialect looks a dialect up by the name printed by Dialect.String.
func ParseDialect(name string) (Dialect, error) {
	for d := None; d < dialectCount; d++ {
		if dialectNames[d] == name {
			return d, nil
		}
	}
	return None, errors.Errorf("unknown dialect %q", name)
}
