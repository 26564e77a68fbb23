// Package dialect names the grammars an embedded region can be lexed with and
// resolves which one applies to a `<template>`, `<script>` or `<style>` body.
package dialect

import (
	"strings"

	"gitlab.com/tozd/go/errors"
)

// Dialect identifies the grammar that owns a span of the document.
type Dialect uint8

const (
	// None is used for tags whose content is never delegated.
	None Dialect = iota

	// Template is the default template dialect (HTML markup with Vue directives).
	Template
	// TemplateHTML is selected by `<template lang="html">`.
	TemplateHTML
	// TemplatePug is the indentation based markup shorthand (`jade` / `pug`).
	TemplatePug

	// Script is the default script dialect at the configured Level.
	Script
	// ScriptTS is the typed superset.
	ScriptTS
	// ScriptJSX is the default script dialect with embedded tag expressions.
	ScriptJSX
	// ScriptTSX is the typed superset with embedded tag expressions.
	ScriptTSX

	// Style is plain css.
	Style
	StyleSCSS
	StyleSass
	StyleLess
	StyleStylus
	StylePostCSS

	// Expression is the script subset used inside bindings and interpolations.
	Expression

	dialectCount
)

var dialectNames = [...]string{
	None:         "none",
	Template:     "template",
	TemplateHTML: "template-html",
	TemplatePug:  "template-pug",
	Script:       "script",
	ScriptTS:     "script-ts",
	ScriptJSX:    "script-jsx",
	ScriptTSX:    "script-tsx",
	Style:        "style",
	StyleSCSS:    "style-scss",
	StyleSass:    "style-sass",
	StyleLess:    "style-less",
	StyleStylus:  "style-stylus",
	StylePostCSS: "style-postcss",
	Expression:   "expression",
}

func (d Dialect) String() string {
	if d < dialectCount {
		return dialectNames[d]
	}
	return "unknown"
}

// Valid reports whether d is one of the declared dialects.
func (d Dialect) Valid() bool {
	return d < dialectCount
}

// All returns every declared dialect except None, in declaration order.
func All() []Dialect {
	out := make([]Dialect, 0, dialectCount-1)
	for d := Template; d < dialectCount; d++ {
		out = append(out, d)
	}
	return out
}

// IsScript reports whether d is lexed by one of the script grammars.
func (d Dialect) IsScript() bool {
	return d >= Script && d <= ScriptTSX || d == Expression
}

// IsStyle reports whether d is lexed by one of the style grammars.
func (d Dialect) IsStyle() bool {
	return d >= Style && d <= StylePostCSS
}

// IsTemplate reports whether d is one of the template dialects.
func (d Dialect) IsTemplate() bool {
	return d >= Template && d <= TemplatePug
}

// Level is the base scripting level accepted by the default script dialect.
type Level uint8

const (
	ES5 Level = iota
	ES6
	ESNext
)

// DefaultLevel is the level used when none is configured.
const DefaultLevel = ES6

func (l Level) String() string {
	switch l {
	case ES5:
		return "es5"
	case ES6:
		return "es6"
	case ESNext:
		return "esnext"
	default:
		return "unknown"
	}
}

// ParseLevel accepts the names printed by Level.String plus a few common aliases.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "es5":
		return ES5, nil
	case "", "es6", "es2015":
		return ES6, nil
	case "esnext", "es2020", "latest":
		return ESNext, nil
	default:
		return ES6, errors.Errorf("unknown language level %q", s)
	}
}
