// Package vuelex lexes Vue-style single-file templates: HTML markup with
// directive attributes and `{{ }}` interpolations, plus `<script>`, `<style>`
// and `<template lang>` bodies handed to the grammar their lang attribute
// selects.
//
// The lexer is total: every byte of the input ends up in exactly one token and
// malformed input produces token.Error spans instead of errors. It is also
// restartable. Each step depends only on the current State and the input from
// the current position onward, so lexing can resume from any token start given
// the State recorded there (see Snapshot and Resume).
package vuelex

import (
	"iter"
	"math"
	"slices"
	"strings"
	"unicode/utf8"

	"gitlab.com/tozd/go/errors"

	"github.com/walteh/vuelex/pkg/dialect"
	"github.com/walteh/vuelex/pkg/htmllex"
	"github.com/walteh/vuelex/pkg/sublex"
	"github.com/walteh/vuelex/pkg/token"
)

var ErrNilInput = errors.Base("nil input")

// maxIdleSteps bounds the state changes allowed without emitting a token.
const maxIdleSteps = 8

const (
	endTagOpen   = "</"
	commentOpen  = "<!--"
	commentClose = "-->"
	interpOpen   = "{{"
	interpClose  = "}}"
	selfClose    = "/>"
)

// Lexer produces the tokens of one document. It is not safe for concurrent
// use; independent Lexers are.
type Lexer struct {
	src   string
	base  int
	pos   int
	state State
	opts  options

	expression *sublex.Grammar
	style      *sublex.Grammar

	scan   scanCache
	interp scanCache
}

// New returns a lexer positioned at the start of src.
func New(src []byte, opts ...Option) (*Lexer, error) {
	if src == nil {
		return nil, errors.Errorf("creating lexer: %w", ErrNilInput)
	}
	return newLexer(string(src), 0, State{}, buildOptions(opts)), nil
}

func newLexer(src string, base int, st State, o options) *Lexer {
	return &Lexer{
		src:        src,
		base:       base,
		state:      st,
		opts:       o,
		expression: sublex.For(dialect.Expression, o.level),
		style:      sublex.For(dialect.Style, o.level),
	}
}

// State returns the state at the current token boundary, i.e. the state the
// next token is lexed in.
func (l *Lexer) State() State {
	return l.state
}

// Offset returns the absolute offset of the next token.
func (l *Lexer) Offset() int {
	return l.base + l.pos
}

// Next returns the next token, or false at the end of input.
func (l *Lexer) Next() (token.Token, bool) {
	for idle := 0; l.pos < len(l.src); idle++ {
		before := l.state
		tok, ok := l.step()
		if ok {
			l.trace(before, tok)
			return tok.Shift(l.base), true
		}
		if idle >= maxIdleSteps {
			_, size := utf8.DecodeRuneInString(l.src[l.pos:])
			l.opts.logger.Warn().Int("offset", l.Offset()).Stringer("state", l.state).Msg("lexer made no progress, skipping a character")
			l.state = htmlState(l.state.TemplateDepth)
			return l.markup(token.Error, l.pos+size).Shift(l.base), true
		}
	}
	return token.Token{}, false
}

// All yields the remaining tokens.
func (l *Lexer) All() iter.Seq[token.Token] {
	return func(yield func(token.Token) bool) {
		for {
			tok, ok := l.Next()
			if !ok || !yield(tok) {
				return
			}
		}
	}
}

// Lex returns every token of src.
func Lex(src []byte, opts ...Option) ([]token.Token, error) {
	l, err := New(src, opts...)
	if err != nil {
		return nil, err
	}
	return slices.Collect(l.All()), nil
}

// LexWithStates is Lex that also returns, for every token, the state it was
// lexed in. states[i] is what Snapshot returns for tokens[i].Start.
func LexWithStates(src []byte, opts ...Option) ([]token.Token, []State, error) {
	l, err := New(src, opts...)
	if err != nil {
		return nil, nil, err
	}
	var (
		tokens []token.Token
		states []State
	)
	for {
		st := l.State()
		tok, ok := l.Next()
		if !ok {
			return tokens, states, nil
		}
		tokens = append(tokens, tok)
		states = append(states, st)
	}
}

func (l *Lexer) trace(before State, tok token.Token) {
	if before.Mode == l.state.Mode {
		return
	}
	l.opts.logger.Trace().
		Int("offset", l.base+tok.Start).
		Stringer("from", before.Mode).
		Stringer("to", l.state.Mode).
		Stringer("dialect", l.state.Dialect).
		Msg("mode transition")
}

// emit returns the token [pos, end) and advances past it.
func (l *Lexer) emit(kind token.Kind, end int, d dialect.Dialect) token.Token {
	tok := token.Token{Kind: kind, Start: l.pos, End: end, Dialect: d}
	l.pos = end
	return tok
}

func (l *Lexer) markup(kind token.Kind, end int) token.Token {
	return l.emit(kind, end, dialect.Template)
}

// embedded lexes one token of g in region, the source clipped to the end of
// the embedded span.
func (l *Lexer) embedded(g *sublex.Grammar, region string, d dialect.Dialect) token.Token {
	m := g.Next(region[l.pos:], l.state.Sub)
	l.state.Sub = m.Next
	return l.emit(m.Kind, l.pos+m.Len, d)
}

// step lexes one token. It returns false when it only changed the state.
func (l *Lexer) step() (token.Token, bool) {
	switch l.state.Mode {
	case ModeHTML:
		return l.lexHTML(), true
	case ModeTagName:
		return l.lexTagName()
	case ModeEndTagName:
		return l.lexEndTagName()
	case ModeTag:
		return l.lexTag()
	case ModeEndTag:
		return l.lexEndTag()
	case ModeAttrValueStart:
		return l.lexAttrValueStart()
	case ModeAttrValue:
		return l.lexAttrValue()
	case ModeAttrInterpolation:
		return l.lexAttrInterpolation()
	case ModeInterpolation:
		return l.lexInterpolation()
	case ModeComment:
		return l.lexComment(), true
	case ModeScript, ModeStyle, ModeRawTemplate:
		return l.lexRegion()
	default:
		l.state = htmlState(l.state.TemplateDepth)
		return token.Token{}, false
	}
}

func (l *Lexer) lexHTML() token.Token {
	src, pos := l.src, l.pos
	switch c := src[pos]; {
	case htmllex.IsSpace(c):
		return l.markup(token.Whitespace, htmllex.ScanWhitespace(src, pos))
	case c == '<':
		switch htmllex.MarkupAt(src, pos) {
		case htmllex.MarkupStartTag:
			l.state.Mode = ModeTagName
			return l.markup(token.TagOpenStart, pos+1)
		case htmllex.MarkupEndTag:
			l.state.Mode = ModeEndTagName
			return l.markup(token.TagCloseStart, pos+len(endTagOpen))
		case htmllex.MarkupComment:
			l.state.Mode = ModeComment
			return l.markup(token.CommentStart, pos+len(commentOpen))
		case htmllex.MarkupCData:
			return l.markup(token.CData, htmllex.ScanCData(src, pos))
		case htmllex.MarkupDecl:
			return l.markup(token.MarkupDecl, htmllex.ScanMarkupDecl(src, pos))
		}
	case c == '&':
		if end := htmllex.ScanCharRef(src, pos, len(src)); end > pos {
			return l.markup(token.CharRef, end)
		}
	case c == '{':
		if htmllex.HasInterpolationOpen(src, pos) && l.findInterpolationEnd(pos+len(interpOpen), len(src)) >= 0 {
			l.state.Mode = ModeInterpolation
			l.state.Sub = 0
			return l.markup(token.InterpolationStart, pos+len(interpOpen))
		}
	}
	return l.markup(token.Text, htmllex.ScanText(src, pos))
}

func (l *Lexer) lexComment() token.Token {
	if htmllex.HasCommentClose(l.src, l.pos) {
		l.state = htmlState(l.state.TemplateDepth)
		return l.markup(token.CommentEnd, l.pos+len(commentClose))
	}
	return l.markup(token.CommentText, htmllex.ScanCommentText(l.src, l.pos))
}

func (l *Lexer) lexInterpolation() (token.Token, bool) {
	end := l.interpolationEnd(len(l.src))
	switch {
	case end == l.pos:
		l.state = htmlState(l.state.TemplateDepth)
		return l.markup(token.InterpolationEnd, l.pos+len(interpClose)), true
	case end < 0:
		l.state = htmlState(l.state.TemplateDepth)
		return token.Token{}, false
	default:
		return l.embedded(l.expression, l.src[:end], dialect.Expression), true
	}
}

func (l *Lexer) lexTagName() (token.Token, bool) {
	end := htmllex.ScanTagName(l.src, l.pos)
	tag := dialect.TagOther
	if end > l.pos {
		tag = dialect.ClassifyTag(l.src[l.pos:end])
	}
	l.state = State{Mode: ModeTag, Dialect: tag.Default(), Tag: tag, TemplateDepth: l.state.TemplateDepth}
	if end == l.pos {
		return token.Token{}, false
	}
	return l.markup(token.TagName, end), true
}

func (l *Lexer) lexEndTagName() (token.Token, bool) {
	end := htmllex.ScanTagName(l.src, l.pos)
	depth := l.state.TemplateDepth
	if end > l.pos && depth > 0 && dialect.ClassifyTag(l.src[l.pos:end]) == dialect.TagTemplate {
		depth--
	}
	l.state = State{Mode: ModeEndTag, TemplateDepth: depth}
	if end == l.pos {
		return token.Token{}, false
	}
	return l.markup(token.TagName, end), true
}

func (l *Lexer) lexEndTag() (token.Token, bool) {
	src, pos := l.src, l.pos
	switch c := src[pos]; {
	case htmllex.IsSpace(c):
		return l.markup(token.Whitespace, htmllex.ScanWhitespace(src, pos)), true
	case c == '>':
		l.state = htmlState(l.state.TemplateDepth)
		return l.markup(token.TagEnd, pos+1), true
	case c == '<':
		l.state = htmlState(l.state.TemplateDepth)
		return token.Token{}, false
	}
	end := pos + 1
	for end < len(src) && !htmllex.IsSpace(src[end]) && src[end] != '>' && src[end] != '<' {
		end++
	}
	return l.markup(token.Error, end), true
}

func (l *Lexer) lexTag() (token.Token, bool) {
	src, pos := l.src, l.pos
	switch c := src[pos]; {
	case htmllex.IsSpace(c):
		return l.markup(token.Whitespace, htmllex.ScanWhitespace(src, pos)), true
	case c == '>':
		return l.closeOpenTag(), true
	case strings.HasPrefix(src[pos:], selfClose):
		l.state = htmlState(l.state.TemplateDepth)
		return l.markup(token.TagSelfCloseEnd, pos+len(selfClose)), true
	case c == '<':
		// unterminated tag, the next one closes it
		l.state = htmlState(l.state.TemplateDepth)
		return token.Token{}, false
	case c == '=':
		if l.state.Attr == htmllex.AttrNone {
			return l.markup(token.Error, pos+1), true
		}
		l.state.Mode = ModeAttrValueStart
		return l.markup(token.AttrEq, pos+1), true
	case c == '"', c == '\'', c == '/':
		return l.markup(token.Error, pos+1), true
	}

	end := htmllex.ScanAttrName(src, pos)
	kind, class := htmllex.ClassifyAttr(src[pos:end], l.state.Tag)
	l.state.Attr = class
	return l.markup(kind, end), true
}

// closeOpenTag emits the '>' of an open tag and enters the tag's content.
func (l *Lexer) closeOpenTag() token.Token {
	depth := l.state.TemplateDepth
	d := l.state.Dialect
	switch l.state.Tag {
	case dialect.TagScript:
		l.state = State{Mode: ModeScript, Dialect: d, Tag: dialect.TagScript, TemplateDepth: depth}
	case dialect.TagStyle:
		l.state = State{Mode: ModeStyle, Dialect: d, Tag: dialect.TagStyle, TemplateDepth: depth}
	case dialect.TagTemplate:
		if depth < math.MaxUint16 {
			depth++
		}
		if d == dialect.TemplatePug {
			l.state = State{Mode: ModeRawTemplate, Dialect: d, Tag: dialect.TagTemplate, TemplateDepth: depth}
		} else {
			l.state = htmlState(depth)
		}
	default:
		l.state = htmlState(depth)
	}
	return l.markup(token.TagEnd, l.pos+1)
}

func (l *Lexer) lexAttrValueStart() (token.Token, bool) {
	src, pos := l.src, l.pos
	switch c := src[pos]; {
	case htmllex.IsSpace(c):
		return l.markup(token.Whitespace, htmllex.ScanWhitespace(src, pos)), true
	case c == '"', c == '\'':
		l.state.Mode = ModeAttrValue
		l.state.Quote = c
		l.state.Sub = 0
		if strings.IndexByte(src[pos+1:], c) < 0 {
			// the value runs to the end of input
			return l.markup(token.Error, pos+1), true
		}
		return l.markup(token.AttrQuote, pos+1), true
	case c == '>', c == '<':
		l.state.Mode = ModeTag
		l.state.Attr = htmllex.AttrNone
		return token.Token{}, false
	default:
		l.state.Mode = ModeAttrValue
		l.state.Quote = 0
		l.state.Sub = 0
		return token.Token{}, false
	}
}

// leaveAttrValue returns to the tag after a value.
func (l *Lexer) leaveAttrValue() {
	l.state.Mode = ModeTag
	l.state.Attr = htmllex.AttrNone
	l.state.Quote = 0
	l.state.Sub = 0
}

func (l *Lexer) lexAttrValue() (token.Token, bool) {
	limit := l.valueLimit()
	if l.pos == limit {
		quoted := l.state.Quote != 0
		l.leaveAttrValue()
		if quoted {
			return l.markup(token.AttrQuote, l.pos+1), true
		}
		return token.Token{}, false
	}

	switch l.state.Attr {
	case htmllex.AttrExpression:
		return l.embedded(l.expression, l.src[:limit], dialect.Expression), true
	case htmllex.AttrStyle:
		return l.embedded(l.style, l.src[:limit], dialect.Style), true
	case htmllex.AttrLang:
		l.state.Dialect = l.opts.selector.Select(l.state.Tag, l.src[l.pos:limit])
		return l.markup(token.AttrValue, limit), true
	}

	src, pos := l.src, l.pos
	switch src[pos] {
	case '&':
		if end := htmllex.ScanCharRef(src, pos, limit); end > pos {
			return l.markup(token.CharRef, end), true
		}
	case '{':
		if pos+len(interpOpen) <= limit && htmllex.HasInterpolationOpen(src, pos) &&
			l.findInterpolationEnd(pos+len(interpOpen), limit) >= 0 {
			l.state.Mode = ModeAttrInterpolation
			l.state.Sub = 0
			return l.markup(token.InterpolationStart, pos+len(interpOpen)), true
		}
	}
	return l.markup(token.AttrValue, htmllex.ScanValueText(src, pos, limit)), true
}

func (l *Lexer) lexAttrInterpolation() (token.Token, bool) {
	end := l.interpolationEnd(l.valueLimit())
	switch {
	case end == l.pos:
		l.state.Mode = ModeAttrValue
		l.state.Sub = 0
		return l.markup(token.InterpolationEnd, l.pos+len(interpClose)), true
	case end < 0:
		l.state.Mode = ModeAttrValue
		l.state.Sub = 0
		return token.Token{}, false
	default:
		return l.embedded(l.expression, l.src[:end], dialect.Expression), true
	}
}

// lexRegion lexes the body of a script, style or raw template element up to
// its end tag.
func (l *Lexer) lexRegion() (token.Token, bool) {
	limit := l.regionEnd()
	if limit == l.pos {
		l.state = htmlState(l.state.TemplateDepth)
		return token.Token{}, false
	}
	g := sublex.For(l.state.Dialect, l.opts.level)
	if g == nil {
		return l.emit(token.Text, limit, l.state.Dialect), true
	}
	return l.embedded(g, l.src[:limit], l.state.Dialect), true
}
