package vuelex

import (
	"fmt"
	"strconv"

	"gitlab.com/tozd/go/errors"

	"github.com/walteh/vuelex/pkg/dialect"
	"github.com/walteh/vuelex/pkg/htmllex"
)

// Mode is the part of the document the lexer is in.
type Mode uint8

const (
	// ModeHTML is text between tags. The zero State is in this mode.
	ModeHTML Mode = iota
	// ModeTagName follows '<'.
	ModeTagName
	// ModeEndTagName follows '</'.
	ModeEndTagName
	// ModeTag is inside an open tag, between attributes.
	ModeTag
	// ModeEndTag is inside an end tag, after its name.
	ModeEndTag
	// ModeAttrValueStart follows an attribute's '='.
	ModeAttrValueStart
	// ModeAttrValue is inside an attribute value, quoted when State.Quote is set.
	ModeAttrValue
	// ModeAttrInterpolation is between `{{` and `}}` inside an attribute value.
	ModeAttrInterpolation
	// ModeInterpolation is between `{{` and `}}` in text.
	ModeInterpolation
	// ModeComment is inside `<!-- -->`.
	ModeComment
	// ModeScript is the body of a script tag.
	ModeScript
	// ModeStyle is the body of a style tag.
	ModeStyle
	// ModeRawTemplate is the body of a template whose dialect is not markup.
	ModeRawTemplate

	modeCount
)

var modeNames = [...]string{
	ModeHTML:              "html",
	ModeTagName:           "tag-name",
	ModeEndTagName:        "end-tag-name",
	ModeTag:               "tag",
	ModeEndTag:            "end-tag",
	ModeAttrValueStart:    "attr-value-start",
	ModeAttrValue:         "attr-value",
	ModeAttrInterpolation: "attr-interpolation",
	ModeInterpolation:     "interpolation",
	ModeComment:           "comment",
	ModeScript:            "script",
	ModeStyle:             "style",
	ModeRawTemplate:       "raw-template",
}

func (m Mode) String() string {
	if m < modeCount {
		return modeNames[m]
	}
	return "unknown"
}

// State is everything the lexer knows at a token boundary. It is a plain value:
// copy it, compare it, or serialize it with Encode.
type State struct {
	Mode Mode
	// Dialect is the dialect of the active region, or the pending content
	// dialect while an open tag is scanned.
	Dialect dialect.Dialect
	// Sub is the embedded grammar's own sub-state.
	Sub uint8
	// Tag is the class of the open tag being scanned.
	Tag dialect.TagClass
	// Attr classifies the pending attribute name.
	Attr htmllex.AttrClass
	// Quote is the delimiter of the attribute value being scanned, 0 when unquoted.
	Quote byte
	// TemplateDepth counts open <template> elements.
	TemplateDepth uint16
}

// IsInitial reports whether s equals the state at the start of a document.
func (s State) IsInitial() bool {
	return s == State{}
}

func (s State) String() string {
	q := "none"
	if s.Quote != 0 {
		q = strconv.QuoteRune(rune(s.Quote))
	}
	return fmt.Sprintf("%s dialect=%s sub=%d tag=%s attr=%s quote=%s depth=%d",
		s.Mode, s.Dialect, s.Sub, s.Tag, s.Attr, q, s.TemplateDepth)
}

// bit layout of an encoded State
const (
	modeShift    = 0
	dialectShift = 4
	subShift     = 8
	tagShift     = 12
	attrShift    = 14
	quoteShift   = 17
	depthShift   = 32

	modeMask    = 0xf
	dialectMask = 0xf
	subMask     = 0xf
	tagMask     = 0x3
	attrMask    = 0x7
	quoteMask   = 0x3
	depthMask   = 0xffff

	usedBits = modeMask<<modeShift | dialectMask<<dialectShift | subMask<<subShift |
		tagMask<<tagShift | attrMask<<attrShift | quoteMask<<quoteShift | depthMask<<depthShift
)

var ErrInvalidState = errors.Base("invalid lexer state")

func quoteCode(q byte) uint64 {
	switch q {
	case '"':
		return 1
	case '\'':
		return 2
	default:
		return 0
	}
}

// Encode packs s into an integer. The zero State encodes to 0.
func (s State) Encode() uint64 {
	return uint64(s.Mode)&modeMask<<modeShift |
		uint64(s.Dialect)&dialectMask<<dialectShift |
		uint64(s.Sub)&subMask<<subShift |
		uint64(s.Tag)&tagMask<<tagShift |
		uint64(s.Attr)&attrMask<<attrShift |
		quoteCode(s.Quote)<<quoteShift |
		uint64(s.TemplateDepth)<<depthShift
}

// Decode is the inverse of Encode. Every field is validated.
func Decode(v uint64) (State, error) {
	if v&^uint64(usedBits) != 0 {
		return State{}, errors.Errorf("decoding %#x: unused bits set: %w", v, ErrInvalidState)
	}

	s := State{
		Mode:          Mode(v >> modeShift & modeMask),
		Dialect:       dialect.Dialect(v >> dialectShift & dialectMask),
		Sub:           uint8(v >> subShift & subMask),
		Tag:           dialect.TagClass(v >> tagShift & tagMask),
		Attr:          htmllex.AttrClass(v >> attrShift & attrMask),
		TemplateDepth: uint16(v >> depthShift & depthMask),
	}

	switch v >> quoteShift & quoteMask {
	case 1:
		s.Quote = '"'
	case 2:
		s.Quote = '\''
	case 3:
		return State{}, errors.Errorf("decoding %#x: bad quote: %w", v, ErrInvalidState)
	}

	if err := s.Validate(); err != nil {
		return State{}, errors.Errorf("decoding %#x: %w", v, err)
	}
	return s, nil
}

// Validate reports whether every field of s holds a value the lexer can produce.
func (s State) Validate() error {
	switch {
	case s.Mode >= modeCount:
		return errors.Errorf("mode %d: %w", s.Mode, ErrInvalidState)
	case !s.Dialect.Valid():
		return errors.Errorf("dialect %d: %w", s.Dialect, ErrInvalidState)
	case s.Sub > subMask:
		return errors.Errorf("sub-state %d: %w", s.Sub, ErrInvalidState)
	case s.Tag > dialect.TagTemplate:
		return errors.Errorf("tag class %d: %w", s.Tag, ErrInvalidState)
	case !s.Attr.Valid():
		return errors.Errorf("attribute class %d: %w", s.Attr, ErrInvalidState)
	case s.Quote != 0 && s.Quote != '"' && s.Quote != '\'':
		return errors.Errorf("quote %q: %w", s.Quote, ErrInvalidState)
	}
	return nil
}

// MarshalText renders the encoded state as hex.
func (s State) MarshalText() ([]byte, error) {
	return []byte(strconv.FormatUint(s.Encode(), 16)), nil
}

// UnmarshalText parses the output of MarshalText.
func (s *State) UnmarshalText(text []byte) error {
	v, err := strconv.ParseUint(string(text), 16, 64)
	if err != nil {
		return errors.Errorf("parsing state %q: %w", text, ErrInvalidState)
	}
	st, err := Decode(v)
	if err != nil {
		return err
	}
	*s = st
	return nil
}

// htmlState is the canonical state between tags.
func htmlState(depth uint16) State {
	return State{Mode: ModeHTML, TemplateDepth: depth}
}
