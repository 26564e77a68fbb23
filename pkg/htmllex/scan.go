// Package htmllex scans the markup layer of a template: text, tags,
// attributes, comments and character references. The scanners are pure
// functions of (source, position); the caller decides which one applies and
// keeps all state.
package htmllex

import (
	"strings"
)

// Markup is what a '<' at some position opens.
type Markup uint8

const (
	MarkupNone Markup = iota
	MarkupStartTag
	MarkupEndTag
	MarkupComment
	MarkupCData
	MarkupDecl
)

const (
	commentOpen  = "<!--"
	commentClose = "-->"
	cdataOpen    = "<![CDATA["
	cdataClose   = "]]>"
	interpOpen   = "{{"
	interpClose  = "}}"
)

// IsSpace reports HTML whitespace.
func IsSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}

func isLetter(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

// MarkupAt classifies the construct opened by src[pos], which must be '<'.
func MarkupAt(src string, pos int) Markup {
	rest := src[pos:]
	switch {
	case !strings.HasPrefix(rest, "<"):
		return MarkupNone
	case strings.HasPrefix(rest, commentOpen):
		return MarkupComment
	case strings.HasPrefix(rest, cdataOpen):
		return MarkupCData
	case strings.HasPrefix(rest, "<!"), strings.HasPrefix(rest, "<?"):
		return MarkupDecl
	case len(rest) > 2 && rest[1] == '/' && isLetter(rest[2]):
		return MarkupEndTag
	case len(rest) > 1 && isLetter(rest[1]):
		return MarkupStartTag
	default:
		return MarkupNone
	}
}

// ScanWhitespace returns the end of the whitespace run at pos.
func ScanWhitespace(src string, pos int) int {
	for pos < len(src) && IsSpace(src[pos]) {
		pos++
	}
	return pos
}

func isNameEnd(c byte) bool {
	return IsSpace(c) || c == '/' || c == '>' || c == '<' || c == '=' || c == '"' || c == '\''
}

// ScanTagName returns the end of the tag name at pos, pos if there is none.
func ScanTagName(src string, pos int) int {
	if pos >= len(src) || !isLetter(src[pos]) {
		return pos
	}
	for pos < len(src) && !isNameEnd(src[pos]) {
		pos++
	}
	return pos
}

// ScanAttrName returns the end of the attribute name at pos.
func ScanAttrName(src string, pos int) int {
	for pos < len(src) && !isNameEnd(src[pos]) {
		pos++
	}
	return pos
}

// ScanUnquotedValue returns the end of an unquoted attribute value.
func ScanUnquotedValue(src string, pos int) int {
	for pos < len(src) && !IsSpace(src[pos]) && src[pos] != '>' {
		pos++
	}
	return pos
}

// ScanCharRef returns the end of the character reference at pos (`&name;`,
// `&#10;`, `&#x1F;`), or pos when there is none before limit.
func ScanCharRef(src string, pos, limit int) int {
	if pos >= limit || src[pos] != '&' {
		return pos
	}
	i := pos + 1
	switch {
	case i < limit && src[i] == '#':
		i++
		hex := i < limit && (src[i] == 'x' || src[i] == 'X')
		if hex {
			i++
		}
		start := i
		for i < limit && (isDigit(src[i]) || hex && isHexLetter(src[i])) {
			i++
		}
		if i == start {
			return pos
		}
	case i < limit && isLetter(src[i]):
		for i < limit && (isLetter(src[i]) || isDigit(src[i])) {
			i++
		}
	default:
		return pos
	}
	if i < limit && src[i] == ';' {
		return i + 1
	}
	return pos
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isHexLetter(c byte) bool {
	return c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F'
}

// HasInterpolationOpen reports whether `{{` starts at pos.
func HasInterpolationOpen(src string, pos int) bool {
	return strings.HasPrefix(src[pos:], interpOpen)
}

// FindInterpolationEnd returns the index of the first `}}` in src[from:limit],
// or -1.
func FindInterpolationEnd(src string, from, limit int) int {
	if from > limit {
		return -1
	}
	if i := strings.Index(src[from:limit], interpClose); i >= 0 {
		return from + i
	}
	return -1
}

// ScanText returns the end of the text run at pos. It always consumes at
// least one byte and stops before whitespace, markup, a character reference
// or `{{`.
func ScanText(src string, pos int) int {
	return scanData(src, pos, len(src), true)
}

// ScanValueText is ScanText for attribute values: it stops at limit, never
// at whitespace or markup.
func ScanValueText(src string, pos, limit int) int {
	return scanData(src, pos, limit, false)
}

func scanData(src string, pos, limit int, markup bool) int {
	i := pos + 1
	for i < limit {
		c := src[i]
		switch {
		case markup && IsSpace(c):
			return i
		case markup && c == '<' && MarkupAt(src, i) != MarkupNone:
			return i
		case c == '&' && ScanCharRef(src, i, limit) > i:
			return i
		case c == '{' && i+1 < limit && src[i+1] == '{':
			return i
		}
		i++
	}
	return limit
}

// ScanCommentText returns the end of the comment body at pos: the start of
// `-->` or the end of input.
func ScanCommentText(src string, pos int) int {
	if i := strings.Index(src[pos:], commentClose); i >= 0 {
		return pos + i
	}
	return len(src)
}

// HasCommentClose reports whether `-->` starts at pos.
func HasCommentClose(src string, pos int) bool {
	return strings.HasPrefix(src[pos:], commentClose)
}

// ScanCData returns the end of the CDATA section at pos, including `]]>`.
func ScanCData(src string, pos int) int {
	if i := strings.Index(src[pos+len(cdataOpen):], cdataClose); i >= 0 {
		return pos + len(cdataOpen) + i + len(cdataClose)
	}
	return len(src)
}

// ScanMarkupDecl returns the end of `<!...>` or `<?...>` at pos, including '>'.
func ScanMarkupDecl(src string, pos int) int {
	if i := strings.IndexByte(src[pos:], '>'); i >= 0 {
		return pos + i + 1
	}
	return len(src)
}

// FindEndTag returns the start of the first `</name` end tag at or after pos,
// or len(src). The name match is ASCII case-insensitive and must be followed
// by whitespace, '/', '>' or the end of input.
func FindEndTag(src string, pos int, name string) int {
	for i := pos; i < len(src); {
		j := strings.Index(src[i:], "</")
		if j < 0 {
			break
		}
		start := i + j
		nameEnd := start + 2 + len(name)
		if nameEnd <= len(src) && strings.EqualFold(src[start+2:nameEnd], name) {
			if nameEnd == len(src) || IsSpace(src[nameEnd]) || src[nameEnd] == '/' || src[nameEnd] == '>' {
				return start
			}
		}
		i = start + 2
	}
	return len(src)
}
