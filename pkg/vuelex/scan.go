package vuelex

import (
	"strings"

	"github.com/walteh/vuelex/pkg/htmllex"
)

type scanKind uint8

const (
	scanNone scanKind = iota
	scanEndTag
	scanQuote
	scanUnquoted
	scanInterpolation
)

// scanCache remembers the last forward scan. Every cached scan looks for the
// first occurrence of something at or after a position, so a result end found
// from offset from is also the result for any position in [from, end]. A
// negative end means nothing was found from offset from, which then holds for
// every later position too. The lexer keeps a separate cache for `}}` so it
// does not evict the end of the attribute value it is searched in.
type scanCache struct {
	kind scanKind
	arg  int
	from int
	end  int
}

func (c *scanCache) lookup(kind scanKind, arg, pos int, scan func() int) int {
	if c.kind == kind && c.arg == arg && c.from <= pos && (c.end < 0 || pos <= c.end) {
		return c.end
	}
	end := scan()
	*c = scanCache{kind: kind, arg: arg, from: pos, end: end}
	return end
}

// valueLimit returns the end of the attribute value being scanned: the
// closing quote, the end of an unquoted value, or the end of input.
func (l *Lexer) valueLimit() int {
	if q := l.state.Quote; q != 0 {
		return l.scan.lookup(scanQuote, int(q), l.pos, func() int {
			if i := strings.IndexByte(l.src[l.pos:], q); i >= 0 {
				return l.pos + i
			}
			return len(l.src)
		})
	}
	return l.scan.lookup(scanUnquoted, 0, l.pos, func() int {
		return htmllex.ScanUnquotedValue(l.src, l.pos)
	})
}

// interpolationEnd returns the start of the `}}` closing the current
// interpolation before limit, or -1.
func (l *Lexer) interpolationEnd(limit int) int {
	return l.findInterpolationEnd(l.pos, limit)
}

// findInterpolationEnd returns the first `}}` in [from, limit), or -1.
func (l *Lexer) findInterpolationEnd(from, limit int) int {
	return l.interp.lookup(scanInterpolation, limit, from, func() int {
		return htmllex.FindInterpolationEnd(l.src, from, limit)
	})
}

// regionEnd returns the start of the end tag closing the current script,
// style or raw template body.
func (l *Lexer) regionEnd() int {
	name := "template"
	switch l.state.Mode {
	case ModeScript:
		name = "script"
	case ModeStyle:
		name = "style"
	}
	return l.scan.lookup(scanEndTag, int(l.state.Mode), l.pos, func() int {
		return htmllex.FindEndTag(l.src, l.pos, name)
	})
}
