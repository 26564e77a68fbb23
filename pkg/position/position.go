package position

import (
	"fmt"
	"sort"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/apparentlymart/go-textseg/v13/textseg"
)

// DefaultTabWidth is used when no editor configuration says otherwise.
const DefaultTabWidth = 4

// Place is a 1-based line and column. Columns from Index.Place count grapheme
// clusters, with tabs advancing to the next tab stop; Index.UTF16Place counts
// UTF-16 code units.
type Place struct {
	Line      int `json:"line" yaml:"line"`
	Character int `json:"character" yaml:"character"`
}

func (p Place) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Character)
}

type Range struct {
	Start Place `json:"start" yaml:"start"`
	End   Place `json:"end" yaml:"end"`
}

func (r Range) String() string {
	return fmt.Sprintf("%s-%s", r.Start, r.End)
}

// RawPosition represents a position in the source text
type RawPosition struct {
	// Offset is the byte offset in the source text
	Offset int
	// Text is the actual text at this position
	Text string
}

func NewBasicPosition(text string, offset int) RawPosition {
	return RawPosition{Text: text, Offset: offset}
}

// Length returns the length of the text at this position
func (p RawPosition) Length() int {
	return len(p.Text)
}

func (p RawPosition) GetEndPosition() RawPosition {
	return RawPosition{Offset: p.Offset + p.Length()}
}

func (p RawPosition) String() string {
	return fmt.Sprintf("%s@%d", p.Text, p.Offset)
}

// Index maps byte offsets of one document to places. It remembers the last
// place it computed for each kind of column, so offsets asked for in order
// cost time proportional to the distance between them. An Index is not safe
// for concurrent use.
type Index struct {
	src        []byte
	lineStarts []int
	tabWidth   int

	display cursor
	units   cursor
}

// cursor is a known column on a line. offset is always on a unit boundary.
type cursor struct {
	line   int
	offset int
	col    int
}

// NewIndex indexes src. A tabWidth below 1 uses DefaultTabWidth.
func NewIndex(src []byte, tabWidth int) *Index {
	if tabWidth < 1 {
		tabWidth = DefaultTabWidth
	}
	starts := []int{0}
	for i, c := range src {
		if c == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &Index{src: src, lineStarts: starts, tabWidth: tabWidth}
}

// Place returns the place of offset. Offsets past the end clamp to the end.
func (x *Index) Place(offset int) Place {
	offset = max(0, min(offset, len(x.src)))
	line := x.lineOf(offset)
	return Place{Line: line + 1, Character: x.advance(&x.display, line, offset, x.displayUnit) + 1}
}

// UTF16Place is Place with columns counted in UTF-16 code units, the unit
// LSP clients use. A tab is one unit and a character outside the basic
// multilingual plane is two.
func (x *Index) UTF16Place(offset int) Place {
	offset = max(0, min(offset, len(x.src)))
	line := x.lineOf(offset)
	return Place{Line: line + 1, Character: x.advance(&x.units, line, offset, x.utf16Unit) + 1}
}

func (x *Index) lineOf(offset int) int {
	return sort.Search(len(x.lineStarts), func(i int) bool {
		return x.lineStarts[i] > offset
	}) - 1
}

func (x *Index) lineEnd(line int) int {
	if line+1 < len(x.lineStarts) {
		return x.lineStarts[line+1]
	}
	return len(x.src)
}

// advance moves c forward to offset and returns the 0-based column there.
// c restarts from the line start when offset is on another line or behind it.
// unit reports the byte length and width of the unit at pos.
func (x *Index) advance(c *cursor, line, offset int, unit func(pos, col, end int) (int, int)) int {
	if c.line != line || c.offset > offset || c.offset < x.lineStarts[line] {
		*c = cursor{line: line, offset: x.lineStarts[line]}
	}
	end := x.lineEnd(line)
	for c.offset < offset {
		adv, width := unit(c.offset, c.col, end)
		if c.offset+adv > offset {
			// offset splits a unit, which still takes a column
			return c.col + 1
		}
		c.offset += adv
		c.col += width
	}
	return c.col
}

// displayUnit measures one grapheme cluster. Tabs advance to the next stop.
func (x *Index) displayUnit(pos, col, end int) (int, int) {
	adv, cluster, err := textseg.ScanGraphemeClusters(x.src[pos:end], true)
	if err != nil || adv <= 0 {
		return 1, 1
	}
	if len(cluster) == 1 && cluster[0] == '\t' {
		return 1, x.tabWidth - col%x.tabWidth
	}
	return adv, 1
}

// utf16Unit measures one rune. Invalid bytes count as one unit each.
func (x *Index) utf16Unit(pos, _, end int) (int, int) {
	r, size := utf8.DecodeRune(x.src[pos:end])
	n := utf16.RuneLen(r)
	if n < 1 {
		n = 1
	}
	return size, n
}

// Range returns the places spanned by p. The end is exclusive.
func (x *Index) Range(p RawPosition) Range {
	return Range{Start: x.Place(p.Offset), End: x.Place(p.GetEndPosition().Offset)}
}
