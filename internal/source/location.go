package source

import (
	"fmt"

	"github.com/rivo/uniseg"
)

// Location is a position inside a source. Line and Column are 1-based and
// counted in lines and grapheme clusters; Offset is the byte offset into the
// UTF-8 buffer. A zero Location means "unknown", which synthetic nodes use.
type Location struct {
	Source *Source
	Line   int
	Column int
	Offset int
}

// Valid reports whether the location points into a real source.
func (l Location) Valid() bool {
	return l.Source != nil && l.Line > 0 && l.Column > 0
}

func (l Location) String() string {
	if !l.Valid() {
		return "?"
	}
	return fmt.Sprintf("%s:%d:%d", l.Source.Name, l.Line, l.Column)
}

// Range is a span of source text. End is optional; a Range with only a Start
// covers a single position.
type Range struct {
	Start Location
	End   Location
}

// NewRange builds a range from two locations.
func NewRange(start, end Location) Range {
	return Range{Start: start, End: end}
}

// Valid reports whether the range has a usable start location.
func (r Range) Valid() bool {
	return r.Start.Valid()
}

func (r Range) String() string {
	if !r.Valid() {
		return "?"
	}
	if r.End.Valid() {
		return fmt.Sprintf("%s:%d:%d-%d:%d", r.Start.Source.Name, r.Start.Line, r.Start.Column, r.End.Line, r.End.Column)
	}
	return r.Start.String()
}

// Combine returns the smallest range enclosing both a and b. An invalid
// operand is ignored so synthetic nodes do not poison their parents.
func Combine(a, b Range) Range {
	if !a.Valid() {
		return b
	}
	if !b.Valid() {
		return a
	}
	combined := a
	if b.Start.Offset < combined.Start.Offset {
		combined.Start = b.Start
	}
	aEnd := a.endOrStart()
	bEnd := b.endOrStart()
	combined.End = aEnd
	if bEnd.Offset > aEnd.Offset {
		combined.End = bEnd
	}
	return combined
}

func (r Range) endOrStart() Location {
	if r.End.Valid() {
		return r.End
	}
	return r.Start
}

// ClusterCount returns the number of grapheme clusters in s. Columns and
// caret widths are measured in clusters so that combining marks and emoji
// count as one character.
func ClusterCount(s string) int {
	return uniseg.GraphemeClusterCount(s)
}
