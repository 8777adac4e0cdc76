package source

import (
	"strings"
)

// Source is an in-memory compilation input: a logical name (usually a file
// path, or "--" for text passed directly) plus a line-indexed buffer.
type Source struct {
	Name    string
	content *LineIndex
}

// New builds a Source from raw text.
func New(name, text string) *Source {
	return &Source{Name: name, content: NewLineIndex(text)}
}

// Text returns the full source text.
func (s *Source) Text() string {
	return s.content.Text()
}

// Line returns the 1-based line n without its trailing newline.
// The second result is false when n is out of range.
func (s *Source) Line(n int) (string, bool) {
	return s.content.Line(n)
}

// LineCount returns the number of lines in the source.
func (s *Source) LineCount() int {
	return s.content.LineCount()
}

// Slice returns the text between two byte offsets.
func (s *Source) Slice(start, end int) string {
	text := s.content.Text()
	if start < 0 || end > len(text) || start > end {
		return ""
	}
	return text[start:end]
}

// LineIndex holds source text together with the byte offset of every line
// start, so line lookups during diagnostic rendering are O(1).
type LineIndex struct {
	text       string
	lineStarts []int
}

// NewLineIndex indexes the line starts of text.
func NewLineIndex(text string) *LineIndex {
	starts := []int{0}
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &LineIndex{text: text, lineStarts: starts}
}

func (li *LineIndex) Text() string {
	return li.text
}

func (li *LineIndex) LineCount() int {
	return len(li.lineStarts)
}

// Line returns the 1-based line n without its trailing newline.
func (li *LineIndex) Line(n int) (string, bool) {
	if n < 1 || n > len(li.lineStarts) {
		return "", false
	}
	start := li.lineStarts[n-1]
	end := len(li.text)
	if n < len(li.lineStarts) {
		end = li.lineStarts[n] - 1
	}
	return strings.TrimSuffix(li.text[start:end], "\r"), true
}

// LineOf returns the 1-based line containing the byte offset.
func (li *LineIndex) LineOf(offset int) int {
	lo, hi := 0, len(li.lineStarts)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if li.lineStarts[mid] <= offset {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo + 1
}
