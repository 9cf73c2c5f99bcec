// Package source carries the origin metadata of IR nodes: where in a
// source file a node was read from, and the comments attached to it.
// Front ends fill these in; diagnostics and back ends read them when
// reporting or tracing.
package source

import (
	"fmt"
	"path/filepath"
)

// Position is one point in a source file. Ordering is by filename
// first, then by byte offset; the line and column exist for display.
type Position struct {
	Filename string // source file name
	Line     int    // 1-based
	Column   int    // 1-based
	Offset   int    // 0-based byte offset
}

// IsValid reports whether the position names an actual point. The zero
// Position is invalid.
func (p Position) IsValid() bool {
	return p.Line > 0 && p.Column > 0 && p.Offset >= 0
}

// String formats the position as file:line:column, dropping the file
// part when no filename was recorded.
func (p Position) String() string {
	if p.Filename != "" {
		return fmt.Sprintf("%s:%d:%d", filepath.Base(p.Filename), p.Line, p.Column)
	}

	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Before reports whether p precedes other, ordering across files by
// filename.
func (p Position) Before(other Position) bool {
	if p.Filename != other.Filename {
		return p.Filename < other.Filename
	}

	return p.Offset < other.Offset
}

// After reports whether p follows other.
func (p Position) After(other Position) bool {
	if p.Filename != other.Filename {
		return p.Filename > other.Filename
	}

	return p.Offset > other.Offset
}

// Span is a contiguous stretch of source text, start inclusive and end
// exclusive. Both ends must sit in the same file for the span to be
// valid.
type Span struct {
	Start Position
	End   Position
}

// IsValid reports whether the span is well formed: both ends valid, in
// the same file, and not reversed.
func (s Span) IsValid() bool {
	return s.Start.IsValid() && s.End.IsValid() &&
		s.Start.Filename == s.End.Filename &&
		s.Start.Offset <= s.End.Offset
}

// String formats the span compactly, collapsing the repeated line
// number when the span stays on one line.
func (s Span) String() string {
	if s.Start.Filename != "" {
		filename := filepath.Base(s.Start.Filename)
		if s.Start.Line == s.End.Line {
			return fmt.Sprintf("%s:%d:%d-%d", filename, s.Start.Line, s.Start.Column, s.End.Column)
		}

		return fmt.Sprintf("%s:%d:%d-%d:%d", filename, s.Start.Line, s.Start.Column, s.End.Line, s.End.Column)
	}

	if s.Start.Line == s.End.Line {
		return fmt.Sprintf("%d:%d-%d", s.Start.Line, s.Start.Column, s.End.Column)
	}

	return fmt.Sprintf("%d:%d-%d:%d", s.Start.Line, s.Start.Column, s.End.Line, s.End.Column)
}

// Union widens the span to cover other as well. An invalid side is
// ignored; spans from different files do not combine and s is kept.
func (s Span) Union(other Span) Span {
	if !s.IsValid() {
		return other
	}

	if !other.IsValid() {
		return s
	}

	if s.Start.Filename != other.Start.Filename {
		return s
	}

	start := s.Start
	if other.Start.Before(start) {
		start = other.Start
	}

	end := s.End
	if other.End.After(end) {
		end = other.End
	}

	return Span{Start: start, End: end}
}

// NewSpan builds a span between two positions.
func NewSpan(start, end Position) Span {
	return Span{Start: start, End: end}
}

// Comment is one source comment kept with a node, stored without its
// delimiters.
type Comment struct {
	Text    string
	IsBlock bool
}

// String restores the original delimiters, line comments in the HDL
// double-dash form.
func (c Comment) String() string {
	if c.IsBlock {
		return fmt.Sprintf("/* %s */", c.Text)
	}

	return fmt.Sprintf("-- %s", c.Text)
}
