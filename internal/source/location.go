package source

import "fmt"

// Location is a line/column range attached to a token or a diagnostic.
//
// First points at the first character and Last at the last character
// (inclusive). A line-only location carries just First.Line; its columns
// are meaningless and HasColumns reports false.
type Location struct {
	First    LineCol
	Last     LineCol
	LineOnly bool
}

// NewLocation builds a location and normalises a reversed range so that
// First never comes after Last.
func NewLocation(first, last LineCol) Location {
	if last.Less(first) {
		last = first
	}
	return Location{First: first, Last: last}
}

// PointLocation is an empty location sitting at a single position.
func PointLocation(at LineCol) Location {
	return Location{First: at, Last: at}
}

// LineOnlyLocation reports a whole line, used when the column is unknown
// or irrelevant (directives).
func LineOnlyLocation(line uint32) Location {
	return Location{
		First:    LineCol{Line: line},
		Last:     LineCol{Line: line},
		LineOnly: true,
	}
}

// Line returns the first line of the location.
func (l Location) Line() uint32 {
	return l.First.Line
}

// HasColumns reports whether column fields are meaningful.
func (l Location) HasColumns() bool {
	return !l.LineOnly
}

// Valid checks the ordering invariant.
func (l Location) Valid() bool {
	if l.First.Line == 0 {
		return false
	}
	if l.LineOnly {
		return l.First.Line == l.Last.Line
	}
	return !l.Last.Less(l.First)
}

// Cover returns a location spanning both l and other.
func (l Location) Cover(other Location) Location {
	if l.LineOnly || other.LineOnly {
		lo, hi := l.First.Line, other.Last.Line
		if other.First.Line < lo {
			lo = other.First.Line
		}
		if l.Last.Line > hi {
			hi = l.Last.Line
		}
		return Location{First: LineCol{Line: lo}, Last: LineCol{Line: hi}, LineOnly: lo == hi}
	}
	out := l
	if other.First.Less(out.First) {
		out.First = other.First
	}
	if out.Last.Less(other.Last) {
		out.Last = other.Last
	}
	return out
}

func (l Location) String() string {
	if l.LineOnly {
		return fmt.Sprintf("%d", l.First.Line)
	}
	if l.First == l.Last {
		return fmt.Sprintf("%d:%d", l.First.Line, l.First.Col)
	}
	if l.First.Line == l.Last.Line {
		return fmt.Sprintf("%d:%d-%d", l.First.Line, l.First.Col, l.Last.Col)
	}
	return fmt.Sprintf("%d:%d-%d:%d", l.First.Line, l.First.Col, l.Last.Line, l.Last.Col)
}
