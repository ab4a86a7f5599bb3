package buffer

import "fmt"

// Pos points into the document by (row, grapheme column).
type Pos struct {
	Row         int
	GraphemeCol int
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Row, p.GraphemeCol)
}

// Range is a half-open selection in document coordinates: [Start, End).
type Range struct {
	Start Pos
	End   Pos
}

// Caret returns the empty range at p, i.e. a cursor without a selection.
func Caret(p Pos) Range {
	return Range{Start: p, End: p}
}

func (r Range) IsEmpty() bool {
	return r.Start == r.End
}

func ComparePos(a, b Pos) int {
	switch {
	case a.Row != b.Row:
		return cmpInt(a.Row, b.Row)
	default:
		return cmpInt(a.GraphemeCol, b.GraphemeCol)
	}
}

func NormalizeRange(r Range) Range {
	if ComparePos(r.Start, r.End) <= 0 {
		return r
	}
	return Range{Start: r.End, End: r.Start}
}

// ClampPos clamps p into the bounds described by rowCount and lineLen.
//
// rowCount is treated as at least 1. lineLen(row) returns the grapheme length
// of row; a nil lineLen pins the column to 0.
func ClampPos(p Pos, rowCount int, lineLen func(row int) int) Pos {
	if rowCount <= 0 {
		rowCount = 1
	}
	row := clampInt(p.Row, 0, rowCount-1)

	maxCol := 0
	if lineLen != nil {
		maxCol = max(lineLen(row), 0)
	}
	return Pos{Row: row, GraphemeCol: clampInt(p.GraphemeCol, 0, maxCol)}
}

func ClampRange(r Range, rowCount int, lineLen func(row int) int) Range {
	return Range{
		Start: ClampPos(r.Start, rowCount, lineLen),
		End:   ClampPos(r.End, rowCount, lineLen),
	}
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return min(max(v, lo), hi)
}
