package buffer

import (
	"strings"

	"github.com/iw2rmb/waypoint/internal/grapheme"
)

// Document is an immutable, line-split view of a text.
type Document struct {
	// lines holds the grapheme clusters of every logical line.
	lines [][]string
}

func New(text string) *Document {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	parts := strings.Split(text, "\n")
	lines := make([][]string, 0, len(parts))
	for _, s := range parts {
		lines = append(lines, grapheme.Split(s))
	}
	return &Document{lines: lines}
}

func (d *Document) LineCount() int { return len(d.lines) }

// Line returns the text of row, or "" when row is out of range.
func (d *Document) Line(row int) string {
	if row < 0 || row >= len(d.lines) {
		return ""
	}
	return grapheme.Join(d.lines[row])
}

// LineLen returns the grapheme length of row.
func (d *Document) LineLen(row int) int {
	if row < 0 || row >= len(d.lines) {
		return 0
	}
	return len(d.lines[row])
}

func (d *Document) ClampPos(p Pos) Pos {
	return ClampPos(p, len(d.lines), d.LineLen)
}

func (d *Document) Text() string {
	var sb strings.Builder
	for i, line := range d.lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(grapheme.Join(line))
	}
	return sb.String()
}

// LineDiff returns the number of lines spanned from the start of a to the end
// of b: 1 when both sit on the same line, 2 for adjacent lines.
//
// Positions are clamped into the document first.
func (d *Document) LineDiff(a, b Range) int {
	from := d.ClampPos(NormalizeRange(a).Start)
	to := d.ClampPos(NormalizeRange(b).End)
	if from.Row > to.Row {
		return from.Row - to.Row + 1
	}
	return to.Row - from.Row + 1
}
