package buffer

type MoveUnit int

const (
	MoveGrapheme MoveUnit = iota
	MoveLine
	MovePage
	MoveDoc
)

type MoveDir int

const (
	DirLeft MoveDir = iota
	DirRight
	DirUp
	DirDown
	DirHome // line start (or doc start for MoveDoc)
	DirEnd  // line end (or doc end for MoveDoc)
)

type Move struct {
	Unit MoveUnit
	Dir  MoveDir

	// Count is the number of rows a MovePage step covers. Values below 1
	// are treated as 1.
	Count int
}

// Move returns the cursor position reached from p by m. The result is always
// clamped into the document.
func (d *Document) Move(p Pos, m Move) Pos {
	p = d.ClampPos(p)
	switch m.Unit {
	case MoveGrapheme:
		return d.moveGrapheme(p, m.Dir)
	case MoveLine:
		return d.moveRows(p, m.Dir, 1)
	case MovePage:
		return d.moveRows(p, m.Dir, max(m.Count, 1))
	case MoveDoc:
		return d.moveDoc(p, m.Dir)
	default:
		return p
	}
}

func (d *Document) moveGrapheme(p Pos, dir MoveDir) Pos {
	row, col := p.Row, p.GraphemeCol
	lastRow := len(d.lines) - 1

	switch dir {
	case DirLeft:
		if col > 0 {
			return Pos{Row: row, GraphemeCol: col - 1}
		}
		if row == 0 {
			return p
		}
		return Pos{Row: row - 1, GraphemeCol: d.LineLen(row - 1)}
	case DirRight:
		if col < d.LineLen(row) {
			return Pos{Row: row, GraphemeCol: col + 1}
		}
		if row == lastRow {
			return p
		}
		return Pos{Row: row + 1, GraphemeCol: 0}
	default:
		return d.moveRows(p, dir, 1)
	}
}

func (d *Document) moveRows(p Pos, dir MoveDir, n int) Pos {
	switch dir {
	case DirHome:
		return Pos{Row: p.Row, GraphemeCol: 0}
	case DirEnd:
		return Pos{Row: p.Row, GraphemeCol: d.LineLen(p.Row)}
	case DirUp:
		n = -n
	case DirDown:
	default:
		return p
	}
	// Columns past the end of a shorter line are clamped, not remembered.
	return d.ClampPos(Pos{Row: p.Row + n, GraphemeCol: p.GraphemeCol})
}

func (d *Document) moveDoc(p Pos, dir MoveDir) Pos {
	lastRow := len(d.lines) - 1

	switch dir {
	case DirHome, DirUp:
		return Pos{}
	case DirEnd, DirDown:
		return Pos{Row: lastRow, GraphemeCol: d.LineLen(lastRow)}
	default:
		return p
	}
}
