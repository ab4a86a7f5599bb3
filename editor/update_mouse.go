package editor

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/waypoint/buffer"
	"github.com/iw2rmb/waypoint/internal/grapheme"
)

func (m Model) updateMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	if tea.MouseEvent(msg).IsWheel() {
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	t := m.activeTab()
	if !m.focused || t == nil {
		return m, nil
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	// Row 0 is the tab bar.
	y := msg.Y - 1
	if y < 0 || y >= m.viewport.Height {
		return m, nil
	}
	m.status = ""
	m.moveCursor(t, m.screenToDocPos(t, msg.X, y))
	return m, nil
}

// screenToDocPos maps a viewport cell to the document position under it.
func (m *Model) screenToDocPos(t *tab, x, y int) buffer.Pos {
	row := m.viewport.YOffset + y
	if row >= t.doc.LineCount() {
		row = t.doc.LineCount() - 1
	}
	x -= m.gutterWidth(t)
	if x < 0 {
		return buffer.Pos{Row: row}
	}

	col := 0
	cell := 0
	for _, c := range grapheme.Split(t.doc.Line(row)) {
		w := grapheme.CellWidth(c, cell, m.cfg.TabWidth)
		if x < cell+w {
			break
		}
		cell += w
		col++
	}
	return buffer.Pos{Row: row, GraphemeCol: col}
}
