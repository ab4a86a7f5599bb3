package editor

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/waypoint/buffer"
)

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	case tea.MouseMsg:
		return m.updateMouse(msg)
	default:
		return m, nil
	}
}

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.focused {
		return m, nil
	}
	km := m.cfg.KeyMap

	// Tab switching works with no documents open too.
	switch {
	case key.Matches(msg, km.NextDoc):
		return m.cycle(1), nil
	case key.Matches(msg, km.PrevDoc):
		return m.cycle(-1), nil
	}

	t := m.activeTab()
	if t == nil {
		return m, nil
	}
	m.status = ""

	move := func(mv buffer.Move) {
		m.moveCursor(t, t.doc.Move(t.cursor, mv))
	}

	switch {
	case key.Matches(msg, km.Back):
		m.jump(JumpBack)
	case key.Matches(msg, km.Forward):
		m.jump(JumpForward)

	case key.Matches(msg, km.Left):
		move(buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirLeft})
	case key.Matches(msg, km.Right):
		move(buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirRight})
	case key.Matches(msg, km.Up):
		move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirUp})
	case key.Matches(msg, km.Down):
		move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirDown})
	case key.Matches(msg, km.Home):
		move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirHome})
	case key.Matches(msg, km.End):
		move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirEnd})
	case key.Matches(msg, km.PageUp):
		move(buffer.Move{Unit: buffer.MovePage, Dir: buffer.DirUp, Count: m.pageRows()})
	case key.Matches(msg, km.PageDown):
		move(buffer.Move{Unit: buffer.MovePage, Dir: buffer.DirDown, Count: m.pageRows()})
	case key.Matches(msg, km.DocStart):
		move(buffer.Move{Unit: buffer.MoveDoc, Dir: buffer.DirHome})
	case key.Matches(msg, km.DocEnd):
		move(buffer.Move{Unit: buffer.MoveDoc, Dir: buffer.DirEnd})

	case key.Matches(msg, km.CloseDoc):
		return m.Close(t.id), nil
	case key.Matches(msg, km.CopyLocation):
		m.copyLocation(t)
	}

	return m, nil
}

func (m Model) cycle(delta int) Model {
	n := len(m.tabs)
	if n < 2 {
		return m
	}
	next := ((m.active+delta)%n + n) % n
	return m.Activate(m.tabs[next].id)
}

// location formats the cursor of t as name:line:col with 1-based numbers.
func (t *tab) location() string {
	return fmt.Sprintf("%s:%d:%d", t.name, t.cursor.Row+1, t.cursor.GraphemeCol+1)
}

func (m *Model) copyLocation(t *tab) {
	if m.cfg.Clipboard == nil {
		return
	}
	loc := t.location()
	if err := m.cfg.Clipboard.WriteText(loc); err != nil {
		m.status = "copy failed: " + err.Error()
		m.log.Warn("editor: clipboard write failed", "err", err)
		return
	}
	m.status = "copied " + loc
}
