package editor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/iw2rmb/waypoint/internal/grapheme"
)

func (m Model) View() string {
	if m.height <= 0 {
		return ""
	}
	body := m.viewport.View()
	if m.viewport.Height <= 0 {
		return m.tabBar()
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.tabBar(), body, m.statusLine())
}

func (m *Model) renderContent() string {
	t := m.activeTab()
	if t == nil {
		return ""
	}

	gutter := m.gutterWidth(t)
	textWidth := -1
	if m.viewport.Width > 0 {
		textWidth = max(m.viewport.Width-gutter, 0)
	}

	out := make([]string, 0, t.doc.LineCount())
	for row := range t.doc.LineCount() {
		var sb strings.Builder
		if m.cfg.ShowLineNums {
			numStyle := m.cfg.Style.LineNum
			if row == t.cursor.Row {
				numStyle = m.cfg.Style.LineNumActive
			}
			sb.WriteString(numStyle.Render(fmt.Sprintf("%*d", gutter-1, row+1)))
			sb.WriteByte(' ')
		}
		sb.WriteString(m.renderLine(t, row, textWidth))
		out = append(out, sb.String())
	}
	return strings.Join(out, "\n")
}

// renderLine renders one document row clipped to width cells, with tabs
// expanded. The cursor is drawn only while the editor is focused.
func (m *Model) renderLine(t *tab, row, width int) string {
	clusters := grapheme.Split(t.doc.Line(row))
	cursorCol := -1
	if m.focused && row == t.cursor.Row {
		cursorCol = t.cursor.GraphemeCol
	}

	var before, at, after strings.Builder
	cell := 0
	for i, c := range clusters {
		w := grapheme.CellWidth(c, cell, m.cfg.TabWidth)
		if width >= 0 && cell+w > width {
			break
		}
		if c == "\t" {
			c = strings.Repeat(" ", w)
		}
		switch {
		case i < cursorCol || cursorCol < 0:
			before.WriteString(c)
		case i == cursorCol:
			at.WriteString(c)
		default:
			after.WriteString(c)
		}
		cell += w
	}
	if cursorCol >= len(clusters) && (width < 0 || cell < width) {
		at.WriteByte(' ')
	}

	var sb strings.Builder
	if before.Len() > 0 {
		sb.WriteString(m.cfg.Style.Text.Render(before.String()))
	}
	if at.Len() > 0 {
		sb.WriteString(m.cfg.Style.Cursor.Render(at.String()))
	}
	if after.Len() > 0 {
		sb.WriteString(m.cfg.Style.Text.Render(after.String()))
	}
	return sb.String()
}

func (m *Model) gutterWidth(t *tab) int {
	if !m.cfg.ShowLineNums || t == nil {
		return 0
	}
	return len(fmt.Sprint(t.doc.LineCount())) + 1
}

func (m Model) tabBar() string {
	if len(m.tabs) == 0 {
		return m.cfg.Style.Tab.Render("no files")
	}
	parts := make([]string, 0, len(m.tabs))
	for i, t := range m.tabs {
		style := m.cfg.Style.Tab
		if i == m.active {
			style = m.cfg.Style.TabActive
		}
		parts = append(parts, style.Render(t.name))
	}
	bar := lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	if m.width > 0 {
		bar = ansi.Truncate(bar, m.width, "…")
	}
	return bar
}

func (m Model) statusLine() string {
	t := m.activeTab()
	if t == nil {
		return m.cfg.Style.Status.Width(m.width).Render("")
	}

	left := fmt.Sprintf(" %s  Ln %d, Col %d", t.name, t.cursor.Row+1, t.cursor.GraphemeCol+1)
	if m.status != "" {
		left += "  " + m.status
	}
	right := ""
	if n := m.hist.Len(t.id); n > 0 {
		right = fmt.Sprintf("history %d/%d ", n+m.hist.Index(t.id), n)
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	line := left
	if gap > 0 {
		line += strings.Repeat(" ", gap) + right
	} else {
		line = grapheme.Truncate(left+" "+right, m.width, "…")
	}
	return m.cfg.Style.Status.Render(line)
}
