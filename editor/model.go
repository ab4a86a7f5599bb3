package editor

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/waypoint/buffer"
	"github.com/iw2rmb/waypoint/navhistory"
)

// DocID identifies an open document for the lifetime of a Model.
type DocID uint64

type tab struct {
	id     DocID
	name   string
	doc    *buffer.Document
	cursor buffer.Pos

	// yOffset is restored when the tab becomes active again.
	yOffset int
}

// Model is a Bubble Tea component that shows documents and records cursor
// navigation history for each of them.
type Model struct {
	cfg Config
	log *slog.Logger

	tabs   []*tab
	active int
	nextID DocID

	hist *navhistory.Store[DocID, buffer.Range]

	focused  bool
	width    int
	height   int
	viewport viewport.Model

	status string
}

// Chrome rows: the tab bar above and the status line below the viewport.
const chromeRows = 2

func New(cfg Config) Model {
	if cfg.KeyMap.empty() {
		cfg.KeyMap = DefaultKeyMap()
	}
	if cfg.TabWidth <= 0 {
		cfg.TabWidth = 4
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	m := Model{
		cfg:      cfg,
		log:      logger,
		hist:     navhistory.New[DocID, buffer.Range](navhistory.Options{Logger: logger}),
		focused:  true,
		viewport: viewport.New(0, 0),
		nextID:   1,
	}
	for _, d := range cfg.Documents {
		m, _ = m.Open(d.Name, d.Text)
	}
	if len(m.tabs) > 0 {
		m.active = 0
		m.rebuildContent()
	}
	return m
}

// History exposes the navigation history shared by all open documents.
func (m Model) History() *navhistory.Store[DocID, buffer.Range] { return m.hist }

func (m Model) Init() tea.Cmd { return nil }

// Open adds a document as a new tab and makes it active.
//
// The initial caret is reported to the history right away so that the first
// significant move can be navigated back from.
func (m Model) Open(name, text string) (Model, DocID) {
	m.saveScroll()

	t := &tab{id: m.nextID, name: name, doc: buffer.New(text)}
	m.nextID++
	m.tabs = append(m.tabs, t)
	m.active = len(m.tabs) - 1
	m.selectionChanged(t)
	m.log.Debug("editor: document opened", "doc", t.id, "name", name, "lines", t.doc.LineCount())

	m.rebuildContent()
	m.viewport.SetYOffset(0)
	return m, t.id
}

// Close removes the document and drops its history. Unknown ids are ignored.
func (m Model) Close(id DocID) Model {
	i := m.indexOf(id)
	if i < 0 {
		return m
	}
	m.hist.Close(id)
	m.log.Debug("editor: document closed", "doc", id, "name", m.tabs[i].name)

	m.tabs = append(m.tabs[:i:i], m.tabs[i+1:]...)
	switch {
	case len(m.tabs) == 0:
		m.active = 0
	case m.active > i || m.active >= len(m.tabs):
		m.active--
	}
	m.restoreActive()
	return m
}

// Activate switches to the tab holding id.
func (m Model) Activate(id DocID) Model {
	i := m.indexOf(id)
	if i < 0 || i == m.active {
		return m
	}
	m.saveScroll()
	m.active = i
	m.restoreActive()
	return m
}

// Active returns the id of the active document.
func (m Model) Active() (DocID, bool) {
	t := m.activeTab()
	if t == nil {
		return 0, false
	}
	return t.id, true
}

// Docs returns the ids of the open documents in tab order.
func (m Model) Docs() []DocID {
	out := make([]DocID, 0, len(m.tabs))
	for _, t := range m.tabs {
		out = append(out, t.id)
	}
	return out
}

// Cursor returns the cursor of the active document.
func (m Model) Cursor() buffer.Pos {
	if t := m.activeTab(); t != nil {
		return t.cursor
	}
	return buffer.Pos{}
}

// SetCursor moves the cursor of the active document as a user move would.
func (m Model) SetCursor(p buffer.Pos) Model {
	if t := m.activeTab(); t != nil {
		m.moveCursor(t, p)
	}
	return m
}

// Back jumps to the previous history entry of the active document.
func (m Model) Back() Model {
	m.jump(JumpBack)
	return m
}

// Forward jumps to the next history entry of the active document.
func (m Model) Forward() Model {
	m.jump(JumpForward)
	return m
}

// Status returns the last transient status message.
func (m Model) Status() string { return m.status }

func (m Model) SetSize(width, height int) Model {
	m.width = max(width, 0)
	m.height = max(height, 0)
	m.viewport.Width = m.width
	m.viewport.Height = max(m.height-chromeRows, 0)

	m.rebuildContent()
	m.followCursor()
	return m
}

func (m Model) Focus() Model {
	if !m.focused {
		m.focused = true
		m.rebuildContent()
	}
	return m
}

func (m Model) Blur() Model {
	if m.focused {
		m.focused = false
		m.rebuildContent()
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

func (m *Model) activeTab() *tab {
	if m.active < 0 || m.active >= len(m.tabs) {
		return nil
	}
	return m.tabs[m.active]
}

func (m *Model) indexOf(id DocID) int {
	for i, t := range m.tabs {
		if t.id == id {
			return i
		}
	}
	return -1
}

// moveCursor applies a user-driven cursor move. Moves that do not change the
// cursor are not reported.
func (m *Model) moveCursor(t *tab, p buffer.Pos) {
	p = t.doc.ClampPos(p)
	if p == t.cursor {
		return
	}
	t.cursor = p
	m.selectionChanged(t)
	m.rebuildContent()
	m.followCursor()
}

func (m *Model) selectionChanged(t *tab) {
	if m.hist.SelectionChanged(t.id, buffer.Caret(t.cursor), t.doc.LineDiff, m.cfg.limits()) {
		m.log.Debug("editor: position recorded", "doc", t.id, "pos", t.cursor.String())
	}
}

func (m *Model) jump(dir Direction) {
	t := m.activeTab()
	if t == nil {
		return
	}

	var (
		target buffer.Range
		ok     bool
	)
	if dir == JumpBack {
		target, ok = m.hist.Back(t.id)
	} else {
		target, ok = m.hist.Forward(t.id)
	}
	if !ok {
		return
	}

	from := t.cursor
	t.cursor = t.doc.ClampPos(target.Start)
	// Report the programmatic move like any other cursor change; the history
	// recognises it as the echo of this jump.
	m.selectionChanged(t)
	m.rebuildContent()
	m.centerOn(t.cursor.Row)

	ev := JumpEvent{
		Doc:       t.id,
		Name:      t.name,
		Direction: dir,
		From:      from,
		To:        t.cursor,
		Index:     m.hist.Index(t.id),
		Len:       m.hist.Len(t.id),
	}
	m.log.Debug("editor: jump", "doc", t.id, "dir", dir.String(), "from", from.String(), "to", t.cursor.String())
	if m.cfg.OnJump != nil {
		m.cfg.OnJump(ev)
	}
}

func (m *Model) saveScroll() {
	if t := m.activeTab(); t != nil {
		t.yOffset = m.viewport.YOffset
	}
}

func (m *Model) restoreActive() {
	m.rebuildContent()
	if t := m.activeTab(); t != nil {
		m.viewport.SetYOffset(t.yOffset)
		m.followCursor()
		return
	}
	m.viewport.SetYOffset(0)
}

func (m *Model) rebuildContent() {
	m.viewport.SetContent(m.renderContent())
}

// followCursor scrolls the minimum amount needed to keep the cursor row
// visible.
func (m *Model) followCursor() {
	t := m.activeTab()
	h := m.viewport.Height
	if t == nil || h <= 0 {
		return
	}
	y := m.viewport.YOffset
	switch row := t.cursor.Row; {
	case row < y:
		m.viewport.SetYOffset(row)
	case row >= y+h:
		m.viewport.SetYOffset(row - h + 1)
	}
}

// centerOn scrolls so that row sits in the middle of the viewport.
func (m *Model) centerOn(row int) {
	if m.viewport.Height <= 0 {
		return
	}
	m.viewport.SetYOffset(max(row-m.viewport.Height/2, 0))
}

func (m *Model) pageRows() int {
	return max(m.viewport.Height-1, 1)
}
