package main

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/waypoint/editor"
)

// reloadMsg is sent by the config watcher after every reload attempt.
type reloadMsg struct{ err error }

type hostKeys struct {
	editor.KeyMap
	Help key.Binding
	Quit key.Binding
}

func (k hostKeys) ShortHelp() []key.Binding {
	return append(k.KeyMap.ShortHelp(), k.Help, k.Quit)
}

func (k hostKeys) FullHelp() [][]key.Binding {
	return append(k.KeyMap.FullHelp(), []key.Binding{k.Help, k.Quit})
}

// host wraps the editor with a help line and quit handling.
type host struct {
	editor editor.Model
	keys   hostKeys
	help   help.Model

	notice string
	width  int
	height int
}

func newHost(ed editor.Model) host {
	return host{
		editor: ed,
		keys: hostKeys{
			KeyMap: editor.DefaultKeyMap(),
			Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
			Quit:   key.NewBinding(key.WithKeys("ctrl+q", "ctrl+c"), key.WithHelp("ctrl+q", "quit")),
		},
		help: help.New(),
	}
}

func (h host) Init() tea.Cmd { return h.editor.Init() }

func (h host) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h.width, h.height = msg.Width, msg.Height
		return h.layout(), nil
	case reloadMsg:
		if msg.err != nil {
			h.notice = "config reload failed: " + msg.err.Error()
		} else {
			h.notice = "config reloaded"
		}
		return h.layout(), nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, h.keys.Quit):
			return h, tea.Quit
		case key.Matches(msg, h.keys.Help):
			h.help.ShowAll = !h.help.ShowAll
			return h.layout(), nil
		}
		if h.notice != "" {
			h.notice = ""
			h = h.layout()
		}
	}

	var cmd tea.Cmd
	h.editor, cmd = h.editor.Update(msg)
	return h, cmd
}

func (h host) View() string {
	return lipgloss.JoinVertical(lipgloss.Left, h.editor.View(), h.footer())
}

func (h host) footer() string {
	if h.notice != "" {
		return h.notice
	}
	return h.help.View(h.keys)
}

// layout gives the editor every row the footer does not use.
func (h host) layout() host {
	h.help.Width = h.width
	rows := lipgloss.Height(h.footer())
	h.editor = h.editor.SetSize(h.width, max(h.height-rows, 0))
	return h
}
