package tui

import (
	"github.com/atotto/clipboard"
	"github.com/blackcoderx/oasify/pkg/openapi"
	"github.com/blackcoderx/oasify/pkg/storage"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// handleKeyMsg processes keyboard input while the list has focus.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc", "q":
		return m, tea.Quit

	case "/":
		m.filtering = true
		m.flash = ""
		focus := m.filter.Focus()
		return m, tea.Batch(focus, textinput.Blink)

	case "up", "k":
		return m.moveCursor(-1), nil

	case "down", "j":
		return m.moveCursor(1), nil

	case "home", "g":
		return m.moveCursor(-len(m.entries)), nil

	case "end", "G":
		return m.moveCursor(len(m.entries)), nil

	case "ctrl+u":
		m.filter.SetValue("")
		return m.applyFilter(), nil

	case "ctrl+y":
		return m, copyDocument(m.yaml)

	case "ctrl+s":
		return m, saveDocument(m.doc, m.savePath, m.format)

	case "pgup", "pgdown":
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd

	default:
		return m, nil
	}
}

// handleFilterKey processes keyboard input while the filter has focus.
func (m Model) handleFilterKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc", "enter", "up", "down":
		m.filtering = false
		m.filter.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	return m.applyFilter(), cmd
}

// moveCursor shifts the selection by delta, clamped to the list.
func (m Model) moveCursor(delta int) Model {
	if len(m.entries) == 0 {
		return m
	}
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= len(m.entries) {
		m.cursor = len(m.entries) - 1
	}
	m.flash = ""
	m.updateViewportContent()
	return m
}

// applyFilter recomputes the visible entries and keeps the cursor in range.
func (m Model) applyFilter() Model {
	m.entries = visibleEntries(m.doc, m.filter.Value())
	if m.cursor >= len(m.entries) {
		m.cursor = len(m.entries) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.updateViewportContent()
	return m
}

func copyDocument(data []byte) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: clipboard.WriteAll(string(data))}
	}
}

func saveDocument(doc *openapi.Document, path string, format storage.Format) tea.Cmd {
	return func() tea.Msg {
		written, err := storage.SaveDocument(doc, path, format)
		return savedMsg{path: written, err: err}
	}
}
