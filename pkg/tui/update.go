package tui

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles all messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.filtering {
			return m.handleFilterKey(msg)
		}
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		return m.handleWindowResize(msg), nil

	case savedMsg:
		if msg.err != nil {
			m.flash, m.flashErr = "save failed: "+msg.err.Error(), true
		} else {
			m.flash, m.flashErr = "saved "+msg.path, false
		}
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.flash, m.flashErr = "copy failed: "+msg.err.Error(), true
		} else {
			m.flash, m.flashErr = "copied YAML to clipboard", false
		}
		return m, nil
	}

	// Mouse wheel and other events scroll the list.
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// handleWindowResize adjusts the layout when the terminal is resized.
func (m Model) handleWindowResize(msg tea.WindowSizeMsg) Model {
	m.width = msg.Width
	m.height = msg.Height

	// Header, filter line and footer.
	chrome := 4
	listHeight := m.height - chrome
	if listHeight < 5 {
		listHeight = 5
	}

	if !m.ready {
		m.viewport = viewport.New(m.listWidth(), listHeight)
		m.ready = true
	} else {
		m.viewport.Width = m.listWidth()
		m.viewport.Height = listHeight
	}

	m.filter.Width = m.width - 6
	m.renderer = newGlamourRenderer(m.detailWidth() - 4)
	m.updateViewportContent()
	return m
}

// listWidth is the width of the operation list column.
func (m Model) listWidth() int {
	w := m.width * 2 / 5
	if w < 30 {
		w = 30
	}
	return w
}

// detailWidth is the width left for the detail pane.
func (m Model) detailWidth() int {
	w := m.width - m.listWidth() - 1
	if w < 20 {
		w = 20
	}
	return w
}
