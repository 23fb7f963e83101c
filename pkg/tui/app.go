// Package tui provides the terminal browser for a converted OpenAPI document.
// It uses Bubble Tea with a minimal, single-screen layout.
//
// File organization:
// - app.go: Entry point (Run function)
// - model.go: Model struct and message types
// - init.go: Model construction
// - update.go: Event handling and state updates
// - view.go: Rendering and display logic
// - keys.go: Keyboard input handling
// - styles.go: Visual styling (colors, borders, etc.)
// - highlight.go: JSON example rendering
package tui

import (
	"github.com/blackcoderx/oasify/pkg/openapi"
	tea "github.com/charmbracelet/bubbletea"
)

// Run opens the browser for doc and blocks until the user quits.
func Run(doc *openapi.Document, opts Options) error {
	m, err := NewModel(doc, opts)
	if err != nil {
		return err
	}
	prog := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = prog.Run()
	return err
}
