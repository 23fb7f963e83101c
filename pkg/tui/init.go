package tui

import (
	"fmt"

	"github.com/blackcoderx/oasify/pkg/openapi"
	"github.com/blackcoderx/oasify/pkg/storage"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

// DefaultSavePath is written by ctrl+s when no path was given.
const DefaultSavePath = "openapi.yaml"

// newFilterInput creates the filter input in the browser style.
func newFilterInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "filter by path, method, summary or tag"
	ti.CharLimit = 200
	ti.Width = 60
	ti.Prompt = "/ "

	ti.PromptStyle = lipgloss.NewStyle().Foreground(AccentColor)
	ti.TextStyle = lipgloss.NewStyle().Foreground(TextColor)
	ti.PlaceholderStyle = lipgloss.NewStyle().Foreground(DimColor)
	ti.Cursor.Style = lipgloss.NewStyle().Foreground(AccentColor)

	return ti
}

// newGlamourRenderer creates a glamour renderer for the detail pane.
func newGlamourRenderer(width int) *glamour.TermRenderer {
	if width < 40 {
		width = 40
	}
	renderer, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	return renderer
}

// NewModel prepares a browser for doc.
func NewModel(doc *openapi.Document, opts Options) (Model, error) {
	if doc == nil {
		return Model{}, fmt.Errorf("no document to browse")
	}
	data, err := storage.MarshalYAML(doc)
	if err != nil {
		return Model{}, err
	}

	savePath := opts.SavePath
	if savePath == "" {
		savePath = DefaultSavePath
	}
	format := opts.Format
	if format == "" {
		format = storage.FormatYAML
	}

	return Model{
		doc:      doc,
		yaml:     data,
		entries:  visibleEntries(doc, ""),
		filter:   newFilterInput(),
		renderer: newGlamourRenderer(80),
		savePath: savePath,
		format:   format,
	}, nil
}

// Init is called once when the program starts.
func (m Model) Init() tea.Cmd {
	return nil
}
