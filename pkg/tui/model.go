package tui

import (
	"github.com/blackcoderx/oasify/pkg/openapi"
	"github.com/blackcoderx/oasify/pkg/storage"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/glamour"
)

// Options configures the browser.
type Options struct {
	SavePath string         // Target for ctrl+s; defaults to openapi.yaml
	Format   storage.Format // Serialization for ctrl+s
}

// entry is one operation line in the list, with the group it is shown under.
type entry struct {
	Group string
	Ref   openapi.OperationRef
}

// Model is the Bubble Tea model for the browser.
// It manages:
// - viewport for the scrollable operation list
// - filter input narrowing the list
// - detail pane for the selected operation
type Model struct {
	doc      *openapi.Document
	yaml     []byte  // serialized document for the clipboard
	entries  []entry // operations matching the current filter, in display order
	cursor   int     // index into entries
	viewport viewport.Model
	filter   textinput.Model
	renderer *glamour.TermRenderer

	filtering bool // filter input has focus
	savePath  string
	format    storage.Format

	flash    string // transient status shown in the footer
	flashErr bool

	width  int
	height int
	ready  bool
}

// savedMsg reports the result of a ctrl+s write.
type savedMsg struct {
	path string
	err  error
}

// copiedMsg reports the result of a clipboard copy.
type copiedMsg struct {
	err error
}
