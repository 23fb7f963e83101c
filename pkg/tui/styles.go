package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Minimal color palette
var (
	DimColor    = lipgloss.Color("#6c6c6c")
	TextColor   = lipgloss.Color("#e0e0e0")
	AccentColor = lipgloss.Color("#7aa2f7")
	ErrorColor  = lipgloss.Color("#f7768e")
	OKColor     = lipgloss.Color("#9ece6a")
	WarnColor   = lipgloss.Color("#e0af68")
	PurpleColor = lipgloss.Color("#bb9af7")
)

// List styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(AccentColor).
			Bold(true)

	GroupStyle = lipgloss.NewStyle().
			Foreground(PurpleColor).
			Bold(true)

	ItemStyle = lipgloss.NewStyle().
			Foreground(TextColor)

	SelectedStyle = lipgloss.NewStyle().
			Foreground(AccentColor).
			Bold(true)

	ListPaneStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderRight(true).
			BorderForeground(DimColor)

	DetailPaneStyle = lipgloss.NewStyle().
			PaddingLeft(1)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor)

	FlashStyle = lipgloss.NewStyle().
			Foreground(OKColor)

	HelpStyle = lipgloss.NewStyle().
			Foreground(DimColor)
)

// Method badge colors
var (
	MethodDefaultStyle = lipgloss.NewStyle().Foreground(DimColor).Bold(true)

	MethodStyles = map[string]lipgloss.Style{
		"get":    lipgloss.NewStyle().Foreground(OKColor).Bold(true),
		"post":   lipgloss.NewStyle().Foreground(AccentColor).Bold(true),
		"put":    lipgloss.NewStyle().Foreground(WarnColor).Bold(true),
		"patch":  lipgloss.NewStyle().Foreground(PurpleColor).Bold(true),
		"delete": lipgloss.NewStyle().Foreground(ErrorColor).Bold(true),
	}
)

// Footer styles
var (
	FooterStyle = lipgloss.NewStyle().
			Foreground(DimColor)

	FooterAppNameStyle = lipgloss.NewStyle().
				Foreground(AccentColor).
				Bold(true).
				PaddingRight(1)

	FooterInfoStyle = lipgloss.NewStyle().
			Foreground(DimColor)

	ShortcutKeyStyle = lipgloss.NewStyle().
				Foreground(TextColor)

	ShortcutDescStyle = lipgloss.NewStyle().
				Foreground(DimColor)
)

// CursorPrefix marks the selected operation.
const CursorPrefix = "> "
