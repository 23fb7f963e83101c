package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/blackcoderx/oasify/pkg/converter"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

var (
	warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#e0af68"))
	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#9ece6a"))
	dimStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6c6c6c"))
)

// summaryMarkdown describes a finished conversion.
func summaryMarkdown(stats converter.Stats, unresolved []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", stats.Title)
	b.WriteString("| Paths | Operations | Tags | With body | Untagged |\n")
	b.WriteString("|---|---|---|---|---|\n")
	fmt.Fprintf(&b, "| %d | %d | %d | %d | %d |\n",
		stats.Paths, stats.Operations, stats.Tags, stats.WithBody, stats.Untagged)

	if len(unresolved) > 0 {
		b.WriteString("\nPaths still contain template variables. Add them to `convert.placeholders` to strip them:\n\n")
		for _, p := range unresolved {
			fmt.Fprintf(&b, "- `%s`\n", p)
		}
	}
	return b.String()
}

// renderMarkdown writes md through glamour, falling back to the raw text.
func renderMarkdown(w io.Writer, md string) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		fmt.Fprint(w, md)
		return
	}

	out, err := renderer.Render(md)
	if err != nil {
		fmt.Fprint(w, md)
		return
	}
	fmt.Fprint(w, out)
}

// confirm asks a y/n question on out and reads the answer from in.
func confirm(in io.Reader, out io.Writer, prompt string) bool {
	fmt.Fprint(out, prompt+" (y/n): ")
	line, _ := bufio.NewReader(in).ReadString('\n')
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
