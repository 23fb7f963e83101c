package tui

import (
	"fmt"
	"strings"

	"github.com/blackcoderx/oasify/pkg/openapi"
	"github.com/charmbracelet/lipgloss"
)

// untaggedGroup heads operations that came from requests outside any folder.
const untaggedGroup = "untagged"

// View renders the entire TUI to a string.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.filter.View())
	b.WriteString("\n")

	list := ListPaneStyle.Width(m.listWidth()).Render(m.viewport.View())
	detail := DetailPaneStyle.Width(m.detailWidth()).MaxHeight(m.viewport.Height).Render(m.renderDetail())
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, list, detail))
	b.WriteString("\n")

	b.WriteString(m.renderFooter())
	return b.String()
}

// visibleEntries lists doc's operations matching query, grouped by tag in
// document tag order with untagged operations last.
func visibleEntries(doc *openapi.Document, query string) []entry {
	query = strings.ToLower(strings.TrimSpace(query))

	byGroup := make(map[string][]entry)
	for _, ref := range doc.Operations() {
		group := untaggedGroup
		if len(ref.Operation.Tags) > 0 {
			group = ref.Operation.Tags[0]
		}
		if query != "" && !matches(ref, group, query) {
			continue
		}
		byGroup[group] = append(byGroup[group], entry{Group: group, Ref: ref})
	}

	var out []entry
	seen := make(map[string]bool)
	for _, tag := range doc.Tags {
		if seen[tag.Name] {
			continue
		}
		seen[tag.Name] = true
		out = append(out, byGroup[tag.Name]...)
	}
	// Tags referenced by operations but missing from the tag list.
	for _, ref := range doc.Operations() {
		if len(ref.Operation.Tags) == 0 {
			continue
		}
		if name := ref.Operation.Tags[0]; !seen[name] {
			seen[name] = true
			out = append(out, byGroup[name]...)
		}
	}
	if !seen[untaggedGroup] {
		out = append(out, byGroup[untaggedGroup]...)
	}
	return out
}

// matches reports whether the lower-cased query occurs in any searchable field.
func matches(ref openapi.OperationRef, group, query string) bool {
	fields := []string{ref.Path, ref.Method, ref.Operation.Summary, group}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), query) {
			return true
		}
	}
	return false
}

// renderList draws the grouped list and returns the line the cursor is on.
func renderList(entries []entry, cursor int) (string, int) {
	if len(entries) == 0 {
		return HelpStyle.Render("  no matching operations"), 0
	}

	var b strings.Builder
	line, cursorLine := 0, 0
	group := ""
	for i, e := range entries {
		if i == 0 || e.Group != group {
			group = e.Group
			if i > 0 {
				b.WriteString("\n")
				line++
			}
			b.WriteString(GroupStyle.Render(group))
			b.WriteString("\n")
			line++
		}

		text := fmt.Sprintf("%s %s", methodBadge(e.Ref.Method), e.Ref.Path)
		if i == cursor {
			cursorLine = line
			b.WriteString(SelectedStyle.Render(CursorPrefix + text))
		} else {
			b.WriteString(ItemStyle.Render(strings.Repeat(" ", len(CursorPrefix)) + text))
		}
		b.WriteString("\n")
		line++
	}
	return strings.TrimRight(b.String(), "\n"), cursorLine
}

// methodBadge renders an upper-case, fixed-width, colored method name.
func methodBadge(method string) string {
	name := strings.ToUpper(method)
	style, ok := MethodStyles[method]
	if !ok {
		style = MethodDefaultStyle
	}
	return style.Render(fmt.Sprintf("%-6s", name))
}

// updateViewportContent redraws the list and keeps the cursor visible.
func (m *Model) updateViewportContent() {
	content, cursorLine := renderList(m.entries, m.cursor)
	m.viewport.SetContent(content)

	if m.viewport.Height <= 0 {
		return
	}
	if cursorLine < m.viewport.YOffset {
		m.viewport.SetYOffset(cursorLine)
	} else if cursorLine >= m.viewport.YOffset+m.viewport.Height {
		m.viewport.SetYOffset(cursorLine - m.viewport.Height + 1)
	}
}

// selected returns the operation under the cursor.
func (m Model) selected() (entry, bool) {
	if m.cursor < 0 || m.cursor >= len(m.entries) {
		return entry{}, false
	}
	return m.entries[m.cursor], true
}

// renderDetail renders the selected operation through glamour.
func (m Model) renderDetail() string {
	e, ok := m.selected()
	if !ok {
		return HelpStyle.Render("Nothing selected")
	}
	md := operationMarkdown(e.Ref)
	if m.renderer != nil {
		if rendered, err := m.renderer.Render(md); err == nil {
			return strings.TrimSpace(rendered)
		}
	}
	return md
}

// operationMarkdown describes one operation as markdown.
func operationMarkdown(ref openapi.OperationRef) string {
	op := ref.Operation
	var b strings.Builder

	fmt.Fprintf(&b, "## %s %s\n\n", strings.ToUpper(ref.Method), ref.Path)
	if op.Summary != "" {
		fmt.Fprintf(&b, "**%s**\n\n", op.Summary)
	}
	if len(op.Tags) > 0 {
		fmt.Fprintf(&b, "Tags: %s\n\n", strings.Join(op.Tags, ", "))
	}
	if op.Description != "" {
		b.WriteString(op.Description)
		b.WriteString("\n\n")
	}

	if len(op.Parameters) > 0 {
		b.WriteString("| Parameter | In | Required |\n|---|---|---|\n")
		for _, p := range op.Parameters {
			req := "no"
			if p.Required {
				req = "yes"
			}
			fmt.Fprintf(&b, "| %s | %s | %s |\n", p.Name, p.In, req)
		}
		b.WriteString("\n")
	}

	if op.RequestBody != nil {
		b.WriteString("Request body example:\n\n")
		media := op.RequestBody.Content[openapi.MediaJSON]
		b.WriteString(exampleBlock(media.Schema.Example))
		b.WriteString("\n")
	}

	return b.String()
}

// renderHeader shows the document title and counts.
func (m Model) renderHeader() string {
	total := len(m.doc.Operations())
	counts := fmt.Sprintf("%d of %d operations", len(m.entries), total)
	return TitleStyle.Render(m.doc.Info.Title) + " " + HelpStyle.Render(counts)
}

// renderFooter renders the flash message on the left and shortcuts on the right.
func (m Model) renderFooter() string {
	var left string
	switch {
	case m.flash != "" && m.flashErr:
		left = ErrorStyle.Render(m.flash)
	case m.flash != "":
		left = FlashStyle.Render(m.flash)
	default:
		left = FooterAppNameStyle.Render("oasify") + FooterInfoStyle.Render(m.doc.OpenAPI)
	}

	var parts []string
	if m.filtering {
		parts = append(parts, ShortcutKeyStyle.Render("enter")+ShortcutDescStyle.Render(" done"))
	} else {
		parts = append(parts,
			ShortcutKeyStyle.Render("/")+ShortcutDescStyle.Render(" filter"),
			ShortcutKeyStyle.Render("ctrl+y")+ShortcutDescStyle.Render(" copy"),
			ShortcutKeyStyle.Render("ctrl+s")+ShortcutDescStyle.Render(" save"),
			ShortcutKeyStyle.Render("esc")+ShortcutDescStyle.Render(" quit"),
		)
	}
	right := strings.Join(parts, "    ")

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 2 {
		gap = 2
	}
	return FooterStyle.Render(left + strings.Repeat(" ", gap) + right)
}
