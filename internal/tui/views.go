package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/todos/internal/tui/components"
	"github.com/mmcdole/todos/internal/tui/styles"
)

// View renders the application
func (m Model) View() string {
	if !m.Ready {
		return "Loading..."
	}

	layout := m.calculateLayout()

	sections := []string{
		styles.TitleStyle.Render("todos"),
		m.renderHeader(layout.width),
	}

	if note := components.RenderNotification(m.Coordinator.Error(), layout.width); note != "" {
		sections = append(sections, note)
	}

	switch {
	case m.Coordinator.IsListVisible():
		sections = append(sections, m.renderList(layout))
		sections = append(sections, components.RenderFooter(components.FooterState{
			ActiveCount:  m.Coordinator.ActiveCount(),
			Filter:       m.Coordinator.Filter(),
			HasCompleted: m.Coordinator.HasCompleted(),
			Narrowing:    m.query,
		}, layout.width))
	case m.Coordinator.IsLoading():
		sections = append(sections, m.Spinner.View()+styles.DimStyle.Render(" Loading todos..."))
	}

	if m.mode == ModeNarrowing {
		sections = append(sections, m.Search.View())
	}

	border := styles.InactiveBorder
	if m.focus == FocusList {
		border = styles.ActiveBorder
	}
	panel := border.Padding(0, 1).Width(layout.width + 2).Render(
		lipgloss.JoinVertical(lipgloss.Left, sections...),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		panel,
		m.renderStatus(),
		m.Help.View(Keys),
	)
}

// renderHeader renders the toggle-all indicator and the new todo input
func (m Model) renderHeader(width int) string {
	toggle := " "
	if len(m.Coordinator.Todos()) > 0 {
		style := styles.DimStyle
		if m.Coordinator.IsEveryCompleted() {
			style = styles.AccentStyle
		}
		toggle = style.Render(styles.ToggleAllChar)
	}

	input := m.Input.View()
	if m.Coordinator.IsCreationPending() {
		input = m.Spinner.View() + " " + input
	}
	return toggle + " " + input
}

// renderList renders the visible window of todo rows
func (m Model) renderList(layout listLayout) string {
	rows := m.rows()
	if len(rows) == 0 {
		return styles.DimStyle.Render("  Nothing to show")
	}

	end := min(m.offset+layout.maxVisible, len(rows))
	lines := make([]string, 0, end-m.offset)
	for i := m.offset; i < end; i++ {
		row := rows[i]
		if m.mode == ModeEditing && !row.Todo.IsPlaceholder() && row.Todo.ID == m.editingID {
			lines = append(lines, components.RenderEditingItem(row.Todo, m.Editor.View(), layout.width))
			continue
		}
		lines = append(lines, components.RenderTodoItem(row, m.Spinner.View(), layout.width))
	}
	return strings.Join(lines, "\n")
}

// renderStatus renders the transient status line
func (m Model) renderStatus() string {
	if m.StatusMsg == "" {
		return ""
	}
	if m.StatusIsErr {
		return styles.ErrorStyle.Render(m.StatusMsg)
	}
	return styles.SuccessStyle.Render(m.StatusMsg)
}
