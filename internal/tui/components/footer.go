package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/todos/internal/domain"
	"github.com/mmcdole/todos/internal/tui/styles"
)

// FooterState is what the footer shows below the list
type FooterState struct {
	ActiveCount  int
	Filter       domain.Filter
	HasCompleted bool
	Narrowing    string // current fuzzy query, if any
}

// ItemsLeft formats the active counter
func ItemsLeft(n int) string {
	if n == 1 {
		return "1 item left"
	}
	return fmt.Sprintf("%d items left", n)
}

// RenderFooter renders the counter, the filter menu and the clear action
func RenderFooter(s FooterState, width int) string {
	left := styles.DimStyle.Render(ItemsLeft(s.ActiveCount))

	links := make([]string, len(domain.Filters))
	for i, f := range domain.Filters {
		if f == s.Filter {
			links[i] = styles.FilterActiveStyle.Render(f.Label())
		} else {
			links[i] = styles.FilterInactiveStyle.Render(f.Label())
		}
	}
	middle := strings.Join(links, "  ")

	right := ""
	if s.HasCompleted {
		right = styles.DimStyle.Render("Clear completed")
	}
	if s.Narrowing != "" {
		right = styles.AccentStyle.Render("/"+s.Narrowing) + "  " + right
	}

	gap := width - lipgloss.Width(left) - lipgloss.Width(middle) - lipgloss.Width(right)
	if gap < 2 {
		return lipgloss.JoinVertical(lipgloss.Left, left, middle, right)
	}
	pad := strings.Repeat(" ", gap/2)
	return lipgloss.JoinHorizontal(lipgloss.Bottom, left, pad, middle, pad, right)
}

// RenderNotification renders the current error with a dismiss hint.
// Returns an empty string when there is no error.
func RenderNotification(kind domain.ErrorKind, width int) string {
	if kind == domain.ErrorNone {
		return ""
	}
	msg := styles.Truncate(kind.Message(), max(width-16, 1))
	return styles.ErrorStyle.Render(msg) + styles.DimStyle.Render("  esc dismiss")
}
