package components

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/todos/internal/domain"
	"github.com/mmcdole/todos/internal/tui/styles"
)

// TodoRow is everything needed to draw one todo
type TodoRow struct {
	Todo           domain.Todo
	Selected       bool
	Pending        bool
	MatchedIndexes []int // Byte offsets into the title to highlight
}

// RenderTodoItem renders a todo as a single list row.
// spinner is drawn in place of the checkbox while the row is pending.
func RenderTodoItem(row TodoRow, spinner string, width int) string {
	box := styles.RowPart{Text: styles.ActiveChar, Style: styles.ActiveBoxStyle}
	if row.Todo.Completed {
		box = styles.RowPart{Text: styles.CompletedChar, Style: styles.CompletedBoxStyle}
	}
	if row.Pending {
		box = styles.RowPart{Text: spinner, Style: styles.SpinnerStyle}
	}

	parts := []styles.RowPart{box, {Text: " ", Style: styles.NormalItemStyle}}

	// checkbox, gap and margins
	titleWidth := width - 4
	title := styles.Truncate(row.Todo.Title, titleWidth)
	parts = append(parts, titleParts(title, sharedPrefix(title, row.Todo.Title), row)...)

	return styles.RenderListRow(parts, row.Selected, width)
}

// RenderEditingItem renders a row whose title is replaced by the inline editor
func RenderEditingItem(todo domain.Todo, editor string, width int) string {
	box := styles.RowPart{Text: styles.ActiveChar, Style: styles.ActiveBoxStyle}
	if todo.Completed {
		box = styles.RowPart{Text: styles.CompletedChar, Style: styles.CompletedBoxStyle}
	}
	return styles.RenderListRow([]styles.RowPart{
		box,
		{Text: " ", Style: styles.NormalItemStyle},
		{Text: editor, Style: lipgloss.NewStyle()},
	}, false, width)
}

// sharedPrefix is the byte length of the part of the original title that
// survived truncation. Match offsets past it point at text no longer shown.
func sharedPrefix(shown, original string) int {
	n := 0
	for n < len(shown) && n < len(original) && shown[n] == original[n] {
		n++
	}
	return n
}

// titleParts splits the title into runs of matched and unmatched text.
// Only offsets below visible are highlighted.
func titleParts(title string, visible int, row TodoRow) []styles.RowPart {
	base := styles.NormalItemStyle
	switch {
	case row.Todo.Completed:
		base = styles.CompletedItemStyle
	case row.Selected:
		base = styles.SelectedItemStyle
	}

	if len(row.MatchedIndexes) == 0 {
		return []styles.RowPart{{Text: title, Style: base}}
	}

	match := styles.MatchHighlightStyle
	if row.Selected {
		match = styles.MatchHighlightSelectedStyle
	}

	matchSet := make(map[int]bool, len(row.MatchedIndexes))
	for _, idx := range row.MatchedIndexes {
		if idx < visible {
			matchSet[idx] = true
		}
	}

	// Batch consecutive characters with the same match state
	var parts []styles.RowPart
	start := 0
	current := matchSet[0]
	for i := range title {
		if matchSet[i] == current {
			continue
		}
		parts = append(parts, styledRun(title[start:i], current, match, base))
		start = i
		current = matchSet[i]
	}
	if start < len(title) {
		parts = append(parts, styledRun(title[start:], current, match, base))
	}
	return parts
}

func styledRun(text string, matched bool, match, base lipgloss.Style) styles.RowPart {
	if matched {
		return styles.RowPart{Text: text, Style: match}
	}
	return styles.RowPart{Text: text, Style: base}
}
