package components

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/todos/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestItemsLeft(t *testing.T) {
	assert.Equal(t, "0 items left", ItemsLeft(0))
	assert.Equal(t, "1 item left", ItemsLeft(1))
	assert.Equal(t, "3 items left", ItemsLeft(3))
}

func TestRenderFooter(t *testing.T) {
	out := RenderFooter(FooterState{ActiveCount: 2, Filter: domain.FilterActive, HasCompleted: true}, 80)
	assert.Contains(t, out, "2 items left")
	assert.Contains(t, out, "Clear completed")
	assert.Contains(t, out, "Active")

	out = RenderFooter(FooterState{ActiveCount: 1}, 80)
	assert.NotContains(t, out, "Clear completed")
}

func TestRenderNotification(t *testing.T) {
	assert.Empty(t, RenderNotification(domain.ErrorNone, 80))
	assert.Contains(t, RenderNotification(domain.ErrorDeleting, 80), "Unable to delete a todo")
}

func TestRenderTodoItem(t *testing.T) {
	row := TodoRow{Todo: domain.Todo{ID: 1, Title: "Buy milk"}}
	out := RenderTodoItem(row, "*", 40)
	assert.Contains(t, out, "Buy milk")
	assert.Equal(t, 40, lipgloss.Width(out))

	row.Pending = true
	assert.Contains(t, RenderTodoItem(row, "*", 40), "*")
}

func TestTitlePartsHighlight(t *testing.T) {
	row := TodoRow{Todo: domain.Todo{Title: "Buy milk"}, MatchedIndexes: []int{4, 5}}
	parts := titleParts("Buy milk", len("Buy milk"), row)
	texts := make([]string, len(parts))
	for i, p := range parts {
		texts[i] = p.Text
	}
	assert.Equal(t, []string{"Buy ", "mi", "lk"}, texts)
}
