package components

import (
	"testing"

	"github.com/mmcdole/todos/internal/domain"
	"github.com/mmcdole/todos/internal/tui/styles"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runs returns the text of each part and which ones are highlighted
func runs(parts []styles.RowPart) (texts []string, matched []bool) {
	for _, p := range parts {
		texts = append(texts, p.Text)
		matched = append(matched, p.Style.GetForeground() == styles.MatchHighlightStyle.GetForeground())
	}
	return texts, matched
}

func TestTitlePartsMultibyte(t *testing.T) {
	title := "İstanbul trip"
	row := TodoRow{Todo: domain.Todo{ID: 1, Title: title}, MatchedIndexes: []int{2, 3, 4, 5}}

	texts, matched := runs(titleParts(title, len(title), row))
	assert.Equal(t, []string{"İ", "stan", "bul trip"}, texts)
	assert.Equal(t, []bool{false, true, false}, matched)
}

func TestTitlePartsTruncated(t *testing.T) {
	original := "Buy milk and eggs"
	shown := styles.Truncate(original, 8)
	require.Equal(t, "Buy m...", shown)
	assert.Equal(t, 5, sharedPrefix(shown, original))

	// "milk" matched, but only its first letter is still on screen
	row := TodoRow{Todo: domain.Todo{ID: 1, Title: original}, MatchedIndexes: []int{4, 5, 6, 7}}
	texts, matched := runs(titleParts(shown, sharedPrefix(shown, original), row))
	assert.Equal(t, []string{"Buy ", "m", "..."}, texts)
	assert.Equal(t, []bool{false, true, false}, matched)
}

func TestTitlePartsNoMatches(t *testing.T) {
	row := TodoRow{Todo: domain.Todo{ID: 1, Title: "plain"}}
	texts, _ := runs(titleParts("plain", 5, row))
	assert.Equal(t, []string{"plain"}, texts)
}

func TestRenderTodoItemTruncated(t *testing.T) {
	row := TodoRow{Todo: domain.Todo{ID: 1, Title: "Buy milk and eggs"}, MatchedIndexes: []int{4, 5, 6, 7}}
	out := RenderTodoItem(row, "*", 12)
	assert.Contains(t, out, "Buy")
	assert.Contains(t, out, "...")
}
