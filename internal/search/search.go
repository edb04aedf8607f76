package search

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	sfuzzy "github.com/sahilm/fuzzy"

	"github.com/mmcdole/todos/internal/domain"
)

// Result is a todo that matched a query
type Result struct {
	Todo           domain.Todo
	Index          int   // Position in the searched slice
	MatchedIndexes []int // Byte offsets into Todo.Title, for highlighting
}

// titleIndex implements sahilm/fuzzy.Source over todo titles.
// Titles are searched as-is so matched offsets line up with what is drawn;
// sahilm/fuzzy folds case itself.
type titleIndex []domain.Todo

func (idx titleIndex) String(i int) string { return idx[i].Title }
func (idx titleIndex) Len() int            { return len(idx) }

// Find narrows todos to those whose title fuzzily matches query, best match first.
// An empty query matches everything, in list order.
func Find(query string, todos []domain.Todo) []Result {
	query = strings.TrimSpace(query)
	if query == "" {
		results := make([]Result, len(todos))
		for i, t := range todos {
			results[i] = Result{Todo: t, Index: i}
		}
		return results
	}

	matches := sfuzzy.FindFrom(query, titleIndex(todos))
	results := make([]Result, len(matches))
	for i, m := range matches {
		results[i] = Result{
			Todo:           todos[m.Index],
			Index:          m.Index,
			MatchedIndexes: m.MatchedIndexes,
		}
	}
	return results
}

// Match reports whether query is a case-folded, unicode-normalized subsequence of title
func Match(query, title string) bool {
	query = strings.TrimSpace(query)
	if query == "" {
		return true
	}
	return fuzzy.MatchNormalizedFold(query, title)
}

// Filter keeps the todos whose titles Match query, preserving order
func Filter(query string, todos []domain.Todo) []domain.Todo {
	var out []domain.Todo
	for _, t := range todos {
		if Match(query, t.Title) {
			out = append(out, t)
		}
	}
	return out
}
