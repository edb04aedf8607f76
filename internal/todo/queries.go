package todo

import (
	"slices"
	"time"

	"github.com/mmcdole/todos/internal/domain"
)

// Todos returns a copy of the full list, placeholders included
func (c *Coordinator) Todos() []domain.Todo {
	return slices.Clone(c.todos)
}

// DisplayedTodos returns the list narrowed by the current filter
func (c *Coordinator) DisplayedTodos() []domain.Todo {
	return c.filter.Apply(c.Todos())
}

// Filter returns the current filter
func (c *Coordinator) Filter() domain.Filter {
	return c.filter
}

func (c *Coordinator) IsLoading() bool {
	return c.loading
}

func (c *Coordinator) IsCreationPending() bool {
	return IsCreationPending(c.todos)
}

func (c *Coordinator) IsEveryCompleted() bool {
	return IsEveryCompleted(c.todos)
}

func (c *Coordinator) ActiveCount() int {
	return ActiveCount(c.todos)
}

func (c *Coordinator) HasCompleted() bool {
	return HasCompleted(c.todos)
}

// IsListVisible is false while loading or when there is nothing to show
func (c *Coordinator) IsListVisible() bool {
	return !c.loading && len(c.todos) > 0
}

// IsPending reports whether a todo has a request in flight.
// Placeholders are always pending.
func (c *Coordinator) IsPending(t domain.Todo) bool {
	return t.IsPlaceholder() || c.pending.has(t.ID)
}

// PendingCount returns how many todo IDs are busy
func (c *Coordinator) PendingCount() int {
	return len(c.pending)
}

// Error returns the active error kind at the current clock
func (c *Coordinator) Error() domain.ErrorKind {
	return c.notice.Active(c.now())
}

// ErrorExpiry returns when the active error disappears (zero if none)
func (c *Coordinator) ErrorExpiry() time.Time {
	if c.Error() == domain.ErrorNone {
		return time.Time{}
	}
	return c.notice.Expires
}

// IsCreationPending reports whether a placeholder is in the list
func IsCreationPending(todos []domain.Todo) bool {
	return slices.ContainsFunc(todos, domain.Todo.IsPlaceholder)
}

// IsEveryCompleted is vacuously true for an empty list
func IsEveryCompleted(todos []domain.Todo) bool {
	for _, t := range todos {
		if !t.Completed {
			return false
		}
	}
	return true
}

// ActiveCount counts incomplete todos, ignoring placeholders
func ActiveCount(todos []domain.Todo) int {
	n := 0
	for _, t := range todos {
		if !t.Completed && !t.IsPlaceholder() {
			n++
		}
	}
	return n
}

func HasCompleted(todos []domain.Todo) bool {
	return slices.ContainsFunc(todos, func(t domain.Todo) bool {
		return t.Completed
	})
}
