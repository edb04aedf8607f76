package todo

import (
	"context"
	"slices"

	"github.com/google/uuid"
	"github.com/mmcdole/todos/internal/domain"
)

// Effect is a deferred server call produced by an intent. It may run on any
// goroutine; the Outcome it returns must be handed to Coordinator.Settle.
type Effect func(ctx context.Context) Outcome

// Outcome is the result of an Effect
type Outcome interface {
	outcome()
}

// LoadOutcome carries the result of Load
type LoadOutcome struct {
	Todos []domain.Todo
	Err   error
}

// CreateOutcome carries the result of Create. Token identifies the placeholder.
type CreateOutcome struct {
	Token uuid.UUID
	Todo  domain.Todo
	Err   error
}

// DeleteOutcome carries the result of Delete
type DeleteOutcome struct {
	ID  int
	Err error
}

// UpdateOutcome carries the result of Edit
type UpdateOutcome struct {
	ID   int
	Todo domain.Todo
	Err  error
}

func (LoadOutcome) outcome()   {}
func (CreateOutcome) outcome() {}
func (DeleteOutcome) outcome() {}
func (UpdateOutcome) outcome() {}

// Settle reconciles local state with a server response: commit on success,
// roll back and raise the matching error on failure.
func (c *Coordinator) Settle(o Outcome) {
	switch o := o.(type) {
	case LoadOutcome:
		c.loading = false
		if o.Err != nil {
			c.logger.Error("failed to load todos", "error", o.Err, "userID", c.userID)
			c.raise(domain.ErrorLoading)
			return
		}
		c.todos = slices.Clone(o.Todos)
		c.logger.Debug("loaded todos", "count", len(o.Todos))

	case CreateOutcome:
		idx := c.placeholderIndex(o.Token)
		if o.Err != nil {
			c.logger.Error("failed to create todo", "error", o.Err)
			c.raise(domain.ErrorAdding)
			if idx >= 0 {
				c.todos = slices.Delete(c.todos, idx, idx+1)
			}
			return
		}
		// A reload that finished first may already list the new todo.
		if _, ok := c.find(o.Todo.ID); ok {
			if idx >= 0 {
				c.todos = slices.Delete(c.todos, idx, idx+1)
			}
		} else if idx >= 0 {
			c.todos[idx] = o.Todo
		} else {
			c.todos = append(c.todos, o.Todo)
		}
		c.logger.Info("created todo", "id", o.Todo.ID)

	case DeleteOutcome:
		c.pending.release(o.ID)
		if o.Err != nil {
			c.logger.Error("failed to delete todo", "error", o.Err, "id", o.ID)
			c.raise(domain.ErrorDeleting)
			return
		}
		c.todos = slices.DeleteFunc(c.todos, func(t domain.Todo) bool {
			return !t.IsPlaceholder() && t.ID == o.ID
		})
		c.logger.Info("deleted todo", "id", o.ID)

	case UpdateOutcome:
		c.pending.release(o.ID)
		if o.Err != nil {
			c.logger.Error("failed to update todo", "error", o.Err, "id", o.ID)
			c.raise(domain.ErrorUpdating)
			return
		}
		for i, t := range c.todos {
			if !t.IsPlaceholder() && t.ID == o.ID {
				c.todos[i] = o.Todo
			}
		}
		c.logger.Info("updated todo", "id", o.ID)
	}
}

func (c *Coordinator) placeholderIndex(token uuid.UUID) int {
	return slices.IndexFunc(c.todos, func(t domain.Todo) bool {
		return t.Token == token
	})
}
