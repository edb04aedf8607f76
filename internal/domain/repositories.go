package domain

import (
	"context"
)

// TodoRepository provides access to the remote todo resource
type TodoRepository interface {
	// ListTodos returns every todo owned by the user
	ListTodos(ctx context.Context, userID int) ([]Todo, error)

	// CreateTodo creates a todo; the server assigns its ID
	CreateTodo(ctx context.Context, draft TodoDraft) (Todo, error)

	// UpdateTodo replaces a todo with the full payload and returns the stored version
	UpdateTodo(ctx context.Context, todo Todo) (Todo, error)

	// DeleteTodo removes a todo
	DeleteTodo(ctx context.Context, id int) error
}
