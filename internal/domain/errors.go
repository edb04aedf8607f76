package domain

import "errors"

// Sentinel errors for domain operations
var (
	// ErrServerOffline indicates the todo service is unreachable
	ErrServerOffline = errors.New("todo service is unreachable")

	// ErrRequestFailed indicates the service answered with a non-success status
	ErrRequestFailed = errors.New("request failed")

	// ErrTodoNotFound indicates the requested todo does not exist
	ErrTodoNotFound = errors.New("todo not found")

	// ErrEmptyTitle indicates a create was attempted with a blank title
	ErrEmptyTitle = errors.New("title should not be empty")

	// ErrCreationPending indicates another create is still in flight
	ErrCreationPending = errors.New("a todo is already being created")
)
