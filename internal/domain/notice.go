package domain

import "time"

// ErrorKind enumerates the user-facing errors. Only one is active at a time.
type ErrorKind int

const (
	ErrorNone ErrorKind = iota
	ErrorLoading
	ErrorEmptyTitle
	ErrorAdding
	ErrorDeleting
	ErrorUpdating
)

// String returns a stable identifier for logs
func (k ErrorKind) String() string {
	switch k {
	case ErrorLoading:
		return "loading-error"
	case ErrorEmptyTitle:
		return "empty-title-error"
	case ErrorAdding:
		return "adding-error"
	case ErrorDeleting:
		return "deleting-error"
	case ErrorUpdating:
		return "updating-error"
	default:
		return "no-error"
	}
}

// Message returns the text shown to the user
func (k ErrorKind) Message() string {
	switch k {
	case ErrorLoading:
		return "Unable to load todos"
	case ErrorEmptyTitle:
		return "Title should not be empty"
	case ErrorAdding:
		return "Unable to add a todo"
	case ErrorDeleting:
		return "Unable to delete a todo"
	case ErrorUpdating:
		return "Unable to update a todo"
	default:
		return ""
	}
}

// Notice is an error kind with the instant it stops being shown
type Notice struct {
	Kind    ErrorKind
	Expires time.Time
}

// Active returns the kind if the notice has not expired at now
func (n Notice) Active(now time.Time) ErrorKind {
	if n.Kind == ErrorNone || !now.Before(n.Expires) {
		return ErrorNone
	}
	return n.Kind
}
