package tui

import (
	"time"

	"github.com/mmcdole/todos/internal/todo"
)

// Message types for the TUI

// OutcomeMsg carries the result of a server call back to the update loop
type OutcomeMsg struct {
	Outcome todo.Outcome
}

// NoticeExpiredMsg fires when an error notification reaches its expiry
type NoticeExpiredMsg struct {
	Expires time.Time
}

// ClearStatusMsg clears the status bar message if it is still status Seq
type ClearStatusMsg struct {
	Seq int
}

// StatusMsg sets a temporary status message
type StatusMsg struct {
	Message string
	IsError bool
}
