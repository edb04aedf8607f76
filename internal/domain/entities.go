package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// Todo is a single task record owned by a user.
//
// A todo is either confirmed (ID assigned by the server, Token zero) or a
// placeholder created locally while its create request is in flight (Token
// set, ID zero). At most one placeholder exists at a time.
type Todo struct {
	ID        int       `json:"id"`
	UserID    int       `json:"userId"`
	Title     string    `json:"title"`
	Completed bool      `json:"completed"`
	Token     uuid.UUID `json:"-"`
}

// TodoDraft is the payload for creating a todo (a Todo without an ID)
type TodoDraft struct {
	UserID    int    `json:"userId"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// NewPlaceholder returns an unconfirmed todo tagged with a fresh local token
func NewPlaceholder(userID int, title string) Todo {
	return Todo{
		UserID: userID,
		Title:  title,
		Token:  uuid.New(),
	}
}

// IsPlaceholder returns true if the server has not assigned an ID yet
func (t Todo) IsPlaceholder() bool {
	return t.Token != uuid.Nil
}

// Key returns a row key that is stable across both states
func (t Todo) Key() string {
	if t.IsPlaceholder() {
		return "tmp:" + t.Token.String()
	}
	return fmt.Sprintf("id:%d", t.ID)
}

// WithCompleted returns a copy with the completion flag set
func (t Todo) WithCompleted(completed bool) Todo {
	t.Completed = completed
	return t
}

// WithTitle returns a copy with a new title
func (t Todo) WithTitle(title string) Todo {
	t.Title = title
	return t
}
