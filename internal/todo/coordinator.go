package todo

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mmcdole/todos/internal/domain"
)

// DefaultErrorTimeout is how long an error stays visible unless replaced or dismissed
const DefaultErrorTimeout = 3 * time.Second

// Options configures a Coordinator
type Options struct {
	UserID       int
	ErrorTimeout time.Duration
	Logger       *slog.Logger
	Clock        func() time.Time
}

// Coordinator owns the local mirror of the user's todos and keeps it consistent
// with the server under concurrent, possibly failing mutations.
//
// Intents mutate local state immediately and return Effects. Effects perform
// the server call and nothing else; their Outcomes must be passed back to
// Settle. A Coordinator is not safe for concurrent use: intents, Settle and the
// queries must all run on one goroutine.
type Coordinator struct {
	repo     domain.TodoRepository
	userID   int
	errorTTL time.Duration
	now      func() time.Time
	logger   *slog.Logger

	todos   []domain.Todo
	pending pendingSet
	notice  domain.Notice
	filter  domain.Filter
	loading bool
}

// NewCoordinator creates a coordinator with an empty list
func NewCoordinator(repo domain.TodoRepository, opts Options) *Coordinator {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.ErrorTimeout <= 0 {
		opts.ErrorTimeout = DefaultErrorTimeout
	}
	return &Coordinator{
		repo:     repo,
		userID:   opts.UserID,
		errorTTL: opts.ErrorTimeout,
		now:      opts.Clock,
		logger:   opts.Logger,
		pending:  make(pendingSet),
	}
}

// UserID returns the fixed user the coordinator works for
func (c *Coordinator) UserID() int {
	return c.userID
}

// Load requests the full list. The list is replaced when the outcome settles.
func (c *Coordinator) Load() Effect {
	c.loading = true
	userID := c.userID
	repo := c.repo

	return func(ctx context.Context) Outcome {
		todos, err := repo.ListTodos(ctx, userID)
		return LoadOutcome{Todos: todos, Err: err}
	}
}

// Create appends a placeholder and returns the effect that confirms it.
// Blank titles raise ErrorEmptyTitle without touching the list.
func (c *Coordinator) Create(title string) (Effect, error) {
	if c.IsCreationPending() {
		return nil, domain.ErrCreationPending
	}

	c.clearError()

	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		c.raise(domain.ErrorEmptyTitle)
		return nil, domain.ErrEmptyTitle
	}

	placeholder := domain.NewPlaceholder(c.userID, title)
	c.todos = append(c.todos, placeholder)

	draft := domain.TodoDraft{UserID: c.userID, Title: trimmed, Completed: false}
	token := placeholder.Token
	repo := c.repo

	c.logger.Debug("creating todo", "token", token, "title", trimmed)

	return func(ctx context.Context) Outcome {
		created, err := repo.CreateTodo(ctx, draft)
		return CreateOutcome{Token: token, Todo: created, Err: err}
	}, nil
}

// Delete marks the todo busy and returns the effect that removes it.
// The item stays in the list until the server confirms.
func (c *Coordinator) Delete(id int) Effect {
	c.clearError()
	c.pending.add(id)
	repo := c.repo

	return func(ctx context.Context) Outcome {
		return DeleteOutcome{ID: id, Err: repo.DeleteTodo(ctx, id)}
	}
}

// Edit marks the todo busy and returns the effect that stores data as its new
// full payload.
func (c *Coordinator) Edit(id int, data domain.Todo) Effect {
	c.clearError()
	c.pending.add(id)

	payload := data
	payload.ID = id
	payload.UserID = c.userID
	payload.Token = uuid.Nil
	repo := c.repo

	return func(ctx context.Context) Outcome {
		updated, err := repo.UpdateTodo(ctx, payload)
		return UpdateOutcome{ID: id, Todo: updated, Err: err}
	}
}

// Toggle flips the completion flag of a confirmed todo.
// Returns nil if there is no such todo.
func (c *Coordinator) Toggle(id int) Effect {
	t, ok := c.find(id)
	if !ok {
		return nil
	}
	return c.Edit(id, t.WithCompleted(!t.Completed))
}

// Rename applies an edited title. An unchanged title is a no-op, a blank title
// deletes the todo. Returns nil when nothing needs to be sent.
func (c *Coordinator) Rename(id int, title string) Effect {
	t, ok := c.find(id)
	if !ok {
		return nil
	}

	trimmed := strings.TrimSpace(title)
	switch trimmed {
	case t.Title:
		return nil
	case "":
		return c.Delete(id)
	default:
		return c.Edit(id, t.WithTitle(trimmed))
	}
}

// ClearCompleted deletes every completed todo. Each delete is independent:
// some may fail while others succeed.
func (c *Coordinator) ClearCompleted() []Effect {
	var effects []Effect
	for _, t := range c.confirmed() {
		if t.Completed {
			effects = append(effects, c.Delete(t.ID))
		}
	}
	return effects
}

// ToggleAll marks everything active when all todos are completed, otherwise
// completes only the active ones. No atomicity across the batch.
func (c *Coordinator) ToggleAll() []Effect {
	everyCompleted := c.IsEveryCompleted()

	var effects []Effect
	for _, t := range c.confirmed() {
		switch {
		case everyCompleted:
			effects = append(effects, c.Edit(t.ID, t.WithCompleted(false)))
		case !t.Completed:
			effects = append(effects, c.Edit(t.ID, t.WithCompleted(true)))
		}
	}
	return effects
}

// SetFilter changes the view projection
func (c *Coordinator) SetFilter(f domain.Filter) {
	c.filter = f
}

// DismissError hides the current error before it expires
func (c *Coordinator) DismissError() {
	c.clearError()
}

func (c *Coordinator) raise(kind domain.ErrorKind) {
	c.notice = domain.Notice{Kind: kind, Expires: c.now().Add(c.errorTTL)}
}

func (c *Coordinator) clearError() {
	c.notice = domain.Notice{}
}

func (c *Coordinator) find(id int) (domain.Todo, bool) {
	for _, t := range c.todos {
		if !t.IsPlaceholder() && t.ID == id {
			return t, true
		}
	}
	return domain.Todo{}, false
}

// confirmed returns the todos that have a server ID
func (c *Coordinator) confirmed() []domain.Todo {
	out := make([]domain.Todo, 0, len(c.todos))
	for _, t := range c.todos {
		if !t.IsPlaceholder() {
			out = append(out, t)
		}
	}
	return out
}
