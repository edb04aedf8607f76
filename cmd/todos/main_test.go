package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/mmcdole/todos/internal/adapter"
	"github.com/mmcdole/todos/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memRepo is an in-memory repository with per-ID failures
type memRepo struct {
	mu         sync.Mutex
	todos      []domain.Todo
	nextID     int
	failDelete map[int]bool
	deleted    []int
}

func (r *memRepo) ListTodos(ctx context.Context, userID int) ([]domain.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.Todo(nil), r.todos...), nil
}

func (r *memRepo) CreateTodo(ctx context.Context, d domain.TodoDraft) (domain.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	t := domain.Todo{ID: r.nextID, UserID: d.UserID, Title: d.Title}
	r.todos = append(r.todos, t)
	return t, nil
}

func (r *memRepo) UpdateTodo(ctx context.Context, t domain.Todo) (domain.Todo, error) {
	return t, nil
}

func (r *memRepo) DeleteTodo(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failDelete[id] {
		return domain.ErrRequestFailed
	}
	r.deleted = append(r.deleted, id)
	return nil
}

func execute(t *testing.T, repo *memRepo, args ...string) (string, error) {
	t.Helper()
	open := func(string) (*session, error) {
		return newSession(adapter.DefaultConfig(), repo, slog.New(slog.NewTextHandler(io.Discard, nil))), nil
	}

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&stdout, &stderr, open)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), err
}

func sample() *memRepo {
	return &memRepo{
		nextID: 10,
		todos: []domain.Todo{
			{ID: 1, UserID: 965, Title: "Buy milk"},
			{ID: 2, UserID: 965, Title: "Call mom", Completed: true},
			{ID: 3, UserID: 965, Title: "Write report"},
		},
	}
}

func TestRootPrintsListWhenNotATerminal(t *testing.T) {
	out, err := execute(t, sample())
	require.NoError(t, err)
	assert.Contains(t, out, "Buy milk")
	assert.Contains(t, out, "[x]")
	assert.Contains(t, out, "2 items left")
}

func TestList(t *testing.T) {
	out, err := execute(t, sample(), "list", "--filter", "completed")
	require.NoError(t, err)
	assert.Contains(t, out, "Call mom")
	assert.NotContains(t, out, "Buy milk")

	out, err = execute(t, sample(), "list", "--match", "rpt")
	require.NoError(t, err)
	assert.Contains(t, out, "Write report")
	assert.NotContains(t, out, "Call mom")

	_, err = execute(t, sample(), "list", "--filter", "bogus")
	assert.Error(t, err)
}

func TestAdd(t *testing.T) {
	repo := sample()
	out, err := execute(t, repo, "add", "  Walk", "the", "dog  ")
	require.NoError(t, err)
	assert.Contains(t, out, "11")
	assert.Contains(t, out, "Walk the dog")
	assert.Contains(t, out, "3 items left")
}

func TestAddEmptyTitle(t *testing.T) {
	_, err := execute(t, sample(), "add", "   ")
	require.Error(t, err)
	assert.Equal(t, "Title should not be empty", err.Error())
}

func TestToggle(t *testing.T) {
	out, err := execute(t, sample(), "toggle", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "1 item left")

	_, err = execute(t, sample(), "toggle", "99")
	assert.ErrorIs(t, err, domain.ErrTodoNotFound)

	_, err = execute(t, sample(), "toggle", "abc")
	assert.Error(t, err)
}

func TestRename(t *testing.T) {
	out, err := execute(t, sample(), "rename", "1", "Buy", "oat", "milk")
	require.NoError(t, err)
	assert.Contains(t, out, "Buy oat milk")

	// blank title deletes
	repo := sample()
	out, err = execute(t, repo, "rename", "1", " ")
	require.NoError(t, err)
	assert.NotContains(t, out, "Buy milk")
	assert.Equal(t, []int{1}, repo.deleted)
}

func TestRemovePartialFailure(t *testing.T) {
	repo := sample()
	repo.failDelete = map[int]bool{3: true}

	out, err := execute(t, repo, "rm", "1", "3")
	require.Error(t, err)
	assert.Equal(t, "Unable to delete a todo", err.Error())
	assert.NotContains(t, out, "Buy milk")
	assert.Contains(t, out, "Write report")
	assert.Equal(t, []int{1}, repo.deleted)
}

func TestClearCompleted(t *testing.T) {
	repo := sample()
	out, err := execute(t, repo, "clear-completed")
	require.NoError(t, err)
	assert.NotContains(t, out, "Call mom")
	assert.Equal(t, []int{2}, repo.deleted)
}

func TestToggleAll(t *testing.T) {
	out, err := execute(t, sample(), "toggle-all")
	require.NoError(t, err)
	assert.Contains(t, out, "0 items left")
	assert.NotContains(t, out, "[ ]")
}

func TestConfigSetServerAndShow(t *testing.T) {
	dir := t.TempDir()

	out, err := execute(t, sample(), "--config-dir", dir, "config", "set-server", "http://localhost:3000/api", "--user", "7")
	require.NoError(t, err)
	assert.Contains(t, out, "http://localhost:3000/api")

	out, err = execute(t, sample(), "--config-dir", dir, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "server.url: http://localhost:3000/api")
	assert.Contains(t, out, "server.user_id: 7")

	_, err = execute(t, sample(), "--config-dir", dir, "config", "set-server", "nope")
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	out, err := execute(t, sample(), "--version")
	require.NoError(t, err)
	assert.Equal(t, "todos dev\n", out)
}
