package todo

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/mmcdole/todos/internal/domain"
)

var errBoom = errors.New("boom")

const testUserID = 965

// fakeRepo is an in-memory TodoRepository that records calls
type fakeRepo struct {
	mu sync.Mutex

	todos  []domain.Todo
	nextID int

	failList   bool
	failCreate bool
	failDelete map[int]bool
	failUpdate map[int]bool

	creates []domain.TodoDraft
	deletes []int
	updates []domain.Todo
}

func newFakeRepo(todos ...domain.Todo) *fakeRepo {
	return &fakeRepo{
		todos:      todos,
		nextID:     100,
		failDelete: make(map[int]bool),
		failUpdate: make(map[int]bool),
	}
}

func (r *fakeRepo) ListTodos(ctx context.Context, userID int) ([]domain.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failList {
		return nil, errBoom
	}
	out := make([]domain.Todo, len(r.todos))
	copy(out, r.todos)
	return out, nil
}

func (r *fakeRepo) CreateTodo(ctx context.Context, draft domain.TodoDraft) (domain.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.creates = append(r.creates, draft)
	if r.failCreate {
		return domain.Todo{}, errBoom
	}
	r.nextID++
	t := domain.Todo{ID: r.nextID, UserID: draft.UserID, Title: draft.Title, Completed: draft.Completed}
	r.todos = append(r.todos, t)
	return t, nil
}

func (r *fakeRepo) UpdateTodo(ctx context.Context, todo domain.Todo) (domain.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.updates = append(r.updates, todo)
	if r.failUpdate[todo.ID] {
		return domain.Todo{}, errBoom
	}
	return todo, nil
}

func (r *fakeRepo) DeleteTodo(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.deletes = append(r.deletes, id)
	if r.failDelete[id] {
		return errBoom
	}
	return nil
}

// testClock is a settable clock
type testClock struct {
	t time.Time
}

func (c *testClock) Now() time.Time { return c.t }

func (c *testClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestCoordinator(repo domain.TodoRepository) (*Coordinator, *testClock) {
	clock := &testClock{t: time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)}
	c := NewCoordinator(repo, Options{
		UserID: testUserID,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		Clock:  clock.Now,
	})
	return c, clock
}

// loaded returns a coordinator whose list was loaded from repo
func loaded(repo *fakeRepo) (*Coordinator, *testClock) {
	c, clock := newTestCoordinator(repo)
	c.Settle(c.Load()(context.Background()))
	return c, clock
}

func run(c *Coordinator, effect Effect) {
	c.Settle(effect(context.Background()))
}

func ids(todos []domain.Todo) []int {
	out := make([]int, len(todos))
	for i, t := range todos {
		out[i] = t.ID
	}
	return out
}
