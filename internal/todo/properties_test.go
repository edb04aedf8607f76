package todo

import (
	"context"
	"testing"

	"github.com/mmcdole/todos/internal/domain"
	"pgregory.net/rapid"
)

func titleGenerator() *rapid.Generator[string] {
	return rapid.StringMatching(`[A-Za-z0-9 ]{0,20}`)
}

// Successful creates always leave unique server IDs and no placeholder behind
func testCreates_UniqueIDs_Properties(t *rapid.T) {
	c, _ := loaded(newFakeRepo())

	titles := rapid.SliceOfN(titleGenerator(), 1, 15).Draw(t, "titles")
	for _, title := range titles {
		effect, err := c.Create(title)
		if err != nil {
			continue
		}
		c.Settle(effect(context.Background()))
	}

	seen := make(map[int]bool)
	for _, todo := range c.Todos() {
		if todo.IsPlaceholder() {
			t.Fatalf("placeholder left after all creations settled: %+v", todo)
		}
		if seen[todo.ID] {
			t.Fatalf("duplicate id %d", todo.ID)
		}
		seen[todo.ID] = true
	}
}

func TestCreates_UniqueIDs_Properties(t *testing.T) {
	rapid.Check(t, testCreates_UniqueIDs_Properties)
}

// Whatever mix of successes and failures, every request settles with an empty
// pending set, and failed deletes keep their item
func testMutations_PendingDrains_Properties(t *rapid.T) {
	n := rapid.IntRange(1, 10).Draw(t, "n")
	repo := newFakeRepo()
	for i := 1; i <= n; i++ {
		repo.todos = append(repo.todos, domain.Todo{ID: i, Completed: rapid.Bool().Draw(t, "completed")})
		repo.failDelete[i] = rapid.Bool().Draw(t, "failDelete")
		repo.failUpdate[i] = rapid.Bool().Draw(t, "failUpdate")
	}
	c, _ := loaded(repo)

	var outcomes []Outcome
	for _, e := range c.ToggleAll() {
		outcomes = append(outcomes, e(context.Background()))
	}
	for _, e := range c.ClearCompleted() {
		outcomes = append(outcomes, e(context.Background()))
	}

	order := rapid.Permutation(outcomes).Draw(t, "order")
	for _, o := range order {
		c.Settle(o)
	}

	if c.PendingCount() != 0 {
		t.Fatalf("pending set not empty: %d", c.PendingCount())
	}
	remaining := make(map[int]bool)
	for _, todo := range c.Todos() {
		remaining[todo.ID] = true
	}
	for _, o := range outcomes {
		if d, ok := o.(DeleteOutcome); ok && d.Err != nil && !remaining[d.ID] {
			t.Fatalf("failed delete removed todo %d", d.ID)
		}
	}
}

func TestMutations_PendingDrains_Properties(t *testing.T) {
	rapid.Check(t, testMutations_PendingDrains_Properties)
}
