package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterApply(t *testing.T) {
	todos := []Todo{
		{ID: 1, Title: "a", Completed: true},
		{ID: 2, Title: "b"},
		{ID: 3, Title: "c", Completed: true},
		{ID: 4, Title: "d"},
	}

	t.Run("all is identity", func(t *testing.T) {
		assert.Equal(t, todos, FilterAll.Apply(todos))
	})

	t.Run("active keeps incomplete in order", func(t *testing.T) {
		got := FilterActive.Apply(todos)
		require.Len(t, got, 2)
		assert.Equal(t, 2, got[0].ID)
		assert.Equal(t, 4, got[1].ID)
	})

	t.Run("completed keeps completed in order", func(t *testing.T) {
		got := FilterCompleted.Apply(todos)
		require.Len(t, got, 2)
		assert.Equal(t, 1, got[0].ID)
		assert.Equal(t, 3, got[1].ID)
	})
}

func TestParseFilter(t *testing.T) {
	for in, want := range map[string]Filter{
		"":          FilterAll,
		"all":       FilterAll,
		"Active":    FilterActive,
		"COMPLETED": FilterCompleted,
		" done ":    FilterCompleted,
	} {
		got, err := ParseFilter(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseFilter("someday")
	assert.Error(t, err)
}

func TestFilterNextCycles(t *testing.T) {
	assert.Equal(t, FilterActive, FilterAll.Next())
	assert.Equal(t, FilterCompleted, FilterActive.Next())
	assert.Equal(t, FilterAll, FilterCompleted.Next())
}

func TestPlaceholderTag(t *testing.T) {
	p := NewPlaceholder(7, "milk")
	assert.True(t, p.IsPlaceholder())
	assert.Zero(t, p.ID)
	assert.Contains(t, p.Key(), "tmp:")

	c := Todo{ID: 12, UserID: 7, Title: "milk"}
	assert.False(t, c.IsPlaceholder())
	assert.Equal(t, "id:12", c.Key())
}

func TestNoticeExpiry(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	n := Notice{Kind: ErrorAdding, Expires: now.Add(3 * time.Second)}

	assert.Equal(t, ErrorAdding, n.Active(now))
	assert.Equal(t, ErrorAdding, n.Active(now.Add(2999*time.Millisecond)))
	assert.Equal(t, ErrorNone, n.Active(now.Add(3*time.Second)))
	assert.Equal(t, ErrorNone, Notice{}.Active(now))
}

func TestErrorKindMessages(t *testing.T) {
	assert.Equal(t, "Unable to load todos", ErrorLoading.Message())
	assert.Equal(t, "Title should not be empty", ErrorEmptyTitle.Message())
	assert.Equal(t, "updating-error", ErrorUpdating.String())
	assert.Empty(t, ErrorNone.Message())
}
