package todo

import (
	"testing"

	"github.com/mmcdole/todos/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestProjections(t *testing.T) {
	placeholder := domain.NewPlaceholder(testUserID, "new")
	todos := []domain.Todo{
		placeholder,
		{ID: 3, Completed: false},
		{ID: 4, Completed: true},
	}

	assert.Equal(t, 1, ActiveCount(todos))
	assert.True(t, IsCreationPending(todos))
	assert.False(t, IsEveryCompleted(todos))
	assert.True(t, HasCompleted(todos))

	assert.True(t, IsEveryCompleted(nil), "vacuously true")
	assert.False(t, HasCompleted(nil))
	assert.False(t, IsCreationPending(todos[1:]))
}
