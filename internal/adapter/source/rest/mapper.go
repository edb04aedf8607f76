package rest

import "github.com/mmcdole/todos/internal/domain"

// MapTodo converts a wire todo to a domain todo
func MapTodo(dto TodoDTO) domain.Todo {
	return domain.Todo{
		ID:        dto.ID,
		UserID:    dto.UserID,
		Title:     dto.Title,
		Completed: dto.Completed,
	}
}

// MapTodos converts a list of wire todos
func MapTodos(dtos []TodoDTO) []domain.Todo {
	todos := make([]domain.Todo, len(dtos))
	for i, dto := range dtos {
		todos[i] = MapTodo(dto)
	}
	return todos
}

// toDTO converts a confirmed domain todo to its wire shape
func toDTO(t domain.Todo) TodoDTO {
	return TodoDTO{
		ID:        t.ID,
		UserID:    t.UserID,
		Title:     t.Title,
		Completed: t.Completed,
	}
}

func toCreateRequest(d domain.TodoDraft) CreateRequest {
	return CreateRequest{
		Title:     d.Title,
		UserID:    d.UserID,
		Completed: d.Completed,
	}
}
