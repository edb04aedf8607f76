package rest

// TodoDTO is the wire shape of a todo
type TodoDTO struct {
	ID        int    `json:"id"`
	UserID    int    `json:"userId"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// CreateRequest is the body of POST /todos
type CreateRequest struct {
	Title     string `json:"title"`
	UserID    int    `json:"userId"`
	Completed bool   `json:"completed"`
}
