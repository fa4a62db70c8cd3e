package model

import "todo-api/internal/domain/entity"

type CreateTodoDTO struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type UpdateTodoDTO struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// TodoResponse is a todo together with its current position in the list.
type TodoResponse struct {
	Index       int           `json:"index"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Status      entity.Status `json:"status" swaggertype:"integer" enums:"0,1,2,3"`
	StatusName  string        `json:"statusName"`
}

func NewTodoResponse(index int, todo entity.Todo) TodoResponse {
	return TodoResponse{
		Index:       index,
		Title:       todo.Title,
		Description: todo.Description,
		Status:      todo.Status,
		StatusName:  todo.Status.String(),
	}
}

// NewTodoResponses maps todos to responses, numbering them from offset.
func NewTodoResponses(offset int, todos []entity.Todo) []TodoResponse {
	responses := make([]TodoResponse, 0, len(todos))
	for i, todo := range todos {
		responses = append(responses, NewTodoResponse(offset+i, todo))
	}
	return responses
}

type OwnerResponse struct {
	Owner string `json:"owner"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
