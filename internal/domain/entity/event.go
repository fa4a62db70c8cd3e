package entity

import "time"

type EventType string

const (
	EventTodoCreated   EventType = "todo.created"
	EventTodoUpdated   EventType = "todo.updated"
	EventTodoCompleted EventType = "todo.completed"
	EventTodoDeleted   EventType = "todo.deleted"
	EventTodoSummary   EventType = "todo.summary"
)

// TodoEvent describes a committed change to the list, or a periodic summary.
type TodoEvent struct {
	ID         string       `json:"id"`
	Type       EventType    `json:"type"`
	Index      int          `json:"index"`
	Todo       *Todo        `json:"todo,omitempty"`
	Summary    *TodoSummary `json:"summary,omitempty"`
	Caller     Address      `json:"caller"`
	OccurredAt time.Time    `json:"occurredAt"`
}

// TodoSummary counts the todos in each lifecycle stage.
type TodoSummary struct {
	Total     int `json:"total"`
	Created   int `json:"created"`
	Updated   int `json:"updated"`
	Completed int `json:"completed"`
}
