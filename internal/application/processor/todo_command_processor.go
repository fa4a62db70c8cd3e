package processor

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/sqs/types"

	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/usecase/todo"
	"todo-api/pkg/log"
	"todo-api/pkg/msg"
)

type CommandAction string

const (
	ActionCreate   CommandAction = "create"
	ActionUpdate   CommandAction = "update"
	ActionComplete CommandAction = "complete"
	ActionDelete   CommandAction = "delete"
)

// TodoCommand is the JSON body of a message on the command queue.
type TodoCommand struct {
	Caller      string        `json:"caller"`
	Action      CommandAction `json:"action"`
	Index       int           `json:"index"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
}

// TodoCommandProcessor applies queued commands through the todo use case. A returned error
// keeps the message on the queue for redelivery.
type TodoCommandProcessor struct {
	todoUseCase todo.UseCase
	timeout     time.Duration
}

func NewTodoCommandProcessor(todoUseCase todo.UseCase, timeout time.Duration) *TodoCommandProcessor {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &TodoCommandProcessor{
		todoUseCase: todoUseCase,
		timeout:     timeout,
	}
}

// HandleMessage implements the sqs.Handler interface
func (p *TodoCommandProcessor) HandleMessage(message *types.Message) error {
	if message == nil || message.Body == nil {
		return fmt.Errorf("received nil message or message body")
	}

	var command TodoCommand
	if err := json.Unmarshal([]byte(*message.Body), &command); err != nil {
		return fmt.Errorf("failed to unmarshal message body: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
	defer cancel()

	if err := p.Apply(ctx, command); err != nil {
		log.Error(msg.GetMessage("todo.command.failed", command.Action, err))
		return err
	}
	return nil
}

// Apply runs command against the use case.
func (p *TodoCommandProcessor) Apply(ctx context.Context, command TodoCommand) error {
	caller, err := entity.ParseAddress(command.Caller)
	if err != nil {
		return fmt.Errorf("invalid caller %q: %w", command.Caller, err)
	}

	log.Info(msg.GetMessage("todo.command.received", command.Action, caller))

	switch command.Action {
	case ActionCreate:
		_, _, err = p.todoUseCase.CreateTodo(ctx, caller, command.Title, command.Description)
	case ActionUpdate:
		_, err = p.todoUseCase.UpdateTodo(ctx, caller, command.Index, command.Title, command.Description)
	case ActionComplete:
		_, err = p.todoUseCase.TodoCompleted(ctx, caller, command.Index)
	case ActionDelete:
		err = p.todoUseCase.DeleteTodo(ctx, caller, command.Index)
	default:
		return fmt.Errorf("unknown todo command action %q", command.Action)
	}
	return err
}
