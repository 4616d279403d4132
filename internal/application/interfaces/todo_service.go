package interfaces

import (
	"context"

	"todo-service/internal/application/command"
	"todo-service/internal/application/query"
)

type TodoListService interface {
	ListAllForUser(ctx context.Context, userName string) (*query.TodoListQueryListResult, error)
	CreateTodoList(ctx context.Context, createCommand *command.CreateTodoListCommand) error
	DeleteTodoList(ctx context.Context, deleteCommand *command.DeleteTodoListCommand) error
	AddItemToList(ctx context.Context, addCommand *command.AddItemToListCommand) error
	// RemoveItemFromList fails with NotFound for an unknown item id.
	RemoveItemFromList(ctx context.Context, removeCommand *command.RemoveItemFromListCommand) error
}

type TodoListItemService interface {
	ListItems(ctx context.Context, listId int64) (*query.TodoListItemQueryListResult, error)
	CreateItem(ctx context.Context, createCommand *command.CreateTodoListItemCommand) error
	// DeleteItem succeeds for unknown item ids.
	DeleteItem(ctx context.Context, deleteCommand *command.DeleteTodoListItemCommand) error
	ToggleDone(ctx context.Context, toggleCommand *command.ToggleTodoListItemCommand) (*command.ToggleTodoListItemCommandResult, error)
}
