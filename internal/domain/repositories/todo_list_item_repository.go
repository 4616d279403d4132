package repositories

import (
	"context"

	"todo-service/internal/domain/entities"
)

type TodoListItemRepository interface {
	FindById(ctx context.Context, id int64) (*entities.TodoListItem, error)
	FindByListId(ctx context.Context, listId int64) ([]*entities.TodoListItem, error)
	ExistsById(ctx context.Context, id int64) (bool, error)
	Create(ctx context.Context, item *entities.TodoListItem) (*entities.TodoListItem, error)
	UpdateIsDone(ctx context.Context, id int64, isDone bool) error
	// Delete is a no-op for unknown ids.
	Delete(ctx context.Context, id int64) error
}
