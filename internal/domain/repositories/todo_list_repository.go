package repositories

import (
	"context"

	"todo-service/internal/domain/entities"
)

type TodoListRepository interface {
	FindById(ctx context.Context, id int64) (*entities.TodoList, error)
	FindByOwnerId(ctx context.Context, ownerId int64) ([]*entities.TodoList, error)
	ExistsByTitleAndOwnerId(ctx context.Context, title string, ownerId int64) (bool, error)
	Create(ctx context.Context, list *entities.TodoList) (*entities.TodoList, error)
	// Delete removes the list together with all of its items.
	Delete(ctx context.Context, id int64) error
}
