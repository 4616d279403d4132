package repositories

import (
	"context"

	"todo-service/internal/domain/entities"
)

// UserRepository is the credential store. Find methods return nil, nil when absent.
type UserRepository interface {
	ExistsByUserName(ctx context.Context, userName string) (bool, error)
	FindByUserName(ctx context.Context, userName string) (*entities.User, error)
	Create(ctx context.Context, user *entities.ValidatedUser) (*entities.User, error)
}
