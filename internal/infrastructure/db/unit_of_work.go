package db

import (
	"context"

	"gorm.io/gorm"

	"todo-service/internal/domain/repositories"
)

type repositorySet struct {
	users repositories.UserRepository
	lists repositories.TodoListRepository
	items repositories.TodoListItemRepository
}

func newRepositorySet(db *gorm.DB) *repositorySet {
	return &repositorySet{
		users: NewUserRepository(db),
		lists: NewTodoListRepository(db),
		items: NewTodoListItemRepository(db),
	}
}

func (s *repositorySet) Users() repositories.UserRepository { return s.users }
func (s *repositorySet) Lists() repositories.TodoListRepository { return s.lists }
func (s *repositorySet) Items() repositories.TodoListItemRepository { return s.items }

type UnitOfWork struct {
	*repositorySet
	db     *gorm.DB
	driver string
}

// NewUnitOfWork binds repositories to db. driver selects the transaction isolation.
func NewUnitOfWork(db *gorm.DB, driver string) repositories.UnitOfWork {
	return &UnitOfWork{
		repositorySet: newRepositorySet(db),
		db:            db,
		driver:        driver,
	}
}

func (u *UnitOfWork) Transaction(ctx context.Context, fn func(tx repositories.Repositories) error) error {
	run := func(tx *gorm.DB) error {
		return fn(newRepositorySet(tx))
	}
	if opts := txOptionsFor(u.driver); opts != nil {
		return u.db.WithContext(ctx).Transaction(run, opts)
	}
	return u.db.WithContext(ctx).Transaction(run)
}
