package repositories

import "context"

// Repositories groups the stores that share one connection or transaction.
type Repositories interface {
	Users() UserRepository
	Lists() TodoListRepository
	Items() TodoListItemRepository
}

// UnitOfWork runs fn inside a single transaction. The transaction commits when fn
// returns nil and rolls back when fn returns an error or panics.
type UnitOfWork interface {
	Repositories
	Transaction(ctx context.Context, fn func(tx Repositories) error) error
}
