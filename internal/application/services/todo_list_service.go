package services

import (
	"context"

	"github.com/rs/zerolog"

	"todo-service/internal/application/command"
	"todo-service/internal/application/interfaces"
	"todo-service/internal/application/mapper"
	"todo-service/internal/application/query"
	"todo-service/internal/domain/entities"
	"todo-service/internal/domain/repositories"
)

// TodoListService manages lists scoped to their owner. Delete and AddItemToList trust
// the list id they are given and do not compare the owner with the caller.
type TodoListService struct {
	uow    repositories.UnitOfWork
	logger zerolog.Logger
}

func NewTodoListService(uow repositories.UnitOfWork, logger zerolog.Logger) *TodoListService {
	return &TodoListService{
		uow:    uow,
		logger: logger.With().Str("component", "todo_list_service").Logger(),
	}
}

var _ interfaces.TodoListService = (*TodoListService)(nil)

func (s *TodoListService) ListAllForUser(ctx context.Context, userName string) (*query.TodoListQueryListResult, error) {
	user, err := s.uow.Users().FindByUserName(ctx, userName)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, entities.NewNotFoundError("User not found with username: " + userName)
	}

	lists, err := s.uow.Lists().FindByOwnerId(ctx, user.Id)
	if err != nil {
		return nil, err
	}

	return &query.TodoListQueryListResult{
		Result: mapper.NewTodoListResultsFromEntities(lists),
	}, nil
}

// CreateTodoList enforces title uniqueness per owner. Other users may reuse the title.
func (s *TodoListService) CreateTodoList(ctx context.Context, createCommand *command.CreateTodoListCommand) error {
	return s.uow.Transaction(ctx, func(tx repositories.Repositories) error {
		user, err := tx.Users().FindByUserName(ctx, createCommand.OwnerUserName)
		if err != nil {
			return err
		}
		if user == nil {
			return entities.NewNotFoundError("User not found with username: " + createCommand.OwnerUserName)
		}

		list, err := entities.NewTodoList(createCommand.Title, user.Id)
		if err != nil {
			return err
		}

		exists, err := tx.Lists().ExistsByTitleAndOwnerId(ctx, list.Title, user.Id)
		if err != nil {
			return err
		}
		if exists {
			return entities.NewAlreadyExistsError("title is exist for this user")
		}

		created, err := tx.Lists().Create(ctx, list)
		if err != nil {
			return err
		}

		s.logger.Info().Int64("list_id", created.Id).Int64("user_id", user.Id).Msg("todo list created")
		return nil
	})
}

func (s *TodoListService) DeleteTodoList(ctx context.Context, deleteCommand *command.DeleteTodoListCommand) error {
	return s.uow.Transaction(ctx, func(tx repositories.Repositories) error {
		list, err := tx.Lists().FindById(ctx, deleteCommand.ListId)
		if err != nil {
			return err
		}
		if list == nil {
			return entities.NewNotFoundError("List not found")
		}

		if err := tx.Lists().Delete(ctx, list.Id); err != nil {
			return err
		}

		s.logger.Info().Int64("list_id", list.Id).Msg("todo list deleted")
		return nil
	})
}

func (s *TodoListService) AddItemToList(ctx context.Context, addCommand *command.AddItemToListCommand) error {
	return s.uow.Transaction(ctx, func(tx repositories.Repositories) error {
		list, err := tx.Lists().FindById(ctx, addCommand.ListId)
		if err != nil {
			return err
		}
		if list == nil {
			return entities.NewNotFoundError("List not found")
		}

		item, err := entities.NewTodoListItem(addCommand.Title, addCommand.IsDone, list.Id)
		if err != nil {
			return err
		}

		created, err := tx.Items().Create(ctx, item)
		if err != nil {
			return err
		}

		s.logger.Info().Int64("item_id", created.Id).Int64("list_id", list.Id).Msg("item added to list")
		return nil
	})
}

func (s *TodoListService) RemoveItemFromList(ctx context.Context, removeCommand *command.RemoveItemFromListCommand) error {
	return s.uow.Transaction(ctx, func(tx repositories.Repositories) error {
		exists, err := tx.Items().ExistsById(ctx, removeCommand.ItemId)
		if err != nil {
			return err
		}
		if !exists {
			return entities.NewNotFoundError("Item not found")
		}

		return tx.Items().Delete(ctx, removeCommand.ItemId)
	})
}
