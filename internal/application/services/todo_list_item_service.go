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

type TodoListItemService struct {
	uow    repositories.UnitOfWork
	logger zerolog.Logger
}

func NewTodoListItemService(uow repositories.UnitOfWork, logger zerolog.Logger) *TodoListItemService {
	return &TodoListItemService{
		uow:    uow,
		logger: logger.With().Str("component", "todo_list_item_service").Logger(),
	}
}

var _ interfaces.TodoListItemService = (*TodoListItemService)(nil)

// ListItems returns an empty result for a list that has no items or does not exist.
func (s *TodoListItemService) ListItems(ctx context.Context, listId int64) (*query.TodoListItemQueryListResult, error) {
	items, err := s.uow.Items().FindByListId(ctx, listId)
	if err != nil {
		return nil, err
	}

	return &query.TodoListItemQueryListResult{
		Result: mapper.NewTodoListItemResultsFromEntities(items),
	}, nil
}

func (s *TodoListItemService) CreateItem(ctx context.Context, createCommand *command.CreateTodoListItemCommand) error {
	return s.uow.Transaction(ctx, func(tx repositories.Repositories) error {
		list, err := tx.Lists().FindById(ctx, createCommand.ListId)
		if err != nil {
			return err
		}
		if list == nil {
			return entities.NewNotFoundError("Todolist not found")
		}

		item, err := entities.NewTodoListItem(createCommand.Title, createCommand.IsDone, list.Id)
		if err != nil {
			return err
		}

		created, err := tx.Items().Create(ctx, item)
		if err != nil {
			return err
		}

		s.logger.Info().Int64("item_id", created.Id).Int64("list_id", list.Id).Msg("item created")
		return nil
	})
}

func (s *TodoListItemService) DeleteItem(ctx context.Context, deleteCommand *command.DeleteTodoListItemCommand) error {
	return s.uow.Transaction(ctx, func(tx repositories.Repositories) error {
		return tx.Items().Delete(ctx, deleteCommand.ItemId)
	})
}

func (s *TodoListItemService) ToggleDone(ctx context.Context, toggleCommand *command.ToggleTodoListItemCommand) (*command.ToggleTodoListItemCommandResult, error) {
	var toggled *entities.TodoListItem
	err := s.uow.Transaction(ctx, func(tx repositories.Repositories) error {
		item, err := tx.Items().FindById(ctx, toggleCommand.ItemId)
		if err != nil {
			return err
		}
		if item == nil {
			return entities.NewNotFoundError("item not found")
		}

		item.ToggleDone()
		if err := tx.Items().UpdateIsDone(ctx, item.Id, item.IsDone); err != nil {
			return err
		}
		toggled = item
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("item_id", toggled.Id).Bool("is_done", toggled.IsDone).Msg("item toggled")
	return &command.ToggleTodoListItemCommandResult{
		Result: mapper.NewTodoListItemResultFromEntity(toggled),
	}, nil
}
