package mapper

import (
	"todo-service/internal/application/common"
	"todo-service/internal/domain/entities"
)

func NewTodoListResultFromEntity(list *entities.TodoList) *common.TodoListResult {
	return &common.TodoListResult{
		Id:    list.Id,
		Title: list.Title,
	}
}

// NewTodoListResultsFromEntities never returns nil so an empty result encodes as [].
func NewTodoListResultsFromEntities(lists []*entities.TodoList) []*common.TodoListResult {
	results := make([]*common.TodoListResult, 0, len(lists))
	for _, list := range lists {
		results = append(results, NewTodoListResultFromEntity(list))
	}
	return results
}

func NewTodoListItemResultFromEntity(item *entities.TodoListItem) *common.TodoListItemResult {
	return &common.TodoListItemResult{
		Id:     item.Id,
		Title:  item.Title,
		IsDone: item.IsDone,
	}
}

func NewTodoListItemResultsFromEntities(items []*entities.TodoListItem) []*common.TodoListItemResult {
	results := make([]*common.TodoListItemResult, 0, len(items))
	for _, item := range items {
		results = append(results, NewTodoListItemResultFromEntity(item))
	}
	return results
}
