package command

import "todo-service/internal/application/common"

type CreateTodoListItemCommand struct {
	ListId int64
	Title  string
	// IsDone is optional, nil means false.
	IsDone *bool
}

type DeleteTodoListItemCommand struct {
	ItemId int64
}

type ToggleTodoListItemCommand struct {
	ItemId int64
}

type ToggleTodoListItemCommandResult struct {
	Result *common.TodoListItemResult `json:"result"`
}
