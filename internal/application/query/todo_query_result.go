package query

import "todo-service/internal/application/common"

type TodoListQueryListResult struct {
	Result []*common.TodoListResult `json:"result"`
}

type TodoListItemQueryListResult struct {
	Result []*common.TodoListItemResult `json:"result"`
}
