package entities

import "strings"

// TodoListItem always references a parent list.
type TodoListItem struct {
	Id     int64
	Title  string
	IsDone bool
	ListId int64
}

// NewTodoListItem defaults IsDone to false unless isDone is given.
func NewTodoListItem(title string, isDone *bool, listId int64) (*TodoListItem, error) {
	item := &TodoListItem{
		Title:  title,
		ListId: listId,
	}
	if isDone != nil {
		item.IsDone = *isDone
	}
	if err := item.validate(); err != nil {
		return nil, err
	}
	return item, nil
}

func (i *TodoListItem) validate() error {
	if strings.TrimSpace(i.Title) == "" {
		return NewInvalidInputError("title must not be empty")
	}
	if i.ListId == 0 {
		return NewInvalidInputError("item must belong to a list")
	}
	return nil
}

func (i *TodoListItem) ToggleDone() {
	i.IsDone = !i.IsDone
}
