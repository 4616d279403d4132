package entities

import "strings"

// TodoList is owned by exactly one user. OwnerId is set at creation and never changes.
type TodoList struct {
	Id      int64
	Title   string
	OwnerId int64
}

func NewTodoList(title string, ownerId int64) (*TodoList, error) {
	list := &TodoList{
		Title:   title,
		OwnerId: ownerId,
	}
	if err := list.validate(); err != nil {
		return nil, err
	}
	return list, nil
}

func (l *TodoList) validate() error {
	if strings.TrimSpace(l.Title) == "" {
		return NewInvalidInputError("title must not be empty")
	}
	if l.OwnerId == 0 {
		return NewInvalidInputError("list must have an owner")
	}
	return nil
}
