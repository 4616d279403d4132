package command

type CreateTodoListCommand struct {
	Title         string
	OwnerUserName string
}

type DeleteTodoListCommand struct {
	ListId int64
}

type AddItemToListCommand struct {
	ListId int64
	Title  string
	IsDone *bool
}

type RemoveItemFromListCommand struct {
	ItemId int64
}
