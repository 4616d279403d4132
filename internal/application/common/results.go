package common

import "time"

type UserResult struct {
	Id        int64     `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UserName  string    `json:"userName"`
}

// TodoListResult serializes Title under "name".
type TodoListResult struct {
	Id    int64  `json:"id"`
	Title string `json:"name"`
}

type TodoListItemResult struct {
	Id     int64  `json:"id"`
	Title  string `json:"title"`
	IsDone bool   `json:"isDone"`
}
