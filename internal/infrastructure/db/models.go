package db

import "time"

type UserModel struct {
	Id        int64 `gorm:"primaryKey;autoIncrement"`
	CreatedAt time.Time
	UpdatedAt time.Time
	UserName  string          `gorm:"column:user_name;uniqueIndex;not null"`
	Password  string          `gorm:"column:password;not null"`
	Lists     []TodoListModel `gorm:"foreignKey:UserId;constraint:OnDelete:CASCADE"`
}

func (UserModel) TableName() string {
	return "users"
}

type TodoListModel struct {
	Id     int64               `gorm:"primaryKey;autoIncrement"`
	Title  string              `gorm:"not null;uniqueIndex:idx_todo_list_owner_title"`
	UserId int64               `gorm:"column:user_id;not null;index;uniqueIndex:idx_todo_list_owner_title"`
	Items  []TodoListItemModel `gorm:"foreignKey:ListId;constraint:OnDelete:CASCADE"`
}

func (TodoListModel) TableName() string {
	return "todo_list"
}

type TodoListItemModel struct {
	Id     int64  `gorm:"primaryKey;autoIncrement"`
	Title  string `gorm:"not null"`
	IsDone bool   `gorm:"column:is_done;not null;default:false"`
	ListId int64  `gorm:"column:todolist_id;not null;index"`
}

func (TodoListItemModel) TableName() string {
	return "todo_list_item"
}
