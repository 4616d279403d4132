package mapper

import (
	"todo-service/internal/application/common"
	"todo-service/internal/domain/entities"
)

func NewUserResultFromEntity(user *entities.User) *common.UserResult {
	return &common.UserResult{
		Id:        user.Id,
		CreatedAt: user.CreatedAt,
		UserName:  user.UserName,
	}
}
