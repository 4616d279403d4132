package command

import (
	"time"

	"todo-service/internal/application/common"
)

type RegisterUserCommand struct {
	UserName string `json:"userName"`
	Password string `json:"password"`
}

type CreateUserCommand struct {
	UserName string `json:"userName"`
	Password string `json:"password"`
}

type CreateUserCommandResult struct {
	Result *common.UserResult `json:"result"`
}

type LoginUserCommand struct {
	UserName string `json:"userName"`
	Password string `json:"password"`
}

type LoginUserCommandResult struct {
	User *common.UserResult `json:"user"`
}

type IssueTokenCommandResult struct {
	Token     string             `json:"token"`
	ExpiresAt time.Time          `json:"expiresAt"`
	User      *common.UserResult `json:"user"`
}
