package interfaces

import (
	"context"

	"todo-service/internal/application/command"
)

type UserService interface {
	CreateUser(ctx context.Context, createCommand *command.CreateUserCommand) (*command.CreateUserCommandResult, error)
}

type RegisterService interface {
	Register(ctx context.Context, registerCommand *command.RegisterUserCommand) error
}

// AuthService verifies submitted credentials. It never creates sessions itself.
type AuthService interface {
	LoginUser(ctx context.Context, loginCommand *command.LoginUserCommand) (*command.LoginUserCommandResult, error)
	IssueToken(ctx context.Context, loginCommand *command.LoginUserCommand) (*command.IssueTokenCommandResult, error)
}
