package services

import (
	"context"

	"github.com/rs/zerolog"

	"todo-service/internal/application/command"
	"todo-service/internal/application/interfaces"
	"todo-service/internal/domain/entities"
	"todo-service/internal/domain/repositories"
)

type RegisterService struct {
	uow    repositories.UnitOfWork
	users  *UserService
	logger zerolog.Logger
}

func NewRegisterService(uow repositories.UnitOfWork, users *UserService, logger zerolog.Logger) *RegisterService {
	return &RegisterService{
		uow:    uow,
		users:  users,
		logger: logger.With().Str("component", "register_service").Logger(),
	}
}

var _ interfaces.RegisterService = (*RegisterService)(nil)

// Register rejects a taken user name before delegating to user creation. The check and
// the insert share one transaction, the unique index on user_name settles races.
func (s *RegisterService) Register(ctx context.Context, registerCommand *command.RegisterUserCommand) error {
	return s.uow.Transaction(ctx, func(tx repositories.Repositories) error {
		exists, err := tx.Users().ExistsByUserName(ctx, registerCommand.UserName)
		if err != nil {
			return err
		}
		if exists {
			s.logger.Debug().Str("user_name", registerCommand.UserName).Msg("registration rejected")
			return entities.NewAlreadyExistsError("username is already exist")
		}

		_, err = s.users.createUser(ctx, tx, registerCommand.UserName, registerCommand.Password)
		return err
	})
}
