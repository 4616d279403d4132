package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"todo-service/internal/application/command"
	"todo-service/internal/application/interfaces"
	"todo-service/internal/application/mapper"
	"todo-service/internal/domain/entities"
	"todo-service/internal/domain/repositories"
)

type UserService struct {
	uow    repositories.UnitOfWork
	hasher interfaces.PasswordHasher
	logger zerolog.Logger
}

func NewUserService(uow repositories.UnitOfWork, hasher interfaces.PasswordHasher, logger zerolog.Logger) *UserService {
	return &UserService{
		uow:    uow,
		hasher: hasher,
		logger: logger.With().Str("component", "user_service").Logger(),
	}
}

var _ interfaces.UserService = (*UserService)(nil)

func (s *UserService) CreateUser(ctx context.Context, createCommand *command.CreateUserCommand) (*command.CreateUserCommandResult, error) {
	var createdUser *entities.User
	err := s.uow.Transaction(ctx, func(tx repositories.Repositories) error {
		var err error
		createdUser, err = s.createUser(ctx, tx, createCommand.UserName, createCommand.Password)
		return err
	})
	if err != nil {
		return nil, err
	}

	return &command.CreateUserCommandResult{
		Result: mapper.NewUserResultFromEntity(createdUser),
	}, nil
}

// createUser checks the name, hashes the password and saves the user inside tx.
func (s *UserService) createUser(ctx context.Context, tx repositories.Repositories, userName, password string) (*entities.User, error) {
	if strings.TrimSpace(userName) == "" || password == "" {
		return nil, entities.NewInvalidInputError("username and password are required")
	}

	exists, err := tx.Users().ExistsByUserName(ctx, userName)
	if err != nil {
		return nil, err
	}
	if exists {
		s.logger.Debug().Str("user_name", userName).Msg("username already taken")
		return nil, entities.NewAlreadyExistsError("username already exist.")
	}

	passwordHash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	validatedUser, err := entities.NewValidatedUser(entities.NewUser(userName, passwordHash))
	if err != nil {
		return nil, err
	}

	createdUser, err := tx.Users().Create(ctx, validatedUser)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("user_id", createdUser.Id).Str("user_name", createdUser.UserName).Msg("user created")
	return createdUser, nil
}
