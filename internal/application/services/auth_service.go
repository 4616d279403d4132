package services

import (
	"context"

	"github.com/rs/zerolog"

	"todo-service/internal/application/command"
	"todo-service/internal/application/interfaces"
	"todo-service/internal/application/mapper"
	"todo-service/internal/domain/entities"
	"todo-service/internal/domain/repositories"
)

const badCredentials = "Bad credentials"

type AuthService struct {
	users    repositories.UserRepository
	hasher   interfaces.PasswordHasher
	tokens   interfaces.TokenIssuer
	throttle interfaces.LoginThrottle
	logger   zerolog.Logger
}

func NewAuthService(
	users repositories.UserRepository,
	hasher interfaces.PasswordHasher,
	tokens interfaces.TokenIssuer,
	throttle interfaces.LoginThrottle,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		users:    users,
		hasher:   hasher,
		tokens:   tokens,
		throttle: throttle,
		logger:   logger.With().Str("component", "auth_service").Logger(),
	}
}

var _ interfaces.AuthService = (*AuthService)(nil)

// LoginUser returns the stored user when the password matches its hash. Unknown users
// and wrong passwords fail the same way.
func (s *AuthService) LoginUser(ctx context.Context, loginCommand *command.LoginUserCommand) (*command.LoginUserCommandResult, error) {
	if !s.throttle.Allow(loginCommand.UserName) {
		s.logger.Warn().Str("user_name", loginCommand.UserName).Msg("login throttled")
		return nil, entities.NewTooManyAttemptsError("too many failed login attempts, please try again later")
	}

	user, err := s.users.FindByUserName(ctx, loginCommand.UserName)
	if err != nil {
		return nil, err
	}
	if user == nil {
		s.throttle.RecordFailure(loginCommand.UserName)
		return nil, entities.NewAuthenticationFailedError(badCredentials)
	}

	ok, err := s.hasher.Matches(user.PasswordHash, loginCommand.Password)
	if err != nil {
		return nil, err
	}
	if !ok {
		s.throttle.RecordFailure(loginCommand.UserName)
		s.logger.Debug().Str("user_name", loginCommand.UserName).Msg("password mismatch")
		return nil, entities.NewAuthenticationFailedError(badCredentials)
	}

	s.throttle.Reset(loginCommand.UserName)
	s.logger.Info().Int64("user_id", user.Id).Msg("user authenticated")

	return &command.LoginUserCommandResult{
		User: mapper.NewUserResultFromEntity(user),
	}, nil
}

func (s *AuthService) IssueToken(ctx context.Context, loginCommand *command.LoginUserCommand) (*command.IssueTokenCommandResult, error) {
	login, err := s.LoginUser(ctx, loginCommand)
	if err != nil {
		return nil, err
	}

	token, expiresAt, err := s.tokens.GenerateToken(login.User.UserName)
	if err != nil {
		return nil, err
	}

	return &command.IssueTokenCommandResult{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      login.User,
	}, nil
}
