package entities

import "errors"

var (
	ErrAlreadyExists        = errors.New("already exists")
	ErrNotFound             = errors.New("not found")
	ErrAuthenticationFailed = errors.New("authentication failed")
	ErrTooManyAttempts      = errors.New("too many attempts")
	ErrInvalidInput         = errors.New("invalid input")
)

// DomainError is a caller-recoverable failure. Message is safe to show to the client,
// Kind is one of the sentinels above.
type DomainError struct {
	Kind    error
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Kind
}

func NewAlreadyExistsError(message string) error {
	return &DomainError{Kind: ErrAlreadyExists, Message: message}
}

func NewNotFoundError(message string) error {
	return &DomainError{Kind: ErrNotFound, Message: message}
}

func NewAuthenticationFailedError(message string) error {
	return &DomainError{Kind: ErrAuthenticationFailed, Message: message}
}

func NewTooManyAttemptsError(message string) error {
	return &DomainError{Kind: ErrTooManyAttempts, Message: message}
}

func NewInvalidInputError(message string) error {
	return &DomainError{Kind: ErrInvalidInput, Message: message}
}
