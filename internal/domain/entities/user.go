package entities

import "time"

type User struct {
	Id           int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
	UserName     string
	PasswordHash string
}

// NewUser builds an unsaved user. Id is assigned by the store on save.
func NewUser(userName, passwordHash string) *User {
	now := time.Now()
	return &User{
		CreatedAt:    now,
		UpdatedAt:    now,
		UserName:     userName,
		PasswordHash: passwordHash,
	}
}

func (u *User) validate() error {
	if u.UserName == "" {
		return NewInvalidInputError("username must not be empty")
	}
	if u.PasswordHash == "" {
		return NewInvalidInputError("password hash must not be empty")
	}
	if u.CreatedAt.After(u.UpdatedAt) {
		return NewInvalidInputError("created_at must be before updated_at")
	}
	return nil
}
