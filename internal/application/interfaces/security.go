package interfaces

import "time"

// PasswordHasher is a one-way hashing capability.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Matches(passwordHash, password string) (bool, error)
}

type TokenIssuer interface {
	GenerateToken(userName string) (string, time.Time, error)
}

// LoginThrottle tracks failed logins per user name.
type LoginThrottle interface {
	Allow(key string) bool
	RecordFailure(key string)
	Reset(key string)
}
