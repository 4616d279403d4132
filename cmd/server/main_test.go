package main

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-service/internal/config"
	"todo-service/internal/infrastructure"
	"todo-service/internal/infrastructure/db"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		HTTP: config.HTTPConfig{
			Addr:            "127.0.0.1:0",
			ReadTimeout:     time.Second,
			WriteTimeout:    time.Second,
			IdleTimeout:     time.Second,
			ShutdownTimeout: time.Second,
		},
		DB: config.DBConfig{
			Driver: db.DriverSQLite,
			DSN:    config.SQLiteFileDSN(filepath.Join(t.TempDir(), "todo.db")),
		},
		Session: config.SessionConfig{
			Store:      config.SessionStoreMemory,
			TTL:        time.Hour,
			CookieName: "SESSION",
		},
		JWT: config.JWTConfig{Secret: "secret", TTL: time.Hour, Issuer: "todo-service"},
		Security: config.SecurityConfig{
			BcryptCost:         4,
			RateLimitRPS:       5,
			RateLimitBurst:     10,
			LoginMaxAttempts:   5,
			LoginAttemptWindow: time.Minute,
		},
	}
}

func TestRunStopsWhenContextIsCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.NoError(t, run(ctx, testConfig(t), zerolog.Nop()))
}

func TestRunFailsForUnknownDriver(t *testing.T) {
	cfg := testConfig(t)
	cfg.DB.Driver = "mysql"

	assert.Error(t, run(context.Background(), cfg, zerolog.Nop()))
}

func TestNewSessionStoreDefaultsToMemory(t *testing.T) {
	store, closeStore, err := newSessionStore(context.Background(), testConfig(t))
	require.NoError(t, err)
	defer closeStore()

	assert.IsType(t, &infrastructure.MemorySessionStore{}, store)
}
