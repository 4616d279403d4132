package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTP      HTTPConfig
	DB        DBConfig
	Session   SessionConfig
	Redis     RedisConfig
	JWT       JWTConfig
	Security  SecurityConfig
	Log       LogConfig
	StaticDir string
}

type HTTPConfig struct {
	Addr            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

type DBConfig struct {
	Driver          string
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type SessionConfig struct {
	Store        string
	TTL          time.Duration
	CookieName   string
	CookieSecure bool
}

type RedisConfig struct {
	// URL overrides Host/Port/Password/DB when set.
	URL      string
	Host     string
	Port     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret string
	TTL    time.Duration
	Issuer string
}

type SecurityConfig struct {
	BcryptCost         int
	RateLimitRPS       float64
	RateLimitBurst     int
	LoginMaxAttempts   int
	LoginAttemptWindow time.Duration
}

type LogConfig struct {
	Level  string
	Format string
}

const (
	SessionStoreMemory = "memory"
	SessionStoreRedis  = "redis"
)

// Load reads .env when present and then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := &Config{
		HTTP: HTTPConfig{
			Addr:            GetEnvAsString("HTTP_ADDR", ":8080"),
			ReadTimeout:     GetEnvAsDuration("HTTP_READ_TIMEOUT", 10*time.Second),
			WriteTimeout:    GetEnvAsDuration("HTTP_WRITE_TIMEOUT", 10*time.Second),
			IdleTimeout:     GetEnvAsDuration("HTTP_IDLE_TIMEOUT", 60*time.Second),
			ShutdownTimeout: GetEnvAsDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		DB: DBConfig{
			Driver:          GetEnvAsString("DB_DRIVER", "sqlite"),
			DSN:             GetEnvAsString("DB_DSN", ""),
			MaxOpenConns:    GetEnvAsInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:    GetEnvAsInt("DB_MAX_IDLE_CONNS", 2),
			ConnMaxLifetime: GetEnvAsDuration("DB_CONN_MAX_LIFETIME", 30*time.Minute),
		},
		Session: SessionConfig{
			Store:        GetEnvAsString("SESSION_STORE", SessionStoreMemory),
			TTL:          GetEnvAsDuration("SESSION_TTL", 24*time.Hour),
			CookieName:   GetEnvAsString("SESSION_COOKIE_NAME", "SESSION"),
			CookieSecure: GetEnvAsBool("SESSION_COOKIE_SECURE", false),
		},
		Redis: RedisConfig{
			URL:      GetEnvAsString("REDIS_URL", ""),
			Host:     GetEnvAsString("REDIS_HOST", "localhost"),
			Port:     GetEnvAsString("REDIS_PORT", "6379"),
			Password: GetEnvAsString("REDIS_PASSWORD", ""),
			DB:       GetEnvAsInt("REDIS_DB", 0),
		},
		JWT: JWTConfig{
			Secret: GetEnvAsString("JWT_SECRET", ""),
			TTL:    GetEnvAsDuration("JWT_TTL", 24*time.Hour),
			Issuer: GetEnvAsString("JWT_ISSUER", "todo-service"),
		},
		Security: SecurityConfig{
			BcryptCost:         GetEnvAsInt("BCRYPT_COST", 10),
			RateLimitRPS:       GetEnvAsFloat("RATE_LIMIT_RPS", 5),
			RateLimitBurst:     GetEnvAsInt("RATE_LIMIT_BURST", 10),
			LoginMaxAttempts:   GetEnvAsInt("LOGIN_MAX_ATTEMPTS", 5),
			LoginAttemptWindow: GetEnvAsDuration("LOGIN_ATTEMPT_WINDOW", 15*time.Minute),
		},
		Log: LogConfig{
			Level:  GetEnvAsString("LOG_LEVEL", "info"),
			Format: GetEnvAsString("LOG_FORMAT", "json"),
		},
		StaticDir: GetEnvAsString("STATIC_DIR", ""),
	}

	if cfg.DB.DSN == "" && cfg.DB.Driver == "sqlite" {
		cfg.DB.DSN = SQLiteFileDSN("todo.db")
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.DB.Driver {
	case "postgres":
		if c.DB.DSN == "" {
			return errors.New("DB_DSN is required for the postgres driver")
		}
	case "sqlite":
	default:
		return fmt.Errorf("DB_DRIVER must be postgres or sqlite, got %q", c.DB.Driver)
	}

	switch c.Session.Store {
	case SessionStoreMemory, SessionStoreRedis:
	default:
		return fmt.Errorf("SESSION_STORE must be memory or redis, got %q", c.Session.Store)
	}

	if c.JWT.Secret == "" {
		return errors.New("JWT_SECRET is required")
	}
	if c.Security.BcryptCost < 4 || c.Security.BcryptCost > 31 {
		return fmt.Errorf("BCRYPT_COST must be between 4 and 31, got %d", c.Security.BcryptCost)
	}
	return nil
}

// SQLiteFileDSN enables foreign keys, waits up to 5s on a locked database and takes the
// write lock when a transaction begins, so a read followed by a write cannot deadlock.
func SQLiteFileDSN(path string) string {
	return "file:" + path + "?_foreign_keys=1&_busy_timeout=5000&_txlock=immediate"
}

// RedisAddr returns host:port for the individual Redis settings.
func (r RedisConfig) RedisAddr() string {
	return r.Host + ":" + r.Port
}
