package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"todo-service/internal/application/services"
	"todo-service/internal/config"
	"todo-service/internal/infrastructure"
	"todo-service/internal/infrastructure/db"
	"todo-service/internal/interface/rest"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		bootLogger := infrastructure.NewLogger("info", "json", os.Stderr)
		bootLogger.Fatal().Err(err).Msg("load config")
	}

	logger := infrastructure.NewLogger(cfg.Log.Level, cfg.Log.Format, os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}

func run(ctx context.Context, cfg *config.Config, logger zerolog.Logger) error {
	gdb, err := db.Open(db.Options{
		Driver:          cfg.DB.Driver,
		DSN:             cfg.DB.DSN,
		MaxOpenConns:    cfg.DB.MaxOpenConns,
		MaxIdleConns:    cfg.DB.MaxIdleConns,
		ConnMaxLifetime: cfg.DB.ConnMaxLifetime,
	})
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(gdb); err != nil {
			logger.Error().Err(err).Msg("close database")
		}
	}()

	if err := db.Migrate(gdb); err != nil {
		return err
	}
	logger.Info().Str("driver", cfg.DB.Driver).Msg("database ready")

	sessions, closeSessions, err := newSessionStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeSessions()

	throttle := infrastructure.NewRateLimiter(cfg.Security.LoginAttemptWindow, cfg.Security.LoginMaxAttempts)
	go throttle.Run(ctx, time.Minute)

	uow := db.NewUnitOfWork(gdb, cfg.DB.Driver)
	hasher := infrastructure.NewBcryptHasher(cfg.Security.BcryptCost)
	tokens := infrastructure.NewJWTService(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.TTL)

	userService := services.NewUserService(uow, hasher, logger)
	router := rest.NewRouter(rest.Dependencies{
		UserService:         userService,
		RegisterService:     services.NewRegisterService(uow, userService, logger),
		AuthService:         services.NewAuthService(uow.Users(), hasher, tokens, throttle, logger),
		TodoListService:     services.NewTodoListService(uow, logger),
		TodoListItemService: services.NewTodoListItemService(uow, logger),
		Sessions:            sessions,
		Tokens:              tokens,
		Policy:              rest.DefaultRoutePolicy(),
		CookieName:          cfg.Session.CookieName,
		CookieSecure:        cfg.Session.CookieSecure,
		RateLimitRPS:        cfg.Security.RateLimitRPS,
		RateLimitBurst:      cfg.Security.RateLimitBurst,
		Health:              healthCheck(gdb),
		StaticDir:           cfg.StaticDir,
		Logger:              logger,
	})

	server := &http.Server{
		Addr:         cfg.HTTP.Addr,
		Handler:      router,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", cfg.HTTP.Addr).Msg("http server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
	}

	logger.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-serverErr
}

func newSessionStore(ctx context.Context, cfg *config.Config) (infrastructure.SessionStore, func(), error) {
	if cfg.Session.Store != config.SessionStoreRedis {
		return infrastructure.NewMemorySessionStore(cfg.Session.TTL), func() {}, nil
	}

	client, err := infrastructure.NewRedisClient(ctx, cfg.Redis.URL, cfg.Redis.RedisAddr(), cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		return nil, nil, err
	}
	store := infrastructure.NewRedisSessionStore(client, cfg.Session.TTL)
	return store, func() { _ = store.Close() }, nil
}

func healthCheck(gdb *gorm.DB) rest.Pinger {
	return func(ctx context.Context) error {
		return db.Ping(ctx, gdb)
	}
}
