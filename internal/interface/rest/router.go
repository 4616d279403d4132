package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"todo-service/internal/application/interfaces"
	"todo-service/internal/infrastructure"
)

// Dependencies is everything the HTTP layer needs from the rest of the application.
type Dependencies struct {
	UserService         interfaces.UserService
	RegisterService     interfaces.RegisterService
	AuthService         interfaces.AuthService
	TodoListService     interfaces.TodoListService
	TodoListItemService interfaces.TodoListItemService

	Sessions     infrastructure.SessionStore
	Tokens       TokenParser
	Policy       *RoutePolicy
	CookieName   string
	CookieSecure bool

	// RateLimitRPS <= 0 disables the per-IP limiter on credential routes.
	RateLimitRPS   float64
	RateLimitBurst int

	Health    Pinger
	StaticDir string
	Logger    zerolog.Logger
}

func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	policy := deps.Policy
	if policy == nil {
		policy = DefaultRoutePolicy()
	}

	e.Use(middleware.Recover())
	e.Use(RequestID())
	e.Use(RequestLogger(deps.Logger))
	e.Use(Authenticate(policy, deps.Sessions, deps.Tokens, deps.CookieName, deps.Logger))

	credentialLimit := func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	if deps.RateLimitRPS > 0 {
		credentialLimit = AuthRateLimiter(deps.RateLimitRPS, deps.RateLimitBurst)
	}

	authHandler := NewAuthHandler(deps.AuthService, deps.Sessions, deps.CookieName, deps.CookieSecure, deps.Logger)
	userHandler := NewUserHandler(deps.UserService, deps.RegisterService)
	listHandler := NewTodoListHandler(deps.TodoListService)
	itemHandler := NewTodoListItemHandler(deps.TodoListItemService)

	e.GET("/health", HealthCheck(deps.Health))

	e.POST("/login", authHandler.Login, credentialLimit)
	e.Match([]string{http.MethodGet, http.MethodPost}, "/logout", authHandler.Logout)
	e.POST("/auth/token", authHandler.IssueToken, credentialLimit)
	e.POST("/register", userHandler.Register, credentialLimit)
	e.POST("/users", userHandler.CreateUser, credentialLimit)

	lists := e.Group("/todolists")
	lists.GET("", listHandler.ListAll)
	lists.POST("", listHandler.Create)
	lists.DELETE("/items/:itemId", listHandler.RemoveItem)
	lists.DELETE("/:id", listHandler.Delete)
	lists.POST("/:id", listHandler.AddItem)

	items := e.Group("/todo-items")
	items.GET("/todolist-item/:listId", itemHandler.ListItems)
	items.POST("/:listId", itemHandler.Create)
	items.DELETE("/:id", itemHandler.Delete)
	items.PATCH("/:id/toggle-done", itemHandler.ToggleDone)

	if deps.StaticDir != "" {
		e.Static("/", deps.StaticDir)
	}

	return e
}
