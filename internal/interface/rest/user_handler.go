package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"todo-service/internal/application/command"
	"todo-service/internal/application/interfaces"
)

// UserHandler serves both sign-up endpoints. They differ only in status and message.
type UserHandler struct {
	userService     interfaces.UserService
	registerService interfaces.RegisterService
}

func NewUserHandler(userService interfaces.UserService, registerService interfaces.RegisterService) *UserHandler {
	return &UserHandler{userService: userService, registerService: registerService}
}

// Register handles POST /register.
func (h *UserHandler) Register(c echo.Context) error {
	var req credentials
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	err := h.registerService.Register(c.Request().Context(), &command.RegisterUserCommand{
		UserName: req.UserName,
		Password: req.Password,
	})
	if err != nil {
		return err
	}
	return c.String(http.StatusOK, "added.")
}

// CreateUser handles POST /users.
func (h *UserHandler) CreateUser(c echo.Context) error {
	var req credentials
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	_, err := h.userService.CreateUser(c.Request().Context(), &command.CreateUserCommand{
		UserName: req.UserName,
		Password: req.Password,
	})
	if err != nil {
		return err
	}
	return c.String(http.StatusCreated, "user added")
}
