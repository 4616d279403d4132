package rest

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"todo-service/internal/application/command"
	"todo-service/internal/application/interfaces"
)

type itemRequest struct {
	Title  string `json:"title"`
	IsDone *bool  `json:"isDone"`
}

type TodoListHandler struct {
	todoListService interfaces.TodoListService
}

func NewTodoListHandler(todoListService interfaces.TodoListService) *TodoListHandler {
	return &TodoListHandler{todoListService: todoListService}
}

func (h *TodoListHandler) ListAll(c echo.Context) error {
	result, err := h.todoListService.ListAllForUser(c.Request().Context(), PrincipalFrom(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result.Result)
}

func (h *TodoListHandler) Create(c echo.Context) error {
	var req struct {
		Name string `json:"name"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	err := h.todoListService.CreateTodoList(c.Request().Context(), &command.CreateTodoListCommand{
		Title:         req.Name,
		OwnerUserName: PrincipalFrom(c),
	})
	if err != nil {
		return err
	}
	return c.String(http.StatusOK, "to do list added.")
}

func (h *TodoListHandler) Delete(c echo.Context) error {
	listId, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.todoListService.DeleteTodoList(c.Request().Context(), &command.DeleteTodoListCommand{ListId: listId}); err != nil {
		return err
	}
	return c.String(http.StatusOK, "deleted.")
}

func (h *TodoListHandler) AddItem(c echo.Context) error {
	listId, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req itemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	err = h.todoListService.AddItemToList(c.Request().Context(), &command.AddItemToListCommand{
		ListId: listId,
		Title:  req.Title,
		IsDone: req.IsDone,
	})
	if err != nil {
		return err
	}
	return c.String(http.StatusOK, "added.")
}

// RemoveItem is the checked item delete; unknown ids are 404.
func (h *TodoListHandler) RemoveItem(c echo.Context) error {
	itemId, err := parseID(c, "itemId")
	if err != nil {
		return err
	}

	if err := h.todoListService.RemoveItemFromList(c.Request().Context(), &command.RemoveItemFromListCommand{ItemId: itemId}); err != nil {
		return err
	}
	return c.String(http.StatusOK, "deleted.")
}

func parseID(c echo.Context, param string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(param), 10, 64)
	if err != nil || id < 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}
