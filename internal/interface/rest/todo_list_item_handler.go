package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"todo-service/internal/application/command"
	"todo-service/internal/application/interfaces"
)

type TodoListItemHandler struct {
	itemService interfaces.TodoListItemService
}

func NewTodoListItemHandler(itemService interfaces.TodoListItemService) *TodoListItemHandler {
	return &TodoListItemHandler{itemService: itemService}
}

func (h *TodoListItemHandler) ListItems(c echo.Context) error {
	listId, err := parseID(c, "listId")
	if err != nil {
		return err
	}

	result, err := h.itemService.ListItems(c.Request().Context(), listId)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result.Result)
}

func (h *TodoListItemHandler) Create(c echo.Context) error {
	listId, err := parseID(c, "listId")
	if err != nil {
		return err
	}

	var req itemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	err = h.itemService.CreateItem(c.Request().Context(), &command.CreateTodoListItemCommand{
		ListId: listId,
		Title:  req.Title,
		IsDone: req.IsDone,
	})
	if err != nil {
		return err
	}
	return c.NoContent(http.StatusCreated)
}

// Delete never reports a missing item.
func (h *TodoListItemHandler) Delete(c echo.Context) error {
	itemId, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.itemService.DeleteItem(c.Request().Context(), &command.DeleteTodoListItemCommand{ItemId: itemId}); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *TodoListItemHandler) ToggleDone(c echo.Context) error {
	itemId, err := parseID(c, "id")
	if err != nil {
		return err
	}

	result, err := h.itemService.ToggleDone(c.Request().Context(), &command.ToggleTodoListItemCommand{ItemId: itemId})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result.Result)
}
