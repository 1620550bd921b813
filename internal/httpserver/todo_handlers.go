package httpserver

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"todoListManagement/models"
	"todoListManagement/repository"
)

// ListTodos returns every todo with its owning user attached.
// GET /todo
func (h *Handlers) ListTodos(c echo.Context) error {
	result, err := h.Todos.List(c.Request().Context())
	if err != nil {
		return serverError(c, internalMsg, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Success fetch data!", "result": result})
}

// RemainingTodos returns the user's todos dated today or later. This route
// is fail-soft: a store failure is logged and an empty collection returned.
// The response is the bare array, without the usual envelope.
// GET /todo/remaining/:userId (guarded)
func (h *Handlers) RemainingTodos(c echo.Context) error {
	userID, err := strconv.ParseInt(c.Param("userId"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid ID"})
	}
	result, err := h.Todos.RemainingForUser(c.Request().Context(), userID)
	if err != nil {
		log.Printf("fetch remaining todos: %v", err)
		result = nil
	}
	if result == nil {
		result = []models.Todo{}
	}
	return c.JSON(http.StatusOK, result)
}

// CreateTodo inserts a todo after verifying its owning user exists.
// POST /todo {description, priority, userId, date, completed} (guarded)
func (h *Handlers) CreateTodo(c echo.Context) error {
	var req todoRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": err.Error()})
	}
	if err := req.validate(); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": err.Error()})
	}
	result, err := h.Todos.Create(c.Request().Context(), req.toModel())
	if errors.Is(err, repository.ErrUserNotFound) {
		return serverError(c, internalMsg, "User not found")
	}
	if err != nil {
		return serverError(c, internalMsg, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Success!", "result": result})
}

// UpdateTodo is the body-only update shape.
// PUT /todo {id, todo} (guarded)
func (h *Handlers) UpdateTodo(c echo.Context) error {
	var req todoUpdateEnvelope
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": err.Error()})
	}
	return h.updateTodo(c, req.ID, req.Todo)
}

// UpdateTodoByID is the path-parameter update shape.
// PUT /todo/:id {description, priority, date, completed} (guarded)
func (h *Handlers) UpdateTodoByID(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid ID"})
	}
	var req todoRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": err.Error()})
	}
	return h.updateTodo(c, id, req)
}

func (h *Handlers) updateTodo(c echo.Context, id int64, req todoRequest) error {
	if err := req.validate(); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": err.Error()})
	}
	result, err := h.Todos.Update(c.Request().Context(), id, req.toModel())
	if err != nil {
		// No dedicated not-found mapping for updates; absence surfaces here.
		return serverError(c, internalMsg, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Todo updated successfully!", "data_updated": result})
}

// DeleteTodo removes a todo by id; an absent id maps to 404.
// DELETE /todo/:id (guarded)
func (h *Handlers) DeleteTodo(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid ID"})
	}
	result, err := h.Todos.Delete(c.Request().Context(), id)
	if err != nil {
		return serverError(c, internalMsg, err.Error())
	}
	if result == nil {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "Todo not found."})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Todo deleted successfully!", "data_deleted": result})
}
