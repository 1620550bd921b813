package httpserver

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"todoListManagement/internal/auth"
	"todoListManagement/repository"
)

// ListUsers returns every user with its todo collection attached.
// GET /user (guarded)
func (h *Handlers) ListUsers(c echo.Context) error {
	result, err := h.Users.List(c.Request().Context())
	if err != nil {
		return serverError(c, internalMsg, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Success fetch data!", "result": result})
}

// CreateUser creates a user directly. Length validation applies at
// registration only; here only the email pre-check runs.
// POST /user {name, email, password}
func (h *Handlers) CreateUser(c echo.Context) error {
	var req credentialsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": err.Error()})
	}
	ctx := c.Request().Context()

	existing, err := h.Users.GetByEmail(ctx, req.Email)
	if err != nil {
		return serverError(c, internalMsg, err.Error())
	}
	if existing != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": emailTakenMsg})
	}

	hash, err := auth.HashPassword(req.Password, h.Cfg.Auth.BcryptCost)
	if err != nil {
		return serverError(c, internalMsg, err.Error())
	}
	result, err := h.Users.Create(ctx, req.Name, req.Email, hash)
	if err != nil {
		return serverError(c, internalMsg, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Success!", "result": result})
}

// GetUser returns a user with only its remaining todos attached. An absent
// id yields a null result, not a failure.
// GET /user/:id
func (h *Handlers) GetUser(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid ID"})
	}
	result, err := h.Users.GetByID(c.Request().Context(), id)
	if err != nil {
		return serverError(c, internalMsg, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "User data fetched!", "result": result})
}

// UpdateUser persists name/email/password. An email owned by a different
// user is a conflict mapped to 400.
// PUT /user/:id {name, email, password}
func (h *Handlers) UpdateUser(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid ID"})
	}
	var req credentialsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": err.Error()})
	}
	ctx := c.Request().Context()

	hash, err := auth.HashPassword(req.Password, h.Cfg.Auth.BcryptCost)
	if err != nil {
		return serverError(c, internalMsg, err.Error())
	}
	result, err := h.Users.Update(ctx, id, req.Name, req.Email, hash)
	if errors.Is(err, repository.ErrEmailTaken) {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": emailTakenMsg})
	}
	if err != nil {
		return serverError(c, internalMsg, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "User updated successfully!", "data_updated": result})
}

// DeleteUser removes a user and its todos in one transaction.
// DELETE /user/:id
func (h *Handlers) DeleteUser(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid ID"})
	}
	result, err := h.Users.DeleteWithTodos(c.Request().Context(), id)
	if err != nil {
		return serverError(c, internalMsg, err.Error())
	}
	if result == nil {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "User not found."})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "User deleted successfully!", "data_deleted": result})
}
