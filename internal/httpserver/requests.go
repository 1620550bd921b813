package httpserver

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"todoListManagement/models"
)

// credentialsRequest is the body for registration and direct user creation.
type credentialsRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// validate enforces the field-length constraints checked at registration.
func (r credentialsRequest) validate() error {
	if n := len(r.Name); n < 5 || n > 10 {
		return errors.New("name must be 5 to 10 characters")
	}
	if n := len(r.Email); n < 5 || n > 10 {
		return errors.New("email must be 5 to 10 characters")
	}
	if n := len(r.Password); n < 8 || n > 12 {
		return errors.New("password must be 8 to 12 characters")
	}
	return nil
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// todoRequest is the body for todo creation and both update shapes.
type todoRequest struct {
	Description string          `json:"description"`
	Priority    models.Priority `json:"priority"`
	UserID      int64           `json:"userId"`
	Date        string          `json:"date"`
	Completed   bool            `json:"completed"`
}

func (r todoRequest) validate() error {
	if !r.Priority.Valid() {
		return errors.New("priority must be one of LOW, MEDIUM, HIGH")
	}
	if _, err := time.Parse(models.DateLayout, r.Date); err != nil {
		return errors.New("date must be formatted as YYYY-MM-DD")
	}
	return nil
}

func (r todoRequest) toModel() *models.Todo {
	return &models.Todo{
		Description: r.Description,
		Priority:    r.Priority,
		UserID:      r.UserID,
		Date:        r.Date,
		Completed:   r.Completed,
	}
}

// todoUpdateEnvelope is the body-only update shape: PUT /todo {id, todo}.
type todoUpdateEnvelope struct {
	ID   int64       `json:"id"`
	Todo todoRequest `json:"todo"`
}

const (
	internalAuthMsg = "Internal server error"
	internalMsg     = "Internal server error!"
	emailTakenMsg   = "Email is already in use by another user."
)

// serverError maps an unexpected failure to 500 with the failure message
// exposed in the body, the catch-all every handler funnels through.
func serverError(c echo.Context, msg string, errMsg string) error {
	return c.JSON(http.StatusInternalServerError, echo.Map{"message": msg, "error": errMsg})
}
