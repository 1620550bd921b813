package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"todoListManagement/internal/auth"
)

// Register creates an account and issues a token.
// POST /auth/register {name, email, password}
func (h *Handlers) Register(c echo.Context) error {
	var req credentialsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": err.Error()})
	}
	if err := req.validate(); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": err.Error()})
	}
	ctx := c.Request().Context()

	existing, err := h.Users.GetByEmail(ctx, req.Email)
	if err != nil {
		return serverError(c, internalAuthMsg, err.Error())
	}
	if existing != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": emailTakenMsg})
	}

	hash, err := auth.HashPassword(req.Password, h.Cfg.Auth.BcryptCost)
	if err != nil {
		return serverError(c, internalAuthMsg, err.Error())
	}
	user, err := h.Users.Create(ctx, req.Name, req.Email, hash)
	if err != nil {
		return serverError(c, internalAuthMsg, err.Error())
	}
	token, err := auth.IssueToken(h.Cfg.Auth.JWTSecret, user.Email)
	if err != nil {
		return serverError(c, internalAuthMsg, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": "User registered successfully",
		"result":  echo.Map{"token": token, "userInfo": user},
	})
}

// Login verifies credentials and issues a token. An unknown email and a
// wrong password surface as the same 500-mapped failure; the two are
// deliberately indistinguishable to the caller.
// POST /auth/login {email, password}
func (h *Handlers) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": err.Error()})
	}
	ctx := c.Request().Context()

	user, err := h.Users.GetByEmail(ctx, req.Email)
	if err != nil {
		return serverError(c, internalAuthMsg, err.Error())
	}
	if user == nil {
		return serverError(c, internalAuthMsg, "User not found")
	}
	if err := auth.VerifyPassword(user.PasswordHash, req.Password); err != nil {
		return serverError(c, internalAuthMsg, "Invalid password")
	}

	token, err := auth.IssueToken(h.Cfg.Auth.JWTSecret, user.Email)
	if err != nil {
		return serverError(c, internalAuthMsg, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": "User logged in successfully",
		"result":  echo.Map{"token": token, "userInfo": user},
	})
}
