package httpserver

import (
	"context"
	"net"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"todoListManagement/internal/auth"
	"todoListManagement/internal/config"
	"todoListManagement/repository"
)

// Handlers bundles the dependencies shared by all HTTP handlers.
type Handlers struct {
	Users *repository.UserRepository
	Todos *repository.TodoRepository
	Cfg   *config.Config
}

// NewRouter builds the echo instance with middleware and every route.
// Guarded routes require a valid bearer token before the handler runs.
func NewRouter(cfg *config.Config, users *repository.UserRepository, todos *repository.TodoRepository) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.CORS.Origins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodHead, http.MethodOptions},
	}))

	h := &Handlers{Users: users, Todos: todos, Cfg: cfg}
	guard := auth.Guard(cfg.Auth.JWTSecret)

	e.POST("/auth/register", h.Register)
	e.POST("/auth/login", h.Login)

	e.GET("/user", h.ListUsers, guard)
	e.POST("/user", h.CreateUser)
	e.GET("/user/:id", h.GetUser)
	e.PUT("/user/:id", h.UpdateUser)
	e.DELETE("/user/:id", h.DeleteUser)

	e.GET("/todo", h.ListTodos)
	e.GET("/todo/remaining/:userId", h.RemainingTodos, guard)
	e.POST("/todo", h.CreateTodo, guard)
	// Both observed update shapes are routed: id in the body or in the path.
	e.PUT("/todo", h.UpdateTodo, guard)
	e.PUT("/todo/:id", h.UpdateTodoByID, guard)
	e.DELETE("/todo/:id", h.DeleteTodo, guard)

	return e
}

// Start runs the HTTP server on the configured address and returns a
// shutdown function.
func Start(cfg *config.Config, users *repository.UserRepository, todos *repository.TodoRepository) (func(context.Context) error, error) {
	if cfg == nil {
		panic("config is required")
	}

	addr := cfg.HTTP.Address
	if addr == "" {
		addr = ":5000"
	}

	e := NewRouter(cfg, users, todos)

	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}
	e.Listener = lis
	go func() { _ = e.Start("") }()

	return func(ctx context.Context) error {
		return e.Shutdown(ctx)
	}, nil
}
