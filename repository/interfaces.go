package repository

import (
	"context"

	"todoListManagement/models"
)

// UserRepositoryI defines operations on User entities.
type UserRepositoryI interface {
	Create(ctx context.Context, name, email, passwordHash string) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	EmailInUse(ctx context.Context, email string, excludeID int64) (bool, error)
	List(ctx context.Context) ([]models.User, error)
	Update(ctx context.Context, id int64, name, email, passwordHash string) (*models.User, error)
	DeleteWithTodos(ctx context.Context, id int64) (*models.User, error)
}

// TodoRepositoryI defines operations on Todo entities.
type TodoRepositoryI interface {
	Create(ctx context.Context, t *models.Todo) (*models.Todo, error)
	GetByID(ctx context.Context, id int64) (*models.Todo, error)
	List(ctx context.Context) ([]models.Todo, error)
	RemainingForUser(ctx context.Context, userID int64) ([]models.Todo, error)
	Update(ctx context.Context, id int64, t *models.Todo) (*models.Todo, error)
	Delete(ctx context.Context, id int64) (*models.Todo, error)
}
