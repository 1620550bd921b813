package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"todoListManagement/models"
)

// ErrUserNotFound signals that a todo's owning user does not exist.
var ErrUserNotFound = errors.New("user not found")

type TodoRepository struct {
	db *sql.DB
}

func NewTodoRepository(db *sql.DB) *TodoRepository {
	return &TodoRepository{db: db}
}

// Create verifies that the owning user exists, then inserts the todo and
// returns it with its generated ID. The owner check is the only referential
// check performed.
func (r *TodoRepository) Create(ctx context.Context, t *models.Todo) (*models.Todo, error) {
	if t == nil {
		return nil, errors.New("todo is nil")
	}
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var ownerID int64
	err := r.db.QueryRowContext(ctx, `SELECT id FROM users WHERE id = ?`, t.UserID).Scan(&ownerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	res, err := r.db.ExecContext(ctx, `INSERT INTO todos (description, priority, user_id, date, completed) VALUES (?, ?, ?, ?, ?)`,
		t.Description, t.Priority.Rank(), t.UserID, t.Date, t.Completed)
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	created := *t
	created.ID = id
	return &created, nil
}

// GetByID fetches a todo by its ID, without the owning user attached.
func (r *TodoRepository) GetByID(ctx context.Context, id int64) (*models.Todo, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var t models.Todo
	var rank int
	err := r.db.QueryRowContext(ctx, `SELECT id, description, priority, user_id, date, completed FROM todos WHERE id = ?`, id).
		Scan(&t.ID, &t.Description, &rank, &t.UserID, &t.Date, &t.Completed)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	t.Priority = models.PriorityFromRank(rank)
	return &t, nil
}

// List returns every todo with its owning user attached. Unbounded, no filter.
func (r *TodoRepository) List(ctx context.Context) ([]models.Todo, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, `SELECT t.id, t.description, t.priority, t.user_id, t.date, t.completed, u.id, u.name, u.email, u.password_hash
FROM todos t JOIN users u ON u.id = t.user_id ORDER BY t.id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTodoRowsWithUser(rows)
}

// RemainingForUser returns the user's todos dated today or later, ordered by
// date descending then priority descending, with the owning user attached.
func (r *TodoRepository) RemainingForUser(ctx context.Context, userID int64) ([]models.Todo, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	today := time.Now().Format(models.DateLayout)
	rows, err := r.db.QueryContext(ctx, `SELECT t.id, t.description, t.priority, t.user_id, t.date, t.completed, u.id, u.name, u.email, u.password_hash
FROM todos t JOIN users u ON u.id = t.user_id WHERE t.user_id = ? AND t.date >= ? ORDER BY t.date DESC, t.priority DESC`, userID, today)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTodoRowsWithUser(rows)
}

// Update unconditionally persists description, priority, date, and completed
// for the row matching id, then returns the updated todo. An absent id is an
// error for the caller to surface.
func (r *TodoRepository) Update(ctx context.Context, id int64, t *models.Todo) (*models.Todo, error) {
	if t == nil {
		return nil, errors.New("todo is nil")
	}
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, `UPDATE todos SET description = ?, priority = ?, date = ?, completed = ? WHERE id = ?`,
		t.Description, t.Priority.Rank(), t.Date, t.Completed, id)
	if err != nil {
		return nil, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, fmt.Errorf("todo not found: id=%d", id)
	}
	return r.GetByID(ctx, id)
}

// Delete checks existence first; if the todo is absent it returns (nil, nil)
// so the caller can report not-found. Otherwise it deletes and returns the
// deleted todo.
func (r *TodoRepository) Delete(ctx context.Context, id int64) (*models.Todo, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	existing, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}
	if _, err := r.db.ExecContext(ctx, `DELETE FROM todos WHERE id = ?`, id); err != nil {
		return nil, err
	}
	return existing, nil
}

// scanTodoRowsWithUser reads joined todo+user rows and attaches the owner.
func scanTodoRowsWithUser(rows *sql.Rows) ([]models.Todo, error) {
	var out []models.Todo
	for rows.Next() {
		var t models.Todo
		var u models.User
		var rank int
		if err := rows.Scan(&t.ID, &t.Description, &rank, &t.UserID, &t.Date, &t.Completed,
			&u.ID, &u.Name, &u.Email, &u.PasswordHash); err != nil {
			return nil, err
		}
		t.Priority = models.PriorityFromRank(rank)
		t.User = &u
		out = append(out, t)
	}
	return out, rows.Err()
}
