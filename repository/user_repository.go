package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"todoListManagement/models"
)

// ErrEmailTaken signals that an email is already in use by a different user.
// It is returned as a value so callers can map it to a 400 response.
var ErrEmailTaken = errors.New("email is already in use by another user")

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a new user and returns it with its generated ID.
// Email uniqueness is the caller's pre-check; Create does not re-check.
func (r *UserRepository) Create(ctx context.Context, name, email, passwordHash string) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, `INSERT INTO users (name, email, password_hash) VALUES (?, ?, ?)`, name, email, passwordHash)
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return &models.User{ID: id, Name: name, Email: email, PasswordHash: passwordHash}, nil
}

// GetByID fetches a user with only its remaining todos attached: todos dated
// today or later, ordered by date descending then priority descending.
// "Today" is computed at call time with the time of day truncated.
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var u models.User
	err := r.db.QueryRowContext(ctx, `SELECT id, name, email, password_hash FROM users WHERE id = ?`, id).
		Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	today := time.Now().Format(models.DateLayout)
	rows, err := r.db.QueryContext(ctx, `SELECT id, description, priority, user_id, date, completed FROM todos WHERE user_id = ? AND date >= ? ORDER BY date DESC, priority DESC`, id, today)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	todos, err := scanTodoRows(rows)
	if err != nil {
		return nil, err
	}
	if todos == nil {
		todos = []models.Todo{}
	}
	u.Todos = todos
	return &u, nil
}

// GetByEmail returns the first user with the given email, or nil if absent.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var u models.User
	err := r.db.QueryRowContext(ctx, `SELECT id, name, email, password_hash FROM users WHERE email = ? ORDER BY id LIMIT 1`, email).
		Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

// EmailInUse reports whether a user other than excludeID already has the
// given email. Pass excludeID 0 when creating.
func (r *UserRepository) EmailInUse(ctx context.Context, email string, excludeID int64) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var id int64
	err := r.db.QueryRowContext(ctx, `SELECT id FROM users WHERE email = ? AND id != ? LIMIT 1`, email, excludeID).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// List returns every user with its full todo collection attached.
// Unbounded result set.
func (r *UserRepository) List(ctx context.Context) ([]models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, `SELECT id, name, email, password_hash FROM users ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []models.User
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash); err != nil {
			return nil, err
		}
		u.Todos = []models.Todo{}
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	trows, err := r.db.QueryContext(ctx, `SELECT id, description, priority, user_id, date, completed FROM todos ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer trows.Close()
	todos, err := scanTodoRows(trows)
	if err != nil {
		return nil, err
	}
	byOwner := make(map[int64][]models.Todo, len(out))
	for _, t := range todos {
		byOwner[t.UserID] = append(byOwner[t.UserID], t)
	}
	for i := range out {
		if owned, ok := byOwner[out[i].ID]; ok {
			out[i].Todos = owned
		}
	}
	return out, nil
}

// Update persists name, email, and password hash for the given user.
// It re-checks email uniqueness excluding the target id and returns
// ErrEmailTaken on conflict.
func (r *UserRepository) Update(ctx context.Context, id int64, name, email, passwordHash string) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	taken, err := r.EmailInUse(ctx, email, id)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrEmailTaken
	}

	res, err := r.db.ExecContext(ctx, `UPDATE users SET name = ?, email = ?, password_hash = ? WHERE id = ?`, name, email, passwordHash, id)
	if err != nil {
		return nil, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, fmt.Errorf("user not found: id=%d", id)
	}
	return &models.User{ID: id, Name: name, Email: email, PasswordHash: passwordHash}, nil
}

// DeleteWithTodos deletes the user and every todo it owns inside a single
// transaction, so a partial failure cannot orphan todo rows. Returns the
// deleted user, or nil if the user does not exist.
func (r *UserRepository) DeleteWithTodos(ctx context.Context, id int64) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}

	var u models.User
	err = tx.QueryRowContext(ctx, `SELECT id, name, email, password_hash FROM users WHERE id = ?`, id).
		Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash)
	if err != nil {
		_ = tx.Rollback()
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM todos WHERE user_id = ?`, id); err != nil {
		_ = tx.Rollback()
		return nil, err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id); err != nil {
		_ = tx.Rollback()
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return &u, nil
}

// scanTodoRows reads todo rows in (id, description, priority, user_id, date,
// completed) column order. Priority is stored as its rank.
func scanTodoRows(rows *sql.Rows) ([]models.Todo, error) {
	var out []models.Todo
	for rows.Next() {
		var t models.Todo
		var rank int
		if err := rows.Scan(&t.ID, &t.Description, &rank, &t.UserID, &t.Date, &t.Completed); err != nil {
			return nil, err
		}
		t.Priority = models.PriorityFromRank(rank)
		out = append(out, t)
	}
	return out, rows.Err()
}
