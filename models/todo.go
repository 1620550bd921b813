package models

// Priority is an ordinal tag on a todo. Higher priorities sort first.
type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
)

// Rank returns the sort weight stored in the database. Unknown values rank 0.
func (p Priority) Rank() int {
	switch p {
	case PriorityLow:
		return 1
	case PriorityMedium:
		return 2
	case PriorityHigh:
		return 3
	}
	return 0
}

// Valid reports whether p is one of the known priority names.
func (p Priority) Valid() bool { return p.Rank() != 0 }

// PriorityFromRank maps a stored sort weight back to its name.
func PriorityFromRank(rank int) Priority {
	switch rank {
	case 1:
		return PriorityLow
	case 2:
		return PriorityMedium
	case 3:
		return PriorityHigh
	}
	return ""
}

// Todo represents a single task owned by exactly one User.
// It maps to the `todos` table in SQLite. Date is stored as YYYY-MM-DD so
// lexicographic comparison matches chronological order.
type Todo struct {
	ID          int64    `db:"id" json:"id"`
	Description string   `db:"description" json:"description"`
	Priority    Priority `db:"priority" json:"priority"`
	UserID      int64    `db:"user_id" json:"userId"`
	Date        string   `db:"date" json:"date"`
	Completed   bool     `db:"completed" json:"completed"`
	// User is the owning account, attached by queries that include it.
	User *User `json:"user,omitempty"`
}

// DateLayout is the canonical format for Todo.Date.
const DateLayout = "2006-01-02"
