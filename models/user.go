package models

// User represents an account in the system.
// It maps to the `users` table in SQLite.
// PasswordHash never serializes into API responses.
type User struct {
	ID           int64  `db:"id" json:"id"`
	Name         string `db:"name" json:"name"`
	Email        string `db:"email" json:"email"`
	PasswordHash string `db:"password_hash" json:"-"`
	// Todos is the reverse side of the User->Todo relation. Queries that
	// include it attach it; it is not persisted on the row itself.
	Todos []Todo `json:"todos"`
}
