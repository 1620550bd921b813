package repository

import (
	"context"
	"testing"
	"time"

	"todoListManagement/internal/db"
	"todoListManagement/models"
)

func TestUserRepository_CRUDAndQueries(t *testing.T) {
	d, err := db.Open("file:userrepo?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = d.Close() })

	repo := NewUserRepository(d)
	ctx := context.Background()

	// Create
	u, err := repo.Create(ctx, "alice", "alice@x.io", "hash-a")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if u.ID == 0 || u.Name != "alice" || u.Email != "alice@x.io" {
		t.Fatalf("unexpected created user: %+v", u)
	}

	// GetByEmail
	g, err := repo.GetByEmail(ctx, "alice@x.io")
	if err != nil || g == nil || g.ID != u.ID || g.PasswordHash != "hash-a" {
		t.Fatalf("get by email: %v %+v", err, g)
	}
	absent, err := repo.GetByEmail(ctx, "nobody@x.io")
	if err != nil || absent != nil {
		t.Fatalf("expected nil for absent email, got %+v err=%v", absent, err)
	}

	// EmailInUse
	if taken, err := repo.EmailInUse(ctx, "alice@x.io", 0); err != nil || !taken {
		t.Fatalf("email should be in use: taken=%v err=%v", taken, err)
	}
	if taken, err := repo.EmailInUse(ctx, "alice@x.io", u.ID); err != nil || taken {
		t.Fatalf("own email should not count as taken: taken=%v err=%v", taken, err)
	}

	// List attaches todo collections (empty here)
	list, err := repo.List(ctx)
	if err != nil || len(list) != 1 {
		t.Fatalf("list: %v len=%d", err, len(list))
	}
	if list[0].Todos == nil || len(list[0].Todos) != 0 {
		t.Fatalf("expected empty todo collection, got %+v", list[0].Todos)
	}

	// Update
	upd, err := repo.Update(ctx, u.ID, "alicia", "alicia@x.io", "hash-b")
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if upd.Name != "alicia" || upd.Email != "alicia@x.io" {
		t.Fatalf("unexpected updated user: %+v", upd)
	}

	// Update conflict on another user's email
	b, err := repo.Create(ctx, "bob", "bob@x.io", "hash-c")
	if err != nil {
		t.Fatalf("create bob: %v", err)
	}
	if _, err := repo.Update(ctx, b.ID, "bob", "alicia@x.io", "hash-c"); err != ErrEmailTaken {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}

	// Delete absent user is a nil result, not an error
	gone, err := repo.DeleteWithTodos(ctx, 9999)
	if err != nil || gone != nil {
		t.Fatalf("expected nil for absent user, got %+v err=%v", gone, err)
	}
}

func TestUserRepository_GetByID_RemainingTodos(t *testing.T) {
	d, err := db.Open("file:userrepo_remaining?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = d.Close() })

	users := NewUserRepository(d)
	todos := NewTodoRepository(d)
	ctx := context.Background()

	u, err := users.Create(ctx, "carol", "carol@x.io", "hash")
	if err != nil {
		t.Fatalf("create user: %v", err)
	}

	yesterday := time.Now().AddDate(0, 0, -1).Format(models.DateLayout)
	today := time.Now().Format(models.DateLayout)
	tomorrow := time.Now().AddDate(0, 0, 1).Format(models.DateLayout)

	seed := []models.Todo{
		{Description: "old low", Priority: models.PriorityLow, UserID: u.ID, Date: yesterday},
		{Description: "today low", Priority: models.PriorityLow, UserID: u.ID, Date: today},
		{Description: "today high", Priority: models.PriorityHigh, UserID: u.ID, Date: today},
		{Description: "tomorrow medium", Priority: models.PriorityMedium, UserID: u.ID, Date: tomorrow},
	}
	for i := range seed {
		if _, err := todos.Create(ctx, &seed[i]); err != nil {
			t.Fatalf("seed todo %d: %v", i, err)
		}
	}

	got, err := users.GetByID(ctx, u.ID)
	if err != nil || got == nil {
		t.Fatalf("get by id: %v %+v", err, got)
	}
	if len(got.Todos) != 3 {
		t.Fatalf("expected 3 remaining todos, got %d: %+v", len(got.Todos), got.Todos)
	}
	// tomorrow first, then today's sorted HIGH before LOW
	if got.Todos[0].Description != "tomorrow medium" ||
		got.Todos[1].Description != "today high" ||
		got.Todos[2].Description != "today low" {
		t.Fatalf("unexpected order: %+v", got.Todos)
	}

	// Absent user is a nil result
	missing, err := users.GetByID(ctx, 9999)
	if err != nil || missing != nil {
		t.Fatalf("expected nil for absent user, got %+v err=%v", missing, err)
	}

	// A user with nothing remaining gets an empty collection, not null
	h, err := users.Create(ctx, "henry", "henry@x.i", "hash")
	if err != nil {
		t.Fatalf("create henry: %v", err)
	}
	if _, err := todos.Create(ctx, &models.Todo{Description: "done long ago", Priority: models.PriorityLow, UserID: h.ID, Date: yesterday}); err != nil {
		t.Fatalf("seed past todo: %v", err)
	}
	empty, err := users.GetByID(ctx, h.ID)
	if err != nil || empty == nil {
		t.Fatalf("get henry: %v %+v", err, empty)
	}
	if empty.Todos == nil || len(empty.Todos) != 0 {
		t.Fatalf("expected empty todo collection, got %+v", empty.Todos)
	}
}

func TestUserRepository_DeleteWithTodos_Cascade(t *testing.T) {
	d, err := db.Open("file:userrepo_cascade?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = d.Close() })

	users := NewUserRepository(d)
	todos := NewTodoRepository(d)
	ctx := context.Background()

	u, err := users.Create(ctx, "dave1", "dave@x.io", "hash")
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	today := time.Now().Format(models.DateLayout)
	for i := 0; i < 3; i++ {
		if _, err := todos.Create(ctx, &models.Todo{Description: "task", Priority: models.PriorityLow, UserID: u.ID, Date: today}); err != nil {
			t.Fatalf("seed todo: %v", err)
		}
	}

	deleted, err := users.DeleteWithTodos(ctx, u.ID)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if deleted == nil || deleted.ID != u.ID {
		t.Fatalf("unexpected deleted user: %+v", deleted)
	}

	var n int
	if err := d.QueryRow(`SELECT COUNT(*) FROM todos WHERE user_id = ?`, u.ID).Scan(&n); err != nil {
		t.Fatalf("count todos: %v", err)
	}
	if n != 0 {
		t.Fatalf("expected zero todos referencing deleted user, got %d", n)
	}
	gone, err := users.GetByID(ctx, u.ID)
	if err != nil || gone != nil {
		t.Fatalf("expected user deleted, got: %+v err=%v", gone, err)
	}
}
