package user

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"lunch-planner/internal/database"
	"lunch-planner/internal/shared"
)

func newTestRepository(t *testing.T) *Repository {
	t.Helper()
	db, err := database.NewDB(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewRepository(db.SQL)
}

func TestRepository(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	ana := &User{UserName: "ana", Email: "ana@example.com", FirstName: "Ana"}
	if err := repo.Create(ctx, ana, "admin"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if ana.ID == "" {
		t.Fatal("Expected Create to assign an id")
	}

	t.Run("Get", func(t *testing.T) {
		got, err := repo.Get(ctx, ana.ID)
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if got.UserName != "ana" || got.Email != "ana@example.com" || got.UpdatedBy != "admin" {
			t.Errorf("Unexpected user %+v", got)
		}
		if got.CreatedOn.IsZero() {
			t.Error("Expected CreatedOn to be set")
		}
	})

	t.Run("GetMissing", func(t *testing.T) {
		_, err := repo.Get(ctx, "missing")
		if !errors.Is(err, shared.ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
	})

	t.Run("DuplicateUserName", func(t *testing.T) {
		err := repo.Create(ctx, &User{UserName: "ana"}, "admin")
		if !errors.Is(err, ErrDuplicate) || !errors.Is(err, shared.ErrConflict) {
			t.Errorf("Expected ErrDuplicate, got %v", err)
		}
	})

	t.Run("Validation", func(t *testing.T) {
		err := repo.Create(ctx, &User{UserName: "  "}, "admin")
		if !errors.Is(err, shared.ErrInvalid) {
			t.Errorf("Expected ErrInvalid, got %v", err)
		}
	})

	t.Run("UpdateAndList", func(t *testing.T) {
		if err := repo.Create(ctx, &User{UserName: "bruno"}, "admin"); err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		ana.LastName = "Silva"
		if err := repo.Update(ctx, ana, "ana"); err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}

		users, err := repo.List(ctx)
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if len(users) != 2 || users[0].UserName != "ana" || users[0].LastName != "Silva" {
			t.Errorf("Unexpected users %+v", users)
		}
	})

	t.Run("UpdateMissing", func(t *testing.T) {
		err := repo.Update(ctx, &User{ID: "missing", UserName: "x"}, "admin")
		if !errors.Is(err, shared.ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
	})

	t.Run("Delete", func(t *testing.T) {
		n, err := repo.Delete(ctx, ana.ID)
		if err != nil || n != 1 {
			t.Fatalf("Expected 1 row deleted, got %d, %v", n, err)
		}
		n, err = repo.Delete(ctx, ana.ID)
		if err != nil || n != 0 {
			t.Errorf("Expected 0 rows on second delete, got %d, %v", n, err)
		}
	})
}
