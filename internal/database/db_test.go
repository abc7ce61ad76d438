package database

import (
	"path/filepath"
	"testing"
	"time"
)

func TestNewDB(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "lunches.db")

	db, err := NewDB(path)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	defer db.Close()

	for _, table := range []string{"users", "meal_types", "meals", "lunches", "user_lunches"} {
		var name string
		err := db.SQL.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&name)
		if err != nil {
			t.Errorf("Expected table %s to exist, got %v", table, err)
		}
	}

	t.Run("MigrationsAreRepeatable", func(t *testing.T) {
		if err := RunMigrations(path); err != nil {
			t.Errorf("Expected second run to be a no-op, got %v", err)
		}
	})

	t.Run("ConstraintErrors", func(t *testing.T) {
		now := time.Now().UTC()
		insert := `INSERT INTO users (id, user_name, created_on, updated_on) VALUES (?, ?, ?, ?)`
		if _, err := db.SQL.Exec(insert, "u1", "ana", now, now); err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		_, err := db.SQL.Exec(insert, "u2", "ana", now, now)
		if !IsUniqueViolation(err) {
			t.Errorf("Expected unique violation, got %v", err)
		}

		_, err = db.SQL.Exec(`INSERT INTO meals (id, name, type_id) VALUES ('m1', 'Soup', 'missing')`)
		if !IsForeignKeyViolation(err) {
			t.Errorf("Expected foreign key violation, got %v", err)
		}
	})
}
